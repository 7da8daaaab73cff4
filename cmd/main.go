package main

import (
	cmd "github.com/kerbaras/animequotes/cmd/animequotes"
)

func main() {
	cmd.Execute()
}
