package cmd

import (
	"fmt"
	"os"

	"github.com/kerbaras/animequotes/pkg/app"
	"github.com/kerbaras/animequotes/pkg/config"
	"github.com/kerbaras/animequotes/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	quotesPath  string
	displayPath string
	assetsDir   string
	logFile     string
	logLevel    string
	logJSON     bool
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "animequotes",
	Short: "Anime quotes with pictures, right in your terminal",
	Long: `Browse a curated list of anime quotes, each shown next to its picture.

Quotes are read from anime.toml and display settings from config.toml.
Use the arrow keys to move between slides and q to quit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	defaults := config.DefaultPaths()
	rootCmd.Flags().StringVar(&quotesPath, "quotes", defaults.Quotes, "quote file")
	rootCmd.Flags().StringVar(&displayPath, "config", defaults.Display, "display settings file")
	rootCmd.Flags().StringVar(&assetsDir, "assets", "", "directory image paths are relative to (default: the quote file's directory)")
	rootCmd.Flags().StringVar(&logFile, "log-file", logging.DefaultConfig().Path, "log file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", logging.LevelInfo.String(), "log level (debug, info, warn, error)")
	rootCmd.Flags().BoolVar(&logJSON, "log-json", false, "write the log as JSON lines")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "log at debug level, overrides --log-level")
}

func runRoot(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	if debug {
		level = logging.LevelDebug
	}

	logConfig := &logging.Config{Level: level, Path: logFile, JSONFormat: logJSON}
	if err := logging.InitGlobal(logConfig); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
	}
	defer logging.CloseGlobal()
	logging.Debug("logging started", "level", level.String(), "path", logFile)

	bundle, err := config.Load(config.Paths{
		Quotes:  quotesPath,
		Display: displayPath,
		Assets:  assetsDir,
	})
	if err != nil {
		logging.Error("failed to load configuration", "error", err)
		return err
	}

	return app.NewApp(bundle).Run()
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}
