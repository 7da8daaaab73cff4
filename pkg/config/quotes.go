package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kerbaras/animequotes/pkg/data"
	"github.com/pelletier/go-toml/v2"
)

const DefaultQuotesPath = "anime.toml"

const quotesKey = "quotes"

// LoadQuotes reads the quote file and validates every record.
// An empty list is an error since there is nothing to navigate.
func LoadQuotes(path string) ([]data.Quote, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		msg := "failed to read quote file"
		if errors.Is(err, os.ErrNotExist) {
			msg = "quote file not found"
		}
		return nil, &ConfigError{File: path, Field: FileField, Message: msg, Err: err}
	}

	return ParseQuotes(path, raw)
}

// ParseQuotes validates quote records from TOML bytes. name is used in errors.
func ParseQuotes(name string, raw []byte) ([]data.Quote, error) {
	var doc map[string]any
	if err := toml.Unmarshal(raw, &doc); err != nil {
		field := FileField
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			field = fmt.Sprintf("line %d, column %d", row, col)
		}
		return nil, &ConfigError{File: name, Field: field, Message: "invalid TOML", Err: err}
	}

	rawList, ok := doc[quotesKey]
	if !ok {
		return nil, fieldError(name, quotesKey, "missing required key")
	}

	records, ok := rawList.([]any)
	if !ok {
		return nil, fieldError(name, quotesKey, "expected an array of tables, got %s", typeName(rawList))
	}
	if len(records) == 0 {
		return nil, fieldError(name, quotesKey, "no quotes defined")
	}

	quotes := make([]data.Quote, 0, len(records))
	for i, rec := range records {
		q, err := parseQuote(name, i, rec)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}

func parseQuote(file string, index int, rec any) (data.Quote, error) {
	prefix := fmt.Sprintf("%s[%d]", quotesKey, index)

	table, ok := rec.(map[string]any)
	if !ok {
		return data.Quote{}, fieldError(file, prefix, "expected a table, got %s", typeName(rec))
	}

	r := record{file: file, prefix: prefix, table: table}

	text, err := r.required("quote")
	if err != nil {
		return data.Quote{}, err
	}
	image, err := r.required("image")
	if err != nil {
		return data.Quote{}, err
	}

	q := data.Quote{Text: text, Image: image}
	optional := []struct {
		key string
		dst **string
	}{
		{"japanese", &q.Japanese},
		{"romaji", &q.Romaji},
		{"anime", &q.Anime},
		{"character", &q.Character},
	}
	for _, o := range optional {
		v, err := r.optional(o.key)
		if err != nil {
			return data.Quote{}, err
		}
		*o.dst = v
	}

	return q, nil
}

type record struct {
	file   string
	prefix string
	table  map[string]any
}

func (r record) field(key string) string {
	return r.prefix + "." + key
}

func (r record) required(key string) (string, error) {
	v, err := r.optional(key)
	if err != nil {
		return "", err
	}
	if v == nil {
		return "", fieldError(r.file, r.field(key), "missing required key")
	}
	if strings.TrimSpace(*v) == "" {
		return "", fieldError(r.file, r.field(key), "must not be empty")
	}
	return *v, nil
}

func (r record) optional(key string) (*string, error) {
	v, ok := r.table[key]
	if !ok {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fieldError(r.file, r.field(key), "expected a string, got %s", typeName(v))
	}
	return &s, nil
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "string"
	case int64, int:
		return "integer"
	case float64:
		return "float"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case map[string]any:
		return "table"
	case nil:
		return "nothing"
	default:
		return fmt.Sprintf("%T", v)
	}
}
