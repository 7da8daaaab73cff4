package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/kerbaras/animequotes/pkg/logging"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

const (
	DefaultDisplayPath = "config.toml"

	// EnvPrefix is the prefix for environment variable overrides.
	EnvPrefix = "ANIMEQUOTES"

	DefaultTargetWidth = 30
	DefaultCharAspect  = 0.5
	DefaultGradient    = `$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\|()1{}[]?-_+~<>i!lI;:,"^` + "`'. "
)

const (
	keyShowInstructions = "ui.show_instructions"
	keyWrap             = "ui.wrap"
	keyAutoplay         = "ui.autoplay"
	keyTargetWidth      = "ui.image.target_width"
	keyTargetHeight     = "ui.image.target_height"
	keyCharAspect       = "ui.image.char_aspect"
	keyFilter           = "ui.image.filter"
	keyMode             = "ui.image.mode"
	keyGradient         = "ui.image.gradient"
	keyColors           = "ui.colors"
)

// ScalingFilter selects the interpolator used to fit images into the slide.
type ScalingFilter string

const (
	FilterNearest        ScalingFilter = "nearest"
	FilterApproxBilinear ScalingFilter = "approx-bilinear"
	FilterBilinear       ScalingFilter = "bilinear"
	FilterCatmullRom     ScalingFilter = "catmullrom"
)

var filterAliases = map[string]ScalingFilter{
	"nearest":         FilterNearest,
	"nearestneighbor": FilterNearest,
	"approx-bilinear": FilterApproxBilinear,
	"approxbilinear":  FilterApproxBilinear,
	"bilinear":        FilterBilinear,
	"linear":          FilterBilinear,
	"triangle":        FilterBilinear,
	"catmullrom":      FilterCatmullRom,
	"catmull-rom":     FilterCatmullRom,
	"cubic":           FilterCatmullRom,
}

// ParseScalingFilter accepts a filter name, case-insensitively.
func ParseScalingFilter(name string) (ScalingFilter, error) {
	if f, ok := filterAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unknown scaling filter %q (valid: %s)", name, strings.Join(ScalingFilterNames(), ", "))
}

// ScalingFilterNames lists the canonical filter names.
func ScalingFilterNames() []string {
	return []string{
		string(FilterNearest),
		string(FilterApproxBilinear),
		string(FilterBilinear),
		string(FilterCatmullRom),
	}
}

// PaintMode selects how scaled pixels become terminal cells.
type PaintMode string

const (
	ModeBlocks PaintMode = "blocks"
	ModeASCII  PaintMode = "ascii"
)

// ParsePaintMode accepts "blocks" or "ascii".
func ParsePaintMode(name string) (PaintMode, error) {
	switch PaintMode(strings.ToLower(strings.TrimSpace(name))) {
	case ModeBlocks:
		return ModeBlocks, nil
	case ModeASCII:
		return ModeASCII, nil
	}
	return "", fmt.Errorf("unknown paint mode %q (valid: blocks, ascii)", name)
}

// DisplaySettings controls how slides are drawn.
type DisplaySettings struct {
	TargetWidth      int // cells
	TargetHeight     int // cells
	Filter           ScalingFilter
	Mode             PaintMode
	Gradient         string
	Colors           Palette
	ShowInstructions bool
	Wrap             bool
	Autoplay         time.Duration
}

// DefaultDisplaySettings returns the settings used when no display file exists.
func DefaultDisplaySettings() *DisplaySettings {
	return &DisplaySettings{
		TargetWidth:      DefaultTargetWidth,
		TargetHeight:     deriveHeight(DefaultTargetWidth, DefaultCharAspect),
		Filter:           FilterCatmullRom,
		Mode:             ModeBlocks,
		Gradient:         DefaultGradient,
		Colors:           DefaultPalette(),
		ShowInstructions: true,
	}
}

// deriveHeight follows terminal cells being roughly twice as tall as wide.
func deriveHeight(width int, aspect float64) int {
	h := int(math.Round(float64(width) * aspect))
	if h < 1 {
		return 1
	}
	return h
}

type displayFile struct {
	UI struct {
		ShowInstructions bool          `mapstructure:"show_instructions"`
		Wrap             bool          `mapstructure:"wrap"`
		Autoplay         time.Duration `mapstructure:"autoplay"`
		Image            struct {
			TargetWidth  int           `mapstructure:"target_width"`
			TargetHeight int           `mapstructure:"target_height"`
			CharAspect   float64       `mapstructure:"char_aspect"`
			Filter       ScalingFilter `mapstructure:"filter"`
			Mode         PaintMode     `mapstructure:"mode"`
			Gradient     string        `mapstructure:"gradient"`
		} `mapstructure:"image"`
		Colors map[string]any `mapstructure:"-"`
	} `mapstructure:"ui"`
}

// DisplayLoader reads display settings from a TOML file and the environment.
type DisplayLoader struct {
	v *viper.Viper
}

// NewDisplayLoader creates a loader with defaults and env overrides wired in.
func NewDisplayLoader() *DisplayLoader {
	v := viper.New()
	v.SetConfigType("toml")

	v.SetDefault(keyShowInstructions, true)
	v.SetDefault(keyWrap, false)
	v.SetDefault(keyAutoplay, "0s")
	v.SetDefault(keyTargetWidth, DefaultTargetWidth)
	v.SetDefault(keyCharAspect, DefaultCharAspect)
	v.SetDefault(keyFilter, string(FilterCatmullRom))
	v.SetDefault(keyMode, string(ModeBlocks))
	v.SetDefault(keyGradient, DefaultGradient)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &DisplayLoader{v: v}
}

// Load reads path. A missing file yields defaults (plus env overrides);
// anything malformed is a *ConfigError naming the key.
func (l *DisplayLoader) Load(path string) (*DisplaySettings, error) {
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{File: path, Field: FileField, Message: "failed to read display file", Err: err}
		}
		logging.Warn("display file not found, using defaults", "path", path)
	} else {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, &ConfigError{File: path, Field: FileField, Message: "invalid TOML", Err: err}
		}
	}

	if err := l.checkTypes(path); err != nil {
		return nil, err
	}

	var raw displayFile
	if err := l.v.Unmarshal(&raw, viperDecodeHook); err != nil {
		return nil, &ConfigError{File: path, Field: "ui", Message: "failed to decode display settings", Err: err}
	}

	return l.build(path, &raw)
}

// valueKind is the TOML type a display key must have.
type valueKind int

const (
	kindInteger valueKind = iota
	kindNumber
	kindBoolean
	kindString
	kindDuration
)

func (k valueKind) String() string {
	switch k {
	case kindInteger:
		return "an integer"
	case kindNumber:
		return "a number"
	case kindBoolean:
		return "a boolean"
	case kindDuration:
		return "a duration string such as \"5s\""
	default:
		return "a string"
	}
}

// checkFile accepts only the types go-toml produces for the kind. Floats are
// not truncated into integers and strings are not coerced into booleans.
func (k valueKind) checkFile(v any) error {
	switch k {
	case kindInteger:
		switch v.(type) {
		case int64, int:
			return nil
		}
	case kindNumber:
		switch v.(type) {
		case int64, int, float64:
			return nil
		}
	case kindBoolean:
		if _, ok := v.(bool); ok {
			return nil
		}
	case kindString:
		if _, ok := v.(string); ok {
			return nil
		}
	case kindDuration:
		if s, ok := v.(string); ok {
			_, err := time.ParseDuration(s)
			return err
		}
	}
	return fmt.Errorf("got %s", typeName(v))
}

// checkEnv parses an environment override, which is always text.
func (k valueKind) checkEnv(s string) error {
	var err error
	switch k {
	case kindInteger:
		_, err = cast.ToIntE(s)
	case kindNumber:
		_, err = cast.ToFloat64E(s)
	case kindBoolean:
		_, err = cast.ToBoolE(s)
	case kindDuration:
		_, err = time.ParseDuration(s)
	}
	return err
}

var typeChecks = []struct {
	key  string
	kind valueKind
}{
	{keyTargetWidth, kindInteger},
	{keyTargetHeight, kindInteger},
	{keyCharAspect, kindNumber},
	{keyShowInstructions, kindBoolean},
	{keyWrap, kindBoolean},
	{keyAutoplay, kindDuration},
	{keyFilter, kindString},
	{keyMode, kindString},
	{keyGradient, kindString},
}

// envName returns the variable AutomaticEnv consults for key.
func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// checkTypes validates scalar keys before decoding so the error can name
// the key instead of surfacing a decoder message. viper decodes weakly, so
// without this a float width would be truncated silently.
func (l *DisplayLoader) checkTypes(path string) error {
	for _, c := range typeChecks {
		if raw, ok := os.LookupEnv(envName(c.key)); ok && raw != "" {
			if err := c.kind.checkEnv(raw); err != nil {
				return &ConfigError{File: path, Field: c.key, Message: "expected " + c.kind.String() + " in " + envName(c.key), Err: err}
			}
			continue
		}
		if !l.v.InConfig(c.key) {
			continue
		}
		if err := c.kind.checkFile(l.v.Get(c.key)); err != nil {
			return &ConfigError{File: path, Field: c.key, Message: "expected " + c.kind.String(), Err: err}
		}
	}

	return nil
}

func (l *DisplayLoader) build(path string, raw *displayFile) (*DisplaySettings, error) {
	img := raw.UI.Image

	if img.TargetWidth <= 0 {
		return nil, fieldError(path, keyTargetWidth, "must be greater than 0, got %d", img.TargetWidth)
	}
	if img.CharAspect <= 0 {
		return nil, fieldError(path, keyCharAspect, "must be greater than 0, got %g", img.CharAspect)
	}

	height := deriveHeight(img.TargetWidth, img.CharAspect)
	if l.v.IsSet(keyTargetHeight) {
		if img.TargetHeight <= 0 {
			return nil, fieldError(path, keyTargetHeight, "must be greater than 0, got %d", img.TargetHeight)
		}
		height = img.TargetHeight
	}

	if raw.UI.Autoplay < 0 {
		return nil, fieldError(path, keyAutoplay, "must not be negative, got %s", raw.UI.Autoplay)
	}

	filter, err := ParseScalingFilter(string(img.Filter))
	if err != nil {
		return nil, &ConfigError{File: path, Field: keyFilter, Message: "invalid value", Err: err}
	}

	mode, err := ParsePaintMode(string(img.Mode))
	if err != nil {
		return nil, &ConfigError{File: path, Field: keyMode, Message: "invalid value", Err: err}
	}

	gradient := img.Gradient
	if strings.TrimSpace(gradient) == "" {
		gradient = DefaultGradient
	}

	palette, err := l.palette(path)
	if err != nil {
		return nil, err
	}

	return &DisplaySettings{
		TargetWidth:      img.TargetWidth,
		TargetHeight:     height,
		Filter:           filter,
		Mode:             mode,
		Gradient:         gradient,
		Colors:           palette,
		ShowInstructions: raw.UI.ShowInstructions,
		Wrap:             raw.UI.Wrap,
		Autoplay:         raw.UI.Autoplay,
	}, nil
}

func (l *DisplayLoader) palette(path string) (Palette, error) {
	palette := DefaultPalette()
	if !l.v.IsSet(keyColors) {
		return palette, nil
	}

	table, err := cast.ToStringMapE(l.v.Get(keyColors))
	if err != nil {
		return nil, &ConfigError{File: path, Field: keyColors, Message: "expected a table of role = color", Err: err}
	}

	for name, value := range table {
		role := strings.ToLower(name)
		if !IsRole(role) {
			logging.Warn("ignoring unknown color role", "path", path, "role", name, "known", Roles())
			continue
		}
		field := keyColors + "." + role
		str, ok := value.(string)
		if !ok {
			return nil, fieldError(path, field, "expected a string, got %s", typeName(value))
		}
		c, err := ParseColor(str)
		if err != nil {
			return nil, &ConfigError{File: path, Field: field, Message: "invalid color", Err: err}
		}
		palette[Role(role)] = c
	}

	return palette, nil
}

// viperDecodeHook composes the standard duration hook with our enum hook.
func viperDecodeHook(dc *mapstructure.DecoderConfig) {
	dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToEnumHookFunc(),
	)
}

// stringToEnumHookFunc normalizes enum strings; validation happens in build.
func stringToEnumHookFunc() mapstructure.DecodeHookFunc {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}

		s := strings.ToLower(strings.TrimSpace(data.(string)))
		switch to {
		case reflect.TypeOf(ScalingFilter("")):
			return ScalingFilter(s), nil
		case reflect.TypeOf(PaintMode("")):
			return PaintMode(s), nil
		}

		return data, nil
	}
}

// LoadDisplay is a convenience function that creates a DisplayLoader and loads path.
func LoadDisplay(path string) (*DisplaySettings, error) {
	return NewDisplayLoader().Load(path)
}
