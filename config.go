package pstree

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"pkt.systems/pstree/ansi"
)

// Config is the file form of Options, usually kept in a small TOML file next
// to the program:
//
//	level   = "trace"
//	mode    = "tree"
//	color   = "auto"
//	palette = "muted"
//	output  = "stderr+/var/log/compiler.log"
type Config struct {
	Level   string `toml:"level" validate:"omitempty,loglevel"`
	Mode    string `toml:"mode" validate:"omitempty,rendermode"`
	Color   string `toml:"color" validate:"omitempty,oneof=auto always never"`
	Palette string `toml:"palette" validate:"omitempty,palette"`
	Output  string `toml:"output"`
}

// ConfigError is one invalid field of a Config.
type ConfigError struct {
	Field   string
	Message string
}

// ConfigErrors collects every invalid field of a Config.
type ConfigErrors []ConfigError

// Error implements the error interface.
func (ce ConfigErrors) Error() string {
	if len(ce) == 0 {
		return "no config errors"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "config validation failed with %d error(s):", len(ce))
	for i, err := range ce {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("toml"), ",")
		return name
	})
	if err := validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, ok := ParseLevel(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("rendermode", func(fl validator.FieldLevel) bool {
		_, ok := ParseMode(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
		_, ok := ansi.LookupPalette(fl.Field().String())
		return ok
	}); err != nil {
		panic(err)
	}
}

func configValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "loglevel":
		return "must be one of: trace debug info warn error off"
	case "rendermode":
		return "must be one of: default tree dev flat lean"
	case "palette":
		return "must be one of: " + strings.Join(ansi.AvailablePaletteNames(), " ")
	case "oneof":
		return "must be one of: " + e.Param()
	default:
		return "validation failed: " + e.Tag()
	}
}

// LoadConfig reads and validates the TOML file at path.
func LoadConfig(path string) (*Config, error) {
	configFile := filepath.Clean(path)
	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	cfg, err := ParseConfig(content)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configFile)
	}
	return cfg, nil
}

// ParseConfig decodes and validates TOML data. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			return nil, errors.Newf("parse config: unknown keys\n%s", serr.String())
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, errors.Newf("parse config at line %d, column %d: %s", row, col, derr.Error())
		}
		return nil, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and returns ConfigErrors when any is invalid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate config")
	}
	out := make(ConfigErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ConfigError{Field: fe.Field(), Message: configValidationMessage(fe)})
	}
	return out
}

// Options converts the file form into Options. Invalid values fall back to
// the Options zero values; call Validate first to reject them instead.
func (c *Config) Options() Options {
	var opts Options
	if c == nil {
		return opts
	}
	if level, ok := ParseLevel(c.Level); ok {
		opts.MinLevel = level
	}
	if mode, ok := ParseMode(c.Mode); ok {
		opts.Mode = mode
	}
	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case "always":
		opts.ForceColor = true
	case "never":
		opts.NoColor = true
	}
	if c.Palette != "" {
		opts.Palette = ansi.PaletteByName(c.Palette)
	}
	return opts
}

// Writer resolves the output setting against base, using the same syntax as
// the OUTPUT environment variable. An empty output keeps base.
func (c *Config) Writer(base io.Writer) (io.Writer, error) {
	if c == nil {
		return base, nil
	}
	return writerFromEnvOutput(c.Output, base)
}

// NewFromConfig builds a logger from cfg writing to w unless cfg names its
// own output.
func NewFromConfig(cfg *Config, w io.Writer) (Logger, error) {
	if cfg == nil {
		return New(w), nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	writer, err := cfg.Writer(w)
	if err != nil {
		return nil, err
	}
	return NewWithOptions(writer, cfg.Options()), nil
}
