// Package config loads the settings of the sexpr command from TOML files.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"

	"github.com/xiam/sexpression/parser"
)

// Output formats accepted by the read command.
const (
	FormatSexpr   = "sexpr"
	FormatTree    = "tree"
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Color modes.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config holds every setting of the command line tool.
type Config struct {
	Jobs   int          `toml:"jobs"`
	Parser ParserConfig `toml:"parser"`
	Output OutputConfig `toml:"output"`
}

// ParserConfig is the [parser] table.
type ParserConfig struct {
	MaxDepth         int  `toml:"max_depth"`
	DisableFastPaths bool `toml:"disable_fast_paths"`
}

// OutputConfig is the [output] table.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  string `toml:"color"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Jobs: 4,
		Parser: ParserConfig{
			MaxDepth: parser.DefaultMaxDepth,
		},
		Output: OutputConfig{
			Format: FormatSexpr,
			Color:  ColorAuto,
		},
	}
}

// Load reads the TOML file at path on top of Default. Unknown keys are an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse is like Load but reads the TOML document from a string.
func Parse(data string) (Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if err := checkUndecoded(meta); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(meta toml.MetaData) error {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, key := range undecoded {
		keys = append(keys, key.String())
	}
	sort.Strings(keys)
	return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.Jobs < 1 {
		result = multierror.Append(result, fmt.Errorf("jobs must be at least 1, got %d", c.Jobs))
	}
	if c.Parser.MaxDepth < 1 {
		result = multierror.Append(result, fmt.Errorf("[parser].max_depth must be at least 1, got %d", c.Parser.MaxDepth))
	}
	switch c.Output.Format {
	case FormatSexpr, FormatTree, FormatJSON, FormatMsgpack:
	default:
		result = multierror.Append(result, fmt.Errorf("[output].format: unknown format %q", c.Output.Format))
	}
	switch c.Output.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		result = multierror.Append(result, fmt.Errorf("[output].color: unknown mode %q", c.Output.Color))
	}

	return result.ErrorOrNil()
}

// ParserOptions maps the [parser] table to parser options.
func (c Config) ParserOptions() parser.Options {
	return parser.Options{
		MaxDepth:         c.Parser.MaxDepth,
		DisableFastPaths: c.Parser.DisableFastPaths,
	}
}
