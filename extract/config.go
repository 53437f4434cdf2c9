package extract

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/orderlayout/layout"
)

// Config holds the layout thresholds used by the extractors.
// Fractions are relative to the page width or height.
type Config struct {
	// Line configures the line reconstructor used for line items
	Line layout.LineConfig `yaml:"line"`

	// LeftColumnFraction bounds the delivery address column: tokens whose
	// left edge is at most this fraction of the page width belong to it
	// (default: 0.40)
	LeftColumnFraction float64 `yaml:"left_column_fraction"`

	// CustomerRegion is the lower-left corner of the customer block
	// (default: 0.50, 0.50 - the upper-right quadrant)
	CustomerRegion Region `yaml:"customer_region"`

	// AnchorWords must all appear on the row that starts the delivery
	// address block (default: "delivery", "address")
	AnchorWords []string `yaml:"anchor_words"`
}

// Region is a page area starting at the given fractions and extending to
// the right and top page edges
type Region struct {
	MinXFraction float64 `yaml:"min_x_fraction"`
	MinYFraction float64 `yaml:"min_y_fraction"`
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Line:               layout.DefaultLineConfig(),
		LeftColumnFraction: 0.40,
		CustomerRegion: Region{
			MinXFraction: 0.50,
			MinYFraction: 0.50,
		},
		AnchorWords: []string{"delivery", "address"},
	}
}

// LoadConfig reads a YAML configuration file. Keys that are absent keep
// their default values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data on top of DefaultConfig
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every threshold is usable
func (c Config) Validate() error {
	if c.Line.YTolerance <= 0 {
		return fmt.Errorf("%w: line.y_tolerance must be positive, got %v", ErrInvalidConfig, c.Line.YTolerance)
	}
	if !isFraction(c.LeftColumnFraction) {
		return fmt.Errorf("%w: left_column_fraction must be in (0, 1], got %v", ErrInvalidConfig, c.LeftColumnFraction)
	}
	if !isFraction(c.CustomerRegion.MinXFraction) || !isFraction(c.CustomerRegion.MinYFraction) {
		return fmt.Errorf("%w: customer_region fractions must be in (0, 1], got %+v", ErrInvalidConfig, c.CustomerRegion)
	}
	if len(c.AnchorWords) == 0 {
		return fmt.Errorf("%w: anchor_words must not be empty", ErrInvalidConfig)
	}
	return nil
}

// withDefaults replaces unusable fields with their default values
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Line.YTolerance <= 0 {
		c.Line = def.Line
	}
	if !isFraction(c.LeftColumnFraction) {
		c.LeftColumnFraction = def.LeftColumnFraction
	}
	if !isFraction(c.CustomerRegion.MinXFraction) {
		c.CustomerRegion.MinXFraction = def.CustomerRegion.MinXFraction
	}
	if !isFraction(c.CustomerRegion.MinYFraction) {
		c.CustomerRegion.MinYFraction = def.CustomerRegion.MinYFraction
	}
	if len(c.AnchorWords) == 0 {
		c.AnchorWords = def.AnchorWords
	}
	return c
}

func isFraction(f float64) bool {
	return f > 0 && f <= 1
}
