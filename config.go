package hako

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// LayoutOrder selects how a World orders the component IDs of a layout.
type LayoutOrder string

const (
	// InsertionOrder keeps components in the order they were added, so the
	// same component set reached in two different orders lands in two
	// different archetypes.
	InsertionOrder LayoutOrder = "insertion"
	// CanonicalOrder sorts layouts by component ID, merging archetypes that
	// hold the same component set.
	CanonicalOrder LayoutOrder = "canonical"
)

// ErrInvalidLayoutOrder is returned for a layout order other than
// InsertionOrder or CanonicalOrder.
var ErrInvalidLayoutOrder = errors.New("hako: invalid layout order")

// Config holds the construction-time settings of a World.
type Config struct {
	LayoutOrder     LayoutOrder `json:"layout_order" yaml:"layout_order"`
	InitialCapacity int         `json:"initial_capacity" yaml:"initial_capacity"`
	// LogLevel is a zap level name. Empty disables logging.
	LogLevel string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// DefaultConfig returns the settings NewWorld uses when no Config is given.
func DefaultConfig() Config {
	return Config{
		LayoutOrder:     InsertionOrder,
		InitialCapacity: 1024,
	}
}

// LoadConfig decodes a YAML document on top of DefaultConfig and validates
// the result.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("hako: decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks every field of c.
func (c Config) Validate() error {
	switch c.LayoutOrder {
	case InsertionOrder, CanonicalOrder:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLayoutOrder, c.LayoutOrder)
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("hako: initial capacity must not be negative, got %d", c.InitialCapacity)
	}
	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("hako: log level: %w", err)
		}
	}
	return nil
}

// NewLogger builds a JSON zap logger writing to stderr at c.LogLevel. It
// returns a no-op logger when LogLevel is empty.
func (c Config) NewLogger() (*zap.Logger, error) {
	if c.LogLevel == "" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("hako: log level: %w", err)
	}
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return zc.Build()
}
