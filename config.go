package glyphatlas

// Canvas size limits.
const (
	MinSize = 1
	MaxSize = 16384
)

// Config holds atlas configuration.
type Config struct {
	// Size is the atlas canvas size (width = height) in pixels.
	// Default: 256
	Size int

	// Padding is the minimum gap between two tiles and between a tile and the
	// canvas border.
	// Default: 1
	Padding int
}

// DefaultConfig returns default configuration.
func DefaultConfig() Config {
	return Config{
		Size:    256,
		Padding: 1,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Size < MinSize {
		return &ConfigError{Field: "Size", Reason: "must be positive"}
	}
	if c.Size > MaxSize {
		return &ConfigError{Field: "Size", Reason: "must be at most 16384"}
	}
	if c.Padding < 1 {
		return &ConfigError{Field: "Padding", Reason: "must be at least 1"}
	}
	if 2*c.Padding >= c.Size {
		return &ConfigError{Field: "Padding", Reason: "must be less than half Size"}
	}
	return nil
}
