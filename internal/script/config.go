package script

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slices"
)

// Output formats accepted by [Write].
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTree = "tree"
)

var formats = []string{FormatText, FormatJSON, FormatYAML, FormatTree}

// Config holds the runtime configuration of a [Runner] and the CLI around it.
type Config struct {
	// Format selects how results are written. One of "text" (default),
	// "json", "yaml" or "tree".
	Format string

	// Strict makes the runner stop at the first step that fails with an
	// out-of-range index. When false such steps are logged and skipped.
	Strict bool

	// LogLevel is a zerolog level name. Defaults to "info".
	LogLevel string
}

// DefaultConfig returns a [Config] populated with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:   FormatText,
		LogLevel: zerolog.LevelInfoValue,
	}
}

// Validate reports whether c names a known format and log level.
func (c Config) Validate() error {
	if !slices.Contains(formats, c.Format) {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. An empty LogLevel means info.
func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}
