package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() {
	c.Match.SubtitlePattern = strings.TrimSpace(c.Match.SubtitlePattern)
	c.Match.VideoPattern = strings.TrimSpace(c.Match.VideoPattern)
	c.Extensions.Subtitles = strings.TrimSpace(c.Extensions.Subtitles)
	c.Extensions.Videos = strings.TrimSpace(c.Extensions.Videos)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

// Validate ensures the configuration is usable. Pattern compilation and
// extension-set checks happen later in internal/rules, once flags have been
// merged in; this only rejects values that can never be right.
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}
