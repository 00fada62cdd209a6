package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Built-in monitor parameters. There is no config file, CLI flag, or
// environment variable to change them.
const (
	// DefaultLowThreshold is the charge percentage at or below which the
	// user is asked to plug in.
	DefaultLowThreshold = 20
	// DefaultHighThreshold is the charge percentage at or above which the
	// user is asked to unplug.
	DefaultHighThreshold = 80
	// DefaultPollInterval is how often the battery is checked.
	DefaultPollInterval = time.Minute
)

// Config holds the monitor parameters. They are compiled-in constants today;
// the struct exists so adaptive polling or per-user thresholds can be added
// later without restructuring the monitor.
type Config struct {
	LowThreshold  int
	HighThreshold int
	PollInterval  time.Duration
}

// New returns the built-in configuration.
func New() Config {
	return Config{
		LowThreshold:  DefaultLowThreshold,
		HighThreshold: DefaultHighThreshold,
		PollInterval:  DefaultPollInterval,
	}
}

// Validate checks that 0 <= low < high <= 100 and the interval is positive.
func (c Config) Validate() error {
	if c.LowThreshold < 0 || c.LowThreshold > 100 {
		return fmt.Errorf("low threshold must be between 0 and 100, got %d", c.LowThreshold)
	}
	if c.HighThreshold < 0 || c.HighThreshold > 100 {
		return fmt.Errorf("high threshold must be between 0 and 100, got %d", c.HighThreshold)
	}
	if c.LowThreshold >= c.HighThreshold {
		return fmt.Errorf("low threshold must be less than high threshold, got %d >= %d", c.LowThreshold, c.HighThreshold)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	return nil
}

func (c Config) LogrusFields() logrus.Fields {
	return logrus.Fields{
		"lowThreshold":  c.LowThreshold,
		"highThreshold": c.HighThreshold,
		"pollInterval":  c.PollInterval.String(),
	}
}
