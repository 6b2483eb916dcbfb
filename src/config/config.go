package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Config holds the configuration of a simulation session
type Config struct {
	Width       uint32        `json:"width"`
	Height      uint32        `json:"height"`
	Interval    time.Duration `json:"interval"`
	MaxSteps    int           `json:"max_steps"`
	Workers     int           `json:"workers"`
	Interactive bool          `json:"interactive"`
	Pattern     bool          `json:"pattern"`
	Template    string        `json:"template"`
	PrintEvery  int           `json:"print_every"`
}

// DefaultConfig returns the 64x64 seeded universe running headless
func DefaultConfig() Config {
	return Config{
		Width:      64,
		Height:     64,
		Interval:   100 * time.Millisecond,
		MaxSteps:   1000,
		Workers:    1,
		Pattern:    true,
		PrintEvery: 10,
	}
}

// UnmarshalJSON accepts the interval either as a duration string ("150ms") or as nanoseconds
func (c *Config) UnmarshalJSON(data []byte) error {
	type plain Config
	aux := struct {
		*plain
		Interval json.RawMessage `json:"interval"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.Interval) == 0 {
		return nil
	}

	var text string
	if err := json.Unmarshal(aux.Interval, &text); err == nil {
		d, err := time.ParseDuration(text)
		if err != nil {
			return errors.Wrapf(err, "interval %q", text)
		}
		c.Interval = d
		return nil
	}

	var nanos int64
	if err := json.Unmarshal(aux.Interval, &nanos); err != nil {
		return errors.Wrapf(err, "interval %s", aux.Interval)
	}
	c.Interval = time.Duration(nanos)
	return nil
}

// Load loads configuration from a JSON file on top of DefaultConfig
func Load(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[Load] invalid configuration in file: %+v", filename)
	}

	return config, nil
}

// Validate rejects sizes the universe cannot work with
func (c Config) Validate() error {
	if c.Width == 0 || c.Height == 0 {
		return errors.Errorf("dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Workers < 0 || c.MaxSteps < 0 || c.PrintEvery < 0 {
		return errors.New("workers, max_steps and print_every must not be negative")
	}
	return nil
}
