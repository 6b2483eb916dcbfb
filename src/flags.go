package main

import (
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"lifegrid/src/config"
)

//unset marks a numeric flag that was not given, it keeps the value from the config file
const unset = -1

//EnvOptions is the parsed command line
type EnvOptions struct {
	configFile string
	name       string
	grid       bool
	noColors   bool

	width       int
	height      int
	interval    time.Duration
	maxSteps    int
	workers     int
	every       int
	interactive bool
	blank       bool
	template    string
}

func newEnvOptions() *EnvOptions {
	return &EnvOptions{
		width:    unset,
		height:   unset,
		interval: unset,
		maxSteps: unset,
		workers:  unset,
		every:    unset,
	}
}

//newParser binds the command line to eo
func newParser(eo *EnvOptions) *flaggy.Parser {
	p := flaggy.NewParser("lifegrid")
	p.Description = "Game of Life on a toroidal grid"
	p.ShowHelpOnUnexpected = true
	p.String(&eo.configFile, "c", "config", "JSON configuration file, flags override its values")
	p.Int(&eo.width, "x", "width", "Width of a simulation field")
	p.Int(&eo.height, "y", "height", "Height of a simulation field")
	p.Duration(&eo.interval, "i", "interval", "Simulation speed (interval between the steps) in format the number with 'ms' suffix, for example 150ms")
	p.Int(&eo.maxSteps, "s", "maxSteps", "Limit the simulation to maxSteps, 0 is unlimited")
	p.Int(&eo.workers, "w", "workers", "Row bands computed concurrently on each step")
	p.Int(&eo.every, "e", "every", "Print the status every N generations (headless mode)")
	p.Bool(&eo.interactive, "n", "interactive", "Start interactive mode")
	p.Bool(&eo.blank, "b", "blank", "Start with all cells dead instead of the fixed pattern")
	p.String(&eo.template, "t", "template", "Settle a template in the middle [glider|blinker|block|beacon]")
	p.Bool(&eo.grid, "g", "grid", "Print the grid along with the status (headless mode)")
	p.Bool(&eo.noColors, "", "no-colors", "Plain output (headless mode)")
	p.String(&eo.name, "", "greet", "Name to greet on start")
	return p
}

//config loads the config file, if any, and overlays the flags that were given
func (eo *EnvOptions) config() (config.Config, error) {
	cfg := config.DefaultConfig()
	if eo.configFile != "" {
		var err error
		if cfg, err = config.Load(eo.configFile); err != nil {
			return cfg, err
		}
	}
	if err := eo.apply(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (eo *EnvOptions) apply(cfg *config.Config) error {
	for name, v := range map[string]int{
		"width":    eo.width,
		"height":   eo.height,
		"maxSteps": eo.maxSteps,
		"workers":  eo.workers,
		"every":    eo.every,
	} {
		if v < unset {
			return errors.Errorf("%s must not be negative, got %d", name, v)
		}
	}
	if eo.width != unset {
		cfg.Width = uint32(eo.width)
	}
	if eo.height != unset {
		cfg.Height = uint32(eo.height)
	}
	if eo.interval != unset {
		cfg.Interval = eo.interval
	}
	if eo.maxSteps != unset {
		cfg.MaxSteps = eo.maxSteps
	}
	if eo.workers != unset {
		cfg.Workers = eo.workers
	}
	if eo.every != unset {
		cfg.PrintEvery = eo.every
	}
	if eo.interactive {
		cfg.Interactive = true
	}
	if eo.blank {
		cfg.Pattern = false
	}
	if eo.template != "" {
		cfg.Template = eo.template
	}
	return nil
}
