package main

import (
	"fmt"
	"time"

	"github.com/lvrach/timecalc/internal/config"
	"github.com/lvrach/timecalc/internal/timeexpr"
)

// ClockFlags override the saved configuration for a single invocation.
type ClockFlags struct {
	H24   bool   `name:"24h" help:"Use the 24-hour clock (17:00)." xor:"mode"`
	H12   bool   `name:"12h" help:"Use the 12-hour clock (5:00pm)." xor:"mode"`
	UTC   bool   `help:"Evaluate in UTC." xor:"zone"`
	Local bool   `help:"Evaluate in local time." xor:"zone"`
	Now   string `help:"Reference time for \"now\" and today's date (HH:MM, YYYY-MM-DDTHH:MM or RFC3339)."`
}

// apply merges the flags into cfg.
func (f *ClockFlags) apply(cfg config.Config) config.Config {
	switch {
	case f.H24:
		cfg.Use24Hour = true
	case f.H12:
		cfg.Use24Hour = false
	}
	switch {
	case f.UTC:
		cfg.UTC = true
	case f.Local:
		cfg.UTC = false
	}
	return cfg
}

// newCalculator builds a calculator from the saved config and the flags.
func (f *ClockFlags) newCalculator() (*timeexpr.Calculator, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, newCLIError(ExitRuntimeError, "config_error",
			fmt.Sprintf("Failed to load config: %s", err))
	}
	cfg = f.apply(cfg)

	opts := []timeexpr.Option{
		timeexpr.With24Hour(cfg.Use24Hour),
		timeexpr.WithLocation(cfg.Location()),
	}
	if f.Now != "" {
		ref, err := parseReference(f.Now, cfg.Location())
		if err != nil {
			return nil, err
		}
		opts = append(opts, timeexpr.WithClock(func() time.Time { return ref }))
	}
	return timeexpr.New(opts...), nil
}

func modeLabel(use24Hour bool) string {
	if use24Hour {
		return "24-hour"
	}
	return "12-hour"
}
