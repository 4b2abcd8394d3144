package main

import (
	"fmt"

	"github.com/lvrach/timecalc/internal/config"
)

// ModeCmd shows or changes the saved 12/24-hour clock mode.
type ModeCmd struct {
	Set string `arg:"" optional:"" help:"12, 24 or toggle. Omit to show the current mode."`
}

func (cmd *ModeCmd) Run(globals *Globals) error {
	if cmd.Set == "" {
		return cmd.show(globals)
	}

	var update func(*config.Config) error
	switch cmd.Set {
	case "12", "24":
		update = func(c *config.Config) error {
			c.Use24Hour = cmd.Set == "24"
			return nil
		}
	case "toggle":
		update = func(c *config.Config) error {
			c.Use24Hour = !c.Use24Hour
			return nil
		}
	default:
		return newCLIError(ExitInvalidInput, "invalid_mode",
			fmt.Sprintf("Invalid mode %q. Use 12, 24 or toggle.", cmd.Set))
	}

	cfg, err := config.Update(update)
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if globals.JSON {
		printJSON(map[string]any{"status": "ok", "mode": cfg.ModeName()})
		return nil
	}
	printSuccessHuman(fmt.Sprintf("Switched to the %s clock.", modeLabel(cfg.Use24Hour)))
	return nil
}

func (cmd *ModeCmd) show(globals *Globals) error {
	cfg, err := config.Load()
	if err != nil {
		return newCLIError(ExitRuntimeError, "config_error",
			fmt.Sprintf("Failed to load config: %s", err))
	}

	zone := "local"
	if cfg.UTC {
		zone = "utc"
	}

	saved := config.Exists()
	if globals.JSON {
		printJSON(map[string]any{"status": "ok", "mode": cfg.ModeName(), "zone": zone, "saved": saved})
		return nil
	}

	example := "5:00pm"
	if cfg.Use24Hour {
		example = "17:00"
	}
	msg := fmt.Sprintf("%s clock (%s), %s time.", modeLabel(cfg.Use24Hour), example, zone)
	if !saved {
		msg += " Defaults; run timecalc init to choose."
	}
	printSuccessHuman(msg)
	return nil
}
