package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/lvrach/timecalc/internal/config"
)

// InitCmd chooses the clock mode and time zone interactively or via flags.
type InitCmd struct {
	Mode  string `help:"Clock mode: 12 or 24 (skips the prompt)."`
	UTC   bool   `help:"Evaluate in UTC (skips the prompt)." xor:"zone"`
	Local bool   `help:"Evaluate in local time (skips the prompt)." xor:"zone"`
}

func (cmd *InitCmd) Run(globals *Globals) error {
	// Non-interactive: any flag skips the prompts.
	if cmd.Mode != "" || cmd.UTC || cmd.Local {
		return cmd.applyFlags(globals)
	}
	if globals.JSON {
		return newCLIError(ExitInvalidInput, "interactive_only",
			"init needs --mode, --utc or --local when used with --json.")
	}
	return cmd.interactive(globals)
}

func (cmd *InitCmd) applyFlags(globals *Globals) error {
	switch cmd.Mode {
	case "", "12", "24":
	default:
		return newCLIError(ExitInvalidInput, "invalid_mode",
			fmt.Sprintf("Invalid mode %q. Use 12 or 24.", cmd.Mode))
	}

	cfg, err := config.Update(func(c *config.Config) error {
		if cmd.Mode != "" {
			c.Use24Hour = cmd.Mode == "24"
		}
		switch {
		case cmd.UTC:
			c.UTC = true
		case cmd.Local:
			c.UTC = false
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return cmd.report(globals, cfg)
}

func (cmd *InitCmd) interactive(globals *Globals) error {
	cfg, err := config.Load()
	if err != nil {
		// config.Update below replaces a corrupt file and reports other errors.
		cfg = config.Default()
	}

	fmt.Println()
	if config.Exists() {
		fmt.Printf("  timecalc is already configured (%s clock). Choose again or press Ctrl+C to keep it.\n",
			modeLabel(cfg.Use24Hour))
	} else {
		fmt.Println("  Welcome to timecalc!")
		fmt.Println("  Pick how times are written and which clock \"now\" reads.")
	}
	fmt.Println()

	mode := cfg.ModeName()
	err = runField(
		huh.NewSelect[string]().
			Title("Clock mode").
			Options(
				huh.NewOption("12-hour (5:00pm, 9:00am)", "12"),
				huh.NewOption("24-hour (17:00, 09:00)", "24"),
			).
			Value(&mode),
	)
	if err != nil {
		return err
	}

	zone := "local"
	if cfg.UTC {
		zone = "utc"
	}
	err = runField(
		huh.NewSelect[string]().
			Title("Time zone").
			Options(
				huh.NewOption(fmt.Sprintf("Local time (%s)", time.Local.String()), "local"),
				huh.NewOption("UTC", "utc"),
			).
			Value(&zone),
	)
	if err != nil {
		return err
	}

	cfg, err = config.Update(func(c *config.Config) error {
		c.Use24Hour = mode == "24"
		c.UTC = zone == "utc"
		return nil
	})
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return cmd.report(globals, cfg)
}

func (cmd *InitCmd) report(globals *Globals, cfg config.Config) error {
	zone := "local time"
	if cfg.UTC {
		zone = "UTC"
	}
	msg := fmt.Sprintf("Saved: %s clock, %s.", modeLabel(cfg.Use24Hour), zone)
	if globals.JSON {
		printSuccessJSON(msg)
		return nil
	}

	example := "5:00pm + 5hr30min"
	if cfg.Use24Hour {
		example = "17:00 + 5hr30min"
	}
	hint := lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Render("timecalc " + example)
	fmt.Println("\n" + msg)
	fmt.Println("\nTry it: " + hint)
	return nil
}

// runField wraps a single huh field in a form that supports
// Ctrl+C and Ctrl+D for quitting, with bottom margin styling.
func runField(field huh.Field) error {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"))

	t := huh.ThemeBase()
	t.Focused.Base = t.Focused.Base.MarginBottom(1)
	t.Blurred.Base = t.Blurred.Base.MarginBottom(1)

	return huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false).
		WithKeyMap(km).
		WithTheme(t).
		Run()
}
