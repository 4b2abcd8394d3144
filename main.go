package main

import (
	"errors"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
)

// Globals holds flags shared across all commands.
type Globals struct {
	JSON  bool `help:"Output JSON for LLM/script consumption." short:"j"`
	Debug bool `help:"Log evaluation details to stderr."`
}

// CLI is the root command structure for timecalc.
type CLI struct {
	Globals

	Eval    EvalCmd    `cmd:"" default:"withargs" help:"Evaluate a time expression (default command)."`
	Mode    ModeCmd    `cmd:"" help:"Show or change the 12/24-hour clock mode."`
	Explain ExplainCmd `cmd:"" help:"Show how an expression is tokenized, classified and evaluated."`
	Calc    CalcCmd    `cmd:"" help:"Interactive calculator keypad."`
	Init    InitCmd    `cmd:"" help:"Choose clock mode and time zone (interactive setup)."`
	Guide   GuideCmd   `cmd:"" help:"Print the expression syntax guide."`
}

// cliExamples appear in the help text; each must evaluate in 12-hour mode.
var cliExamples = []string{"5:00pm + 5hr30min", "9:00am to 5:00pm"}

var cliDescription = "Add, subtract and measure clock times and durations: " +
	strings.Join(cliExamples, ", ") + "."

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("timecalc"),
		kong.Description(cliDescription),
		kong.UsageOnError(),
	)
	setupLogging(cli.Debug)

	err := ctx.Run(&cli.Globals)
	if err != nil {
		// Ctrl+C or Ctrl+D exits silently.
		if isUserAbort(err) {
			os.Exit(0)
		}

		var cliErr *CLIError
		if ok := asCLIError(err, &cliErr); ok {
			if cli.JSON {
				printErrorJSON(cliErr.Message, cliErr.Code)
			} else {
				printErrorHuman(cliErr.Message)
			}
			os.Exit(cliErr.ExitCode)
		}
		if cli.JSON {
			printErrorJSON(err.Error(), "runtime_error")
		} else {
			printErrorHuman(err.Error())
		}
		os.Exit(ExitRuntimeError)
	}
}

// isUserAbort returns true for errors caused by the user
// quitting an interactive prompt (Ctrl+C, Ctrl+D).
func isUserAbort(err error) bool {
	if errors.Is(err, huh.ErrUserAborted) {
		return true
	}
	// huh wraps bubbletea errors as "huh: <err>"
	if strings.Contains(err.Error(), "user aborted") {
		return true
	}
	return false
}
