package main

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ExpressionInput provides shared expression resolution (args, file, stdin, pipe).
// Embedded in EvalCmd and ExplainCmd.
type ExpressionInput struct {
	Expression []string `arg:"" optional:"" help:"Expression, e.g. 5:00pm + 5hr30min. Words may be passed unquoted."`
	File       string   `help:"Read the expression from a file." short:"F" type:"existingfile"`
	Stdin      bool     `help:"Force reading the expression from stdin."`
}

// Resolve returns the expression text, checking args -> file -> stdin flag -> piped stdin.
func (in *ExpressionInput) Resolve() (string, error) {
	// 1. Positional arguments, joined as typed.
	if len(in.Expression) > 0 {
		return strings.Join(in.Expression, " "), nil
	}

	// 2. --file flag.
	if in.File != "" {
		return readFile(in.File)
	}

	// 3. --stdin flag.
	if in.Stdin {
		return readStdin()
	}

	// 4. Detect piped stdin (not a terminal).
	fi, err := os.Stdin.Stat()
	if err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		return readStdin()
	}

	// 5. No expression provided.
	return "", newCLIError(ExitInvalidInput, "empty_expression",
		"No expression provided. Pass it as arguments, --file, or pipe via stdin.")
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path via CLI flag
	if err != nil {
		return "", newCLIError(ExitRuntimeError, "read_file_failed",
			fmt.Sprintf("Failed to read file %q: %s", path, err))
	}
	expr := strings.TrimSpace(string(data))
	if expr == "" {
		return "", newCLIError(ExitInvalidInput, "empty_expression",
			fmt.Sprintf("File %q is empty.", path))
	}
	return expr, nil
}

func readStdin() (string, error) {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	expr := strings.TrimSpace(string(data))
	if expr == "" {
		return "", newCLIError(ExitInvalidInput, "empty_expression",
			"No expression provided (stdin was empty).")
	}
	return expr, nil
}
