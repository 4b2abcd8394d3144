package main

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBinary string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "timecalc-test")
	if err != nil {
		panic(err)
	}
	testBinary = filepath.Join(dir, "timecalc")
	cmd := exec.Command("go", "build", "-o", testBinary, ".") //nolint:gosec // test binary path is controlled by TestMain
	cmd.Dir = "."
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("build failed: " + err.Error())
	}
	code := m.Run()
	_ = os.RemoveAll(dir) //nolint:gosec // best-effort cleanup
	os.Exit(code)
}

// fixedNow pins "now" so instant results do not depend on the wall clock.
var fixedNow = []string{"--now", "1980-01-01T13:00", "--utc"}

// runCLI executes the built binary with args in an isolated temp HOME directory.
// It returns stdout, stderr, and the process exit code.
func runCLI(t *testing.T, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	return runCLIInHome(t, t.TempDir(), args...)
}

// runCLIInHome is runCLI with a caller-owned HOME, so saved settings
// carry over between invocations.
func runCLIInHome(t *testing.T, home string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()

	cmd := exec.Command(testBinary, args...) //nolint:gosec // test binary path controlled by test setup
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"XDG_CONFIG_HOME="+filepath.Join(home, ".config"),
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err := cmd.Run()
	exitCode = 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			t.Fatalf("failed to run CLI: %v", err)
		}
	}

	return stdoutBuf.String(), stderrBuf.String(), exitCode
}

// withNow places the pinned clock flags right after the subcommand.
func withNow(command string, args ...string) []string {
	out := append([]string{command}, fixedNow...)
	return append(out, args...)
}

// --- guide command ---

func TestCLI_GuideRaw(t *testing.T) {
	stdout, _, exitCode := runCLI(t, "guide", "--raw")

	assert.Equal(t, 0, exitCode, "guide should exit 0")
	assert.Contains(t, stdout, "# timecalc expression guide")
	assert.Contains(t, stdout, "Invalid Input")
}

func TestCLI_GuideJSON(t *testing.T) {
	stdout, _, exitCode := runCLI(t, "--json", "guide")

	assert.Equal(t, 0, exitCode)
	var resp map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Contains(t, resp["guide"], "<operand>")
}

// --- eval command ---

func TestCLI_EvalDefaultCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "instant plus duration", args: []string{"5:00pm", "+", "5hr30min"}, expected: "10:30pm"},
		{name: "instant minus duration", args: []string{"5:00pm - 5hr30min"}, expected: "11:30am"},
		{name: "span", args: []string{"9:00am", "to", "5:30pm"}, expected: "8hr30min"},
		{name: "span rolls over", args: []string{"5:00pm", "to", "4:30pm"}, expected: "23hr30min"},
		{name: "negative duration", args: []string{"1hr30min - 2hr"}, expected: "-30min"},
		{name: "now", args: []string{"now", "+", "1hr"}, expected: "2:00pm"},
		{name: "24-hour flag", args: []string{"--24h", "17:00", "+", "45min"}, expected: "17:45"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, exitCode := runCLI(t, withNow("eval", tt.args...)...)
			assert.Equal(t, 0, exitCode, "stderr: %s", stderr)
			assert.Equal(t, tt.expected, strings.TrimSpace(stdout))
		})
	}
}

func TestCLI_EvalExplicitCommand(t *testing.T) {
	stdout, _, exitCode := runCLI(t, "eval", "2hr", "+", "30min")
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "2hr30min", strings.TrimSpace(stdout))
}

func TestCLI_EvalJSON(t *testing.T) {
	stdout, _, exitCode := runCLI(t, withNow("eval", "--json", "5:00pm", "+", "5hr30min")...)
	assert.Equal(t, 0, exitCode)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "10:30pm", resp["result"])
	assert.Equal(t, "instant", resp["kind"])
	assert.Equal(t, "instant_and_duration", resp["shape"])
	assert.InDelta(t, 315613800000, resp["millis"], 0)
	assert.Equal(t, "12-hour", resp["mode"])
}

func TestCLI_EvalInvalid(t *testing.T) {
	_, stderr, exitCode := runCLI(t, "5:00pm", "+", "5:00pm")
	assert.Equal(t, ExitInvalidInput, exitCode)
	assert.Contains(t, stderr, "Invalid Input")
}

func TestCLI_EvalInvalidJSON(t *testing.T) {
	_, stderr, exitCode := runCLI(t, "--json", "5hr", "to", "1hr")
	assert.Equal(t, ExitInvalidInput, exitCode)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(stderr), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "invalid_input", resp["error"])
}

func TestCLI_EvalModeFlagsExclusive(t *testing.T) {
	_, _, exitCode := runCLI(t, "eval", "--24h", "--12h", "1hr", "+", "1hr")
	assert.NotEqual(t, 0, exitCode)
}

func TestCLI_EvalBadNow(t *testing.T) {
	_, stderr, exitCode := runCLI(t, "eval", "--now", "tomorrow", "now", "+", "1hr")
	assert.Equal(t, ExitInvalidInput, exitCode)
	assert.Contains(t, stderr, "Cannot parse")
}

func TestCLI_EvalFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expr.txt")
	require.NoError(t, os.WriteFile(path, []byte("3hr + 45min\n"), 0o600))

	stdout, _, exitCode := runCLI(t, "eval", "--file", path)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "3hr45min", strings.TrimSpace(stdout))
}

func TestCLI_NoArgs(t *testing.T) {
	_, stderr, exitCode := runCLI(t)
	assert.Equal(t, ExitInvalidInput, exitCode)
	assert.Contains(t, stderr, "No expression")
}

// --- mode command ---

func TestCLI_ModeDefault(t *testing.T) {
	stdout, _, exitCode := runCLI(t, "mode")
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "12-hour")
	assert.Contains(t, stdout, "timecalc init")
}

func TestCLI_ModeReportsSaved(t *testing.T) {
	home := t.TempDir()

	stdout, _, exitCode := runCLIInHome(t, home, "--json", "mode")
	require.Equal(t, 0, exitCode)
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, false, resp["saved"])

	_, _, exitCode = runCLIInHome(t, home, "mode", "24")
	require.Equal(t, 0, exitCode)

	stdout, _, _ = runCLIInHome(t, home, "--json", "mode")
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, true, resp["saved"])
	assert.Equal(t, "24", resp["mode"])
}

func TestCLI_ModePersists(t *testing.T) {
	home := t.TempDir()

	_, _, exitCode := runCLIInHome(t, home, "mode", "24")
	require.Equal(t, 0, exitCode)

	stdout, _, exitCode := runCLIInHome(t, home, withNow("eval", "5:00pm", "+", "1hr")...)
	assert.Equal(t, ExitInvalidInput, exitCode, "12-hour literal is invalid in 24-hour mode")
	assert.Empty(t, stdout)

	stdout, _, exitCode = runCLIInHome(t, home, withNow("eval", "17:00", "+", "1hr")...)
	assert.Equal(t, 0, exitCode)
	assert.Equal(t, "18:00", strings.TrimSpace(stdout))

	_, _, exitCode = runCLIInHome(t, home, "mode", "toggle")
	require.Equal(t, 0, exitCode)

	stdout, _, _ = runCLIInHome(t, home, "--json", "mode")
	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "12", resp["mode"])
}

func TestCLI_ModeInvalid(t *testing.T) {
	_, stderr, exitCode := runCLI(t, "mode", "36")
	assert.Equal(t, ExitInvalidInput, exitCode)
	assert.Contains(t, stderr, "Invalid mode")
}

// --- init command ---

func TestCLI_InitFlags(t *testing.T) {
	home := t.TempDir()

	stdout, _, exitCode := runCLIInHome(t, home, "--json", "init", "--mode", "24", "--utc")
	require.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "24-hour")

	data, err := os.ReadFile(filepath.Join(home, ".config", "timecalc", "config.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"use_24_hour": true`)
	assert.Contains(t, string(data), `"utc": true`)
}

func TestCLI_InitJSONNeedsFlags(t *testing.T) {
	_, _, exitCode := runCLI(t, "--json", "init")
	assert.Equal(t, ExitInvalidInput, exitCode)
}

// --- explain command ---

func TestCLI_Explain(t *testing.T) {
	stdout, _, exitCode := runCLI(t, withNow("explain", "5:00pm to 4:30pm")...)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout, "instant_to_instant")
	assert.Contains(t, stdout, "23hr30min")
}

func TestCLI_ExplainInvalidJSON(t *testing.T) {
	stdout, _, exitCode := runCLI(t, withNow("explain", "--json", "5hr + 5:00pm")...)
	assert.Equal(t, ExitInvalidInput, exitCode)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Equal(t, "shape", resp["failed_at"])
}

// --- calc command ---

func TestCLI_CalcJSONRefused(t *testing.T) {
	_, _, exitCode := runCLI(t, "--json", "calc")
	assert.Equal(t, ExitInvalidInput, exitCode)
}

// --- help ---

func TestCLI_Help(t *testing.T) {
	stdout, _, exitCode := runCLI(t, "--help")
	assert.Equal(t, 0, exitCode)
	for _, cmd := range []string{"eval", "mode", "explain", "calc", "init", "guide"} {
		assert.Contains(t, stdout, cmd)
	}
}
