package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lvrach/timecalc/internal/timeexpr"
)

// CalcCmd opens an interactive keypad that evaluates expressions as they
// are entered.
type CalcCmd struct {
	ClockFlags `embed:""`
}

func (cmd *CalcCmd) Run(globals *Globals) error {
	// The keypad is not meaningful for scripts.
	if globals.JSON {
		return newCLIError(ExitInvalidInput, "interactive_only",
			"calc is interactive. Use eval --json for scripts.")
	}

	calc, err := cmd.newCalculator()
	if err != nil {
		return err
	}

	p := tea.NewProgram(newCalcModel(calc))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("calc TUI: %w", err)
	}
	return nil
}

type calcKeyMap struct {
	Evaluate key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Quit     key.Binding
}

var calcKeys = calcKeyMap{
	Evaluate: key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "evaluate")),
	Toggle:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "12/24h")),
	Delete:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),
	Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c", "ctrl+d"), key.WithHelp("esc", "quit")),
}

const calcTapeRows = 6

// tapeEntry is one evaluated line, kept for the session only.
type tapeEntry struct {
	expression string
	result     string
}

// calcModel is the Bubble Tea model for the keypad. Each keypress appends
// one raw token; the token list is handed to the calculator unchanged.
type calcModel struct {
	calc   *timeexpr.Calculator
	tokens []string
	result string
	tape   []tapeEntry
	tapeVP viewport.Model
	width  int
}

func newCalcModel(calc *timeexpr.Calculator) calcModel {
	vp := viewport.New(40, calcTapeRows)
	vp.KeyMap = viewport.KeyMap{}
	return calcModel{calc: calc, tapeVP: vp}
}

func (m calcModel) Init() tea.Cmd {
	return nil
}

func (m calcModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, calcKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, calcKeys.Evaluate):
			m.evaluate()

		case key.Matches(msg, calcKeys.Toggle):
			m.calc.SetMode(!m.calc.Uses24Hour())

		case key.Matches(msg, calcKeys.Delete):
			if len(m.tokens) > 0 {
				m.tokens = m.tokens[:len(m.tokens)-1]
			}

		case key.Matches(msg, calcKeys.Clear):
			m.tokens = nil
			m.result = ""

		case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
			for _, r := range msg.Runes {
				m.tokens = append(m.tokens, string(r))
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.tapeVP.Width = max(msg.Width-4, 20)
		m.syncTape()
	}

	return m, nil
}

// evaluate runs the current tokens and moves them onto the tape.
func (m *calcModel) evaluate() {
	if len(m.tokens) == 0 {
		return
	}
	m.result = m.calc.Evaluate(m.tokens)
	m.tape = append(m.tape, tapeEntry{
		expression: strings.Join(m.tokens, ""),
		result:     m.result,
	})
	m.tokens = nil
	m.syncTape()
}

func (m *calcModel) syncTape() {
	lines := make([]string, len(m.tape))
	for i, e := range m.tape {
		res := calcResultStyle.Render(e.result)
		if e.result == timeexpr.InvalidInput {
			res = calcErrorStyle.Render(e.result)
		}
		lines[i] = calcDimStyle.Render(e.expression+" = ") + res
	}
	m.tapeVP.SetContent(strings.Join(lines, "\n"))
	m.tapeVP.GotoBottom()
}

var (
	calcTitleStyle  = lipgloss.NewStyle().Bold(true)
	calcModeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	calcDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	calcHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	calcResultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	calcErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	calcDisplay     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

func (m calcModel) View() string {
	var b strings.Builder

	mode := "12h"
	if m.calc.Uses24Hour() {
		mode = "24h"
	}
	b.WriteString(calcTitleStyle.Render("timecalc "))
	b.WriteString(calcModeStyle.Render(mode))
	b.WriteString(calcDimStyle.Render("  " + m.calc.Location().String()))
	b.WriteString("\n")

	if len(m.tape) > 0 {
		b.WriteString(m.tapeVP.View())
		b.WriteString("\n")
	}

	line := strings.Join(m.tokens, "") + "▏"
	if len(m.tokens) == 0 && m.result != "" {
		style := calcResultStyle
		if m.result == timeexpr.InvalidInput {
			style = calcErrorStyle
		}
		line = style.Render(m.result)
	}
	width := max(m.width-2, 24)
	b.WriteString(calcDisplay.Width(width - 2).Render(line))
	b.WriteString("\n")

	b.WriteString(calcHelpStyle.Render(m.helpText()))
	return b.String()
}

func (m calcModel) helpText() string {
	bindings := []key.Binding{calcKeys.Evaluate, calcKeys.Toggle, calcKeys.Delete, calcKeys.Clear, calcKeys.Quit}
	parts := make([]string, len(bindings))
	for i, kb := range bindings {
		h := kb.Help()
		parts[i] = h.Key + ": " + h.Desc
	}
	return strings.Join(parts, " · ")
}
