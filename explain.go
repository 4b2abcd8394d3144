package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lvrach/timecalc/internal/timeexpr"
)

// ExplainCmd shows each evaluation stage for an expression.
type ExplainCmd struct {
	ExpressionInput `embed:""`
	ClockFlags      `embed:""`
}

// operandReport describes one side of the expression.
type operandReport struct {
	Literal string `json:"literal"`
	Kind    string `json:"kind,omitempty"`
	Millis  int64  `json:"millis"`
	Display string `json:"display,omitempty"`
}

// explanation is the stage-by-stage trace of one evaluation.
// Stages after the first failure are left empty.
type explanation struct {
	Expression string         `json:"expression"`
	Tokens     []string       `json:"tokens"`
	Operator   string         `json:"operator,omitempty"`
	Left       *operandReport `json:"left,omitempty"`
	Right      *operandReport `json:"right,omitempty"`
	Shape      string         `json:"shape,omitempty"`
	Result     string         `json:"result"`
	Millis     int64          `json:"millis,omitempty"`
	FailedAt   string         `json:"failed_at,omitempty"`
}

func (e explanation) ok() bool { return e.FailedAt == "" }

// explainExpression runs the pipeline one stage at a time, recording
// what each stage produced.
func explainExpression(p timeexpr.Parser, f timeexpr.Formatter, input string) explanation {
	ex := explanation{Expression: input, Result: timeexpr.InvalidInput}

	tokens := timeexpr.Tokenize(input)
	ex.Tokens = make([]string, len(tokens))
	for i, tok := range tokens {
		ex.Tokens[i] = tok.Value
	}

	terms, ok := timeexpr.SplitTerms(tokens)
	if !ok {
		ex.FailedAt = "terms"
		return ex
	}
	ex.Operator = terms.Op.Value

	left, lok := explainOperand(p, f, terms.Left)
	right, rok := explainOperand(p, f, terms.Right)
	ex.Left, ex.Right = &left, &right
	if !lok || !rok {
		ex.FailedAt = "literal"
		return ex
	}

	expr, ok := p.ParseTerms(terms)
	if !ok {
		ex.FailedAt = "shape"
		return ex
	}
	ex.Shape = expr.Shape.String()

	v, ok := timeexpr.Evaluate(expr)
	if !ok {
		ex.FailedAt = "evaluate"
		return ex
	}
	ex.Millis = v.Millis
	ex.Result = f.Format(v)
	return ex
}

func explainOperand(p timeexpr.Parser, f timeexpr.Formatter, lit string) (operandReport, bool) {
	r := operandReport{Literal: lit}
	v, ok := p.ParseLiteral(lit)
	if !ok {
		return r, false
	}
	r.Kind = v.Kind.String()
	r.Millis = v.Millis
	r.Display = f.Format(v)
	return r, true
}

var (
	explainLabelStyle = lipgloss.NewStyle().Bold(true).Width(10)
	explainDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	explainOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	explainBadStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func (cmd *ExplainCmd) Run(globals *Globals) error {
	input, err := cmd.Resolve()
	if err != nil {
		return err
	}

	calc, err := cmd.newCalculator()
	if err != nil {
		return err
	}

	p, f := calc.Snapshot()
	ex := explainExpression(p, f, input)

	if globals.JSON {
		status := "ok"
		if !ex.ok() {
			status = "error"
		}
		printJSON(struct {
			Status string `json:"status"`
			explanation
		}{status, ex})
	} else {
		fmt.Fprint(os.Stdout, renderExplanation(ex))
	}

	if !ex.ok() {
		return newCLIError(ExitInvalidInput, "invalid_input", timeexpr.InvalidInput)
	}
	return nil
}

// renderExplanation formats ex as an aligned table for the terminal.
func renderExplanation(ex explanation) string {
	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(explainLabelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("input", ex.Expression)
	if len(ex.Tokens) == 0 {
		row("tokens", explainDimStyle.Render("(none)"))
	} else {
		row("tokens", strings.Join(ex.Tokens, " "))
	}

	if ex.FailedAt == "terms" {
		row("terms", explainBadStyle.Render("expected <time> <+|-|to> <time>"))
		row("result", explainBadStyle.Render(ex.Result))
		return b.String()
	}
	row("operator", ex.Operator)
	row("left", renderOperand(ex.Left))
	row("right", renderOperand(ex.Right))

	switch ex.FailedAt {
	case "literal":
	case "shape":
		row("shape", explainBadStyle.Render(fmt.Sprintf("cannot apply %q to %s and %s",
			ex.Operator, ex.Left.Kind, ex.Right.Kind)))
	case "evaluate":
		row("shape", ex.Shape)
	default:
		row("shape", ex.Shape)
		row("millis", explainDimStyle.Render(fmt.Sprint(ex.Millis)))
		row("result", explainOKStyle.Render(ex.Result))
		return b.String()
	}
	row("result", explainBadStyle.Render(ex.Result))
	return b.String()
}

func renderOperand(r *operandReport) string {
	if r.Kind == "" {
		return fmt.Sprintf("%q %s", r.Literal, explainBadStyle.Render("unrecognized"))
	}
	return fmt.Sprintf("%q %s %s", r.Literal, r.Kind,
		explainDimStyle.Render(fmt.Sprintf("(%s, %d ms)", r.Display, r.Millis)))
}
