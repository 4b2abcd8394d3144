package main

import (
	"log/slog"

	"github.com/lvrach/timecalc/internal/timeexpr"
)

// EvalCmd evaluates one expression and prints the result.
type EvalCmd struct {
	ExpressionInput `embed:""`
	ClockFlags      `embed:""`
}

type evalResponse struct {
	Status     string `json:"status"`
	Expression string `json:"expression"`
	Result     string `json:"result"`
	Kind       string `json:"kind"`
	Shape      string `json:"shape"`
	Millis     int64  `json:"millis"`
	Mode       string `json:"mode"`
}

func (cmd *EvalCmd) Run(globals *Globals) error {
	input, err := cmd.Resolve()
	if err != nil {
		return err
	}

	calc, err := cmd.newCalculator()
	if err != nil {
		return err
	}

	slog.Debug("evaluate",
		"expression", input,
		"mode", modeLabel(calc.Uses24Hour()),
		"location", calc.Location().String())

	res, err := calc.Compute([]string{input})
	if err != nil {
		slog.Debug("evaluation failed", "error", err)
		return newCLIError(ExitInvalidInput, "invalid_input", timeexpr.InvalidInput)
	}

	slog.Debug("evaluated",
		"shape", res.Expression.Shape.String(),
		"left", res.Expression.Left.Millis,
		"right", res.Expression.Right.Millis,
		"kind", res.Value.Kind.String(),
		"millis", res.Value.Millis)

	if globals.JSON {
		printJSON(evalResponse{
			Status:     "ok",
			Expression: input,
			Result:     res.Text,
			Kind:       res.Value.Kind.String(),
			Shape:      res.Expression.Shape.String(),
			Millis:     res.Value.Millis,
			Mode:       modeLabel(calc.Uses24Hour()),
		})
		return nil
	}
	printSuccessHuman(res.Text)
	return nil
}
