package main

import (
	_ "embed"
	"fmt"
	"os"

	"golang.org/x/term"
)

//go:embed timecalc.guide.md
var guideContent string

const guideWidth = 80

// GuideCmd prints the expression syntax guide to stdout.
type GuideCmd struct {
	Raw bool `help:"Print the Markdown source without terminal styling."`
}

func (cmd *GuideCmd) Run(globals *Globals) error {
	if globals.JSON {
		printJSON(map[string]string{"status": "ok", "guide": guideContent})
		return nil
	}
	if cmd.Raw || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Print(guideContent)
		return nil
	}
	fmt.Print(renderMarkdown(guideContent, guideWidth))
	return nil
}
