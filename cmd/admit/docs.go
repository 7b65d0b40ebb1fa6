package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

//go:embed docs/patterns.md
var patternsDoc string

// topics maps docs topic names to their embedded content.
var topics = map[string]string{
	"patterns": patternsDoc,
}

func newDocsCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "docs TOPIC",
		Short:     "Show extended documentation",
		Long:      `Show extended documentation for a topic. Available topics: patterns.`,
		ValidArgs: []string{"patterns"},
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			content := topics[args[0]]
			fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(content))
			return nil
		},
	}
}

// renderMarkdown converts markdown to terminal output, falling back to the
// plain text on any rendering failure.
func renderMarkdown(content string) string {
	var options []glamour.TermRendererOption
	if isatty.IsTerminal(os.Stdout.Fd()) && termenv.EnvColorProfile() != termenv.Ascii {
		options = append(options, glamour.WithAutoStyle(), glamour.WithWordWrap(80))
	} else {
		options = append(options, glamour.WithStylePath("notty"))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}

	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return rendered
}
