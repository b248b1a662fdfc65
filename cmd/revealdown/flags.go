package main

import (
	"os"

	"github.com/connctd/revealdown"
	"github.com/urfave/cli"
)

var deckFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "slide-level",
		Usage: "Deepest heading level that starts a new slide",
		Value: 1,
	},
	cli.BoolFlag{
		Name:  "hr-breaks-slide",
		Usage: "Treat horizontal rules as sub-slide separators",
	},
	cli.BoolFlag{
		Name:  "no-header-footer",
		Usage: "Emit only the slides without the surrounding page",
	},
	cli.StringFlag{
		Name:  "header",
		Usage: "Read the page header from `FILE`",
	},
	cli.StringFlag{
		Name:  "footer",
		Usage: "Read the page footer from `FILE`",
	},
	cli.StringFlag{
		Name:  "engine",
		Usage: "Markdown engine, blackfriday or goldmark",
		Value: "blackfriday",
	},
}

// deckOptions maps the deck flags that were given on the command line to
// render options. Unset flags leave defaults and front matter alone.
func deckOptions(ctx *cli.Context) ([]revealdown.Option, error) {
	if err := revealdown.UseMarkdownEngine(ctx.String("engine")); err != nil {
		return nil, err
	}

	var opts []revealdown.Option
	if ctx.IsSet("slide-level") {
		opts = append(opts, revealdown.WithSlideLevel(ctx.Int("slide-level")))
	}
	if ctx.IsSet("hr-breaks-slide") {
		opts = append(opts, revealdown.WithHorizontalRuleBreaks(ctx.Bool("hr-breaks-slide")))
	}
	if ctx.IsSet("no-header-footer") {
		opts = append(opts, revealdown.WithHeaderFooter(!ctx.Bool("no-header-footer")))
	}
	if path := ctx.String("header"); path != "" {
		header, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, revealdown.WithHeader(string(header)))
	}
	if path := ctx.String("footer"); path != "" {
		footer, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		opts = append(opts, revealdown.WithFooter(string(footer)))
	}
	return opts, nil
}
