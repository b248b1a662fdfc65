package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/connctd/revealdown"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var buildCommand = cli.Command{
	Name:      "build",
	Aliases:   []string{"render", "b", "r"},
	Usage:     "Render a deck into a reveal.js page",
	ArgsUsage: "<input> [output]",
	Flags: append([]cli.Flag{
		cli.BoolFlag{
			Name:  "emit-assets",
			Usage: "Also write reveal.js next to the output",
		},
	}, deckFlags...),
	Action: func(ctx *cli.Context) error {
		input := ctx.Args().First()
		if input == "" {
			return cli.NewExitError("missing input file", 2)
		}
		output := ctx.Args().Get(1)
		if output == "" {
			output = outputPath(input)
		}

		opts, err := deckOptions(ctx)
		if err != nil {
			return err
		}
		page, err := revealdown.RenderFile(input, opts...)
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, page, 0666); err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"input": input, "output": output}).Info("deck written")

		if ctx.Bool("emit-assets") {
			return revealdown.EmitRevealJS(filepath.Dir(output))
		}
		return nil
	},
}

// outputPath replaces the extension of input with .html.
func outputPath(input string) string {
	ext := filepath.Ext(input)
	if strings.EqualFold(ext, ".html") || strings.EqualFold(ext, ".htm") {
		return strings.TrimSuffix(input, ext) + ".slides.html"
	}
	return strings.TrimSuffix(input, ext) + ".html"
}
