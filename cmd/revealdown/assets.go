package main

import (
	"github.com/connctd/revealdown"
	"github.com/urfave/cli"
)

var defaultDistDir = "./dist"

var assetsCommand = cli.Command{
	Name:      "assets",
	Usage:     "Write the bundled reveal.js into a directory",
	ArgsUsage: "[dir]",
	Action: func(ctx *cli.Context) error {
		distDir := ctx.Args().First()
		if distDir == "" {
			distDir = defaultDistDir
		}
		return revealdown.EmitRevealJS(distDir)
	},
}
