package main

import (
	"os"

	"github.com/connctd/revealdown"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "revealdown"
	app.Usage = "Turn Markdown or HTML into reveal.js slides"
	app.Version = revealdown.Version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose",
			Usage: "Enable debug logging",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if ctx.GlobalBool("verbose") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		buildCommand,
		serveCommand,
		assetsCommand,
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.WithError(err).Error("revealdown failed")
		os.Exit(1)
	}
}
