package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/connctd/revealdown"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var serveCommand = cli.Command{
	Name:        "serve",
	Aliases:     []string{"s"},
	Description: "Serve the deck on a webserver and reload browsers when it changes",
	Usage:       "serve [--addr :8080] <input>",
	ArgsUsage:   "<input>",
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:  "addr",
			Usage: "Specify the address to listen on",
			Value: ":8080",
		},
	}, deckFlags...),
	Action: func(ctx *cli.Context) error {
		input := ctx.Args().First()
		if input == "" {
			return cli.NewExitError("missing input file", 2)
		}
		opts, err := deckOptions(ctx)
		if err != nil {
			return err
		}

		cctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		c := make(chan os.Signal, 1)
		signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

		// Editors often replace files on save, so the directory is watched.
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err := watcher.Add(filepath.Dir(input)); err != nil {
			return err
		}

		addr := ctx.String("addr")
		log := logrus.WithField("addr", addr)
		server, err := revealdown.NewPresentationServer(cctx, input, addr, log, opts...)
		if err != nil {
			return err
		}
		log.Info("serving presentation")
		server.Run()

		go watchDeck(cctx, watcher, input, server)

		<-c
		return server.Close()
	},
}

func watchDeck(ctx context.Context, watcher *fsnotify.Watcher, input string, server *revealdown.PresentationServer) {
	deck := filepath.Clean(input)
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("watching deck failed")
		case evt, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(evt.Name) != deck {
				continue
			}
			if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logrus.WithFields(logrus.Fields{"file": evt.Name, "op": evt.Op.String()}).Info("deck changed, rerendering")
			// failures are logged by the server and the last good page stays
			_ = server.Rerender()
		}
	}
}
