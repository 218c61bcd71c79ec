package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/svscodes/LeetLink/internal/apperr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:  "leetlink",
		Usage: "Sync accepted LeetCode solutions to a GitHub repository",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "settings",
				Usage:   "settings file (.db for bbolt, .yaml for a plain document)",
				Sources: cli.EnvVars("LEETLINK_SETTINGS"),
			},
			&cli.StringFlag{
				Name:    "browser-url",
				Usage:   "DevTools URL of a running Chrome; a browser is launched when empty",
				Sources: cli.EnvVars("LEETLINK_BROWSER_URL"),
			},
		},
		Commands: []*cli.Command{
			pushCommand(),
			configCommand(),
			watchCommand(),
			serveCommand(),
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", apperr.UserMessage(err))
		stop()
		os.Exit(1)
	}
}
