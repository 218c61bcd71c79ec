package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/svscodes/LeetLink/internal/app"
	"github.com/svscodes/LeetLink/internal/config"
	"github.com/svscodes/LeetLink/internal/di"
	"github.com/svscodes/LeetLink/internal/domain/model"
)

// withApp loads configuration, applies flag overrides and runs fn with a
// fully wired App.
func withApp(ctx context.Context, cmd *cli.Command, fn func(context.Context, *app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cfg, cmd)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	application, cleanup, err := di.InitializeApp(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer cleanup()

	return fn(ctx, application)
}

type flagValues interface {
	IsSet(name string) bool
	String(name string) string
}

func applyFlags(cfg *config.Config, flags flagValues) {
	overrides := []struct {
		flag string
		dst  *string
	}{
		{"settings", &cfg.SettingsPath},
		{"browser-url", &cfg.BrowserURL},
		{"url", &cfg.ProblemURL},
		{"dir", &cfg.WatchDir},
		{"schedule", &cfg.WatchSchedule},
		{"addr", &cfg.ListenAddr},
	}
	for _, o := range overrides {
		if flags.IsSet(o.flag) {
			*o.dst = flags.String(o.flag)
		}
	}
}

func out(cmd *cli.Command) io.Writer {
	return cmd.Root().Writer
}

func pushCommand() *cli.Command {
	return &cli.Command{
		Name:  "push",
		Usage: "Push the open problem, or a solution file, and update the README index",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "push this solution file instead of the browser tab"},
			&cli.StringFlag{Name: "slug", Usage: "problem slug when it differs from the file name"},
			&cli.StringFlag{Name: "language", Usage: "language when it cannot be inferred from the file extension"},
			&cli.StringFlag{Name: "url", Usage: "problem page to open when none is open", Sources: cli.EnvVars("LEETLINK_PROBLEM_URL")},
			&cli.BoolFlag{Name: "dry-run", Usage: "show what would be written without writing"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
				extractor := a.BrowserExtractor()
				if path := cmd.String("file"); path != "" {
					extractor = a.FileExtractor(path, cmd.String("slug"), cmd.String("language"))
				}

				if cmd.Bool("dry-run") {
					preview, err := a.Preview(ctx, extractor)
					if err != nil {
						return err
					}
					printPreview(out(cmd), preview)
					return nil
				}

				result, err := a.Push(ctx, extractor)
				if err != nil {
					return err
				}
				printResult(out(cmd), result)
				return nil
			})
		},
	}
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Manage the GitHub push target",
		Commands: []*cli.Command{
			{
				Name:  "set",
				Usage: "Store the token, repository and branch",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "token", Usage: "GitHub token with repo scope", Required: true, Sources: cli.EnvVars("GITHUB_TOKEN")},
					&cli.StringFlag{Name: "repo", Usage: "repository as owner/name", Required: true},
					&cli.StringFlag{Name: "branch", Usage: "target branch", Value: model.DefaultBranch},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
						err := a.Configure(ctx, model.RemoteTarget{
							Credential:   cmd.String("token"),
							RepositoryID: cmd.String("repo"),
							Branch:       cmd.String("branch"),
						})
						if err != nil {
							return err
						}
						fmt.Fprintln(out(cmd), "settings saved")
						return nil
					})
				},
			},
			{
				Name:  "show",
				Usage: "Print the stored target with the token redacted",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
						view, err := a.Describe(ctx)
						if err != nil {
							return err
						}
						w := out(cmd)
						fmt.Fprintf(w, "repository: %s\n", orUnset(view.RepositoryID))
						fmt.Fprintf(w, "branch:     %s\n", view.Branch)
						fmt.Fprintf(w, "token:      %s\n", orUnset(view.Credential))
						return nil
					})
				},
			},
		},
	}
}

func watchCommand() *cli.Command {
	return &cli.Command{
		Name:  "watch",
		Usage: "Auto-push accepted submissions and new solution files until interrupted",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dir", Usage: "also push solution files written to this directory", Sources: cli.EnvVars("LEETLINK_WATCH_DIR")},
			&cli.StringFlag{Name: "schedule", Usage: "how often to check the browser for a verdict", Sources: cli.EnvVars("LEETLINK_WATCH_SCHEDULE")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
				return a.Watch(ctx)
			})
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Accept problem records over HTTP from a browser userscript",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "listen address", Sources: cli.EnvVars("LEETLINK_LISTEN_ADDR")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withApp(ctx, cmd, func(ctx context.Context, a *app.App) error {
				return a.Serve(ctx)
			})
		},
	}
}

func printResult(w io.Writer, result *model.PushResult) {
	fmt.Fprintf(w, "%s\n%s\n", result.Message, result.URL)
	if !result.IndexUpdated {
		fmt.Fprintln(w, "warning: README index was not updated, see the log for details")
	}
}

func printPreview(w io.Writer, preview *model.PushPreview) {
	fmt.Fprintf(w, "would write %s:\n\n%s\n", preview.Path, preview.Body)
	fmt.Fprintf(w, "would write %s:\n\n%s", preview.IndexPath, preview.IndexDiff)
}

func orUnset(v string) string {
	if v == "" {
		return "(not set)"
	}
	return v
}
