//go:build wireinject

package di

import (
	"log/slog"
	"os"

	"github.com/google/wire"

	"github.com/svscodes/LeetLink/internal/adapter/browser"
	"github.com/svscodes/LeetLink/internal/adapter/discord"
	"github.com/svscodes/LeetLink/internal/adapter/github"
	"github.com/svscodes/LeetLink/internal/adapter/leetcode"
	"github.com/svscodes/LeetLink/internal/adapter/logging"
	"github.com/svscodes/LeetLink/internal/adapter/settings"
	"github.com/svscodes/LeetLink/internal/app"
	"github.com/svscodes/LeetLink/internal/config"
	"github.com/svscodes/LeetLink/internal/domain/ports"
	"github.com/svscodes/LeetLink/internal/usecase"
)

// InitializeApp wires the application components together. The returned
// cleanup closes the settings store and the browser session.
func InitializeApp(cfg *config.Config) (*app.App, func(), error) {
	wire.Build(
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideSettingsStore,
		provideContentStore,
		provideProblemProvider,
		provideNotifier,
		provideBrowserSession,
		usecase.NewSettings,
		usecase.NewUpserter,
		usecase.NewIndexReconciler,
		usecase.NewPushSolution,
		wire.Bind(new(app.Pusher), new(*usecase.PushSolution)),
		provideOptions,
		app.New,
	)
	return nil, nil, nil
}

// Logs go to stderr so command output on stdout stays clean.
func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewHandlerLogger(os.Stderr, cfg.Environment, cfg.LogLevel)
}

func provideSettingsStore(cfg *config.Config) (ports.SettingsStore, func(), error) {
	store, err := settings.Open(cfg.SettingsPath)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func provideContentStore(cfg *config.Config, logger ports.Logger) ports.ContentStore {
	return github.New(github.Options{
		APIURL:  cfg.GitHubAPIURL,
		WebURL:  cfg.GitHubWebURL,
		Timeout: cfg.RequestTimeout,
	}, logger)
}

func provideProblemProvider(cfg *config.Config, logger ports.Logger) ports.ProblemProvider {
	return leetcode.New(cfg.LeetCodeURL, cfg.RequestTimeout, logger)
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	if cfg.DiscordWebhookURL == "" {
		return nil
	}
	return discord.NewWebhook(cfg.DiscordWebhookURL, cfg.RequestTimeout, logger)
}

func provideBrowserSession(cfg *config.Config, logger ports.Logger) (app.BrowserSession, func()) {
	session := browser.New(browser.Options{
		ControlURL: cfg.BrowserURL,
		Headless:   cfg.BrowserHeadless,
		PageURL:    cfg.ProblemURL,
	}, logger)
	return session, func() { _ = session.Close() }
}

func provideOptions(cfg *config.Config) app.Options {
	return app.Options{
		WatchSchedule: cfg.WatchSchedule,
		WatchDir:      cfg.WatchDir,
		ListenAddr:    cfg.ListenAddr,
		AllowedOrigin: cfg.AllowedOrigin,
	}
}
