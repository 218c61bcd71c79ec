package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"

	"github.com/svscodes/LeetLink/internal/adapter/dirwatch"
	"github.com/svscodes/LeetLink/internal/adapter/httpapi"
	"github.com/svscodes/LeetLink/internal/adapter/localfile"
	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
	"github.com/svscodes/LeetLink/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

// Pusher runs the push pipeline.
type Pusher interface {
	httpapi.Pusher
	Run(ctx context.Context, extractor ports.Extractor) (*model.PushResult, error)
}

// BrowserSession is a live problem page that can report its verdict.
type BrowserSession interface {
	ports.Extractor
	Accepted(ctx context.Context) (string, bool, error)
}

// Options holds the runtime settings of the long-running modes.
type Options struct {
	WatchSchedule string
	WatchDir      string
	ListenAddr    string
	AllowedOrigin string
}

// App ties the push pipeline to its entry points: one-shot pushes, the
// watch mode and the local HTTP endpoint.
type App struct {
	cron     *cron.Cron
	pusher   Pusher
	settings *usecase.Settings
	problems ports.ProblemProvider
	session  BrowserSession
	logger   ports.Logger
	opts     Options

	mu         sync.Mutex
	autoPushed map[string]bool
}

// New constructs an App instance.
func New(
	pusher Pusher,
	settings *usecase.Settings,
	problems ports.ProblemProvider,
	session BrowserSession,
	logger ports.Logger,
	opts Options,
) *App {
	return &App{
		cron:       cron.New(cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger: logger}))),
		pusher:     pusher,
		settings:   settings,
		problems:   problems,
		session:    session,
		logger:     logger,
		opts:       opts,
		autoPushed: map[string]bool{},
	}
}

// Push extracts a record and pushes it.
func (a *App) Push(ctx context.Context, extractor ports.Extractor) (*model.PushResult, error) {
	return a.pusher.Run(ctx, extractor)
}

// PushFile pushes a solution file. Empty slug and language are inferred
// from the file name.
func (a *App) PushFile(ctx context.Context, path, slug, language string) (*model.PushResult, error) {
	return a.pusher.Run(ctx, localfile.New(a.problems, path, slug, language))
}

// Preview extracts a record and shows what pushing it would write.
func (a *App) Preview(ctx context.Context, extractor ports.Extractor) (*model.PushPreview, error) {
	record, err := extractor.Extract(ctx)
	if err != nil {
		return nil, err
	}
	return a.pusher.Preview(ctx, *record)
}

// FileExtractor returns the extractor PushFile would use.
func (a *App) FileExtractor(path, slug, language string) ports.Extractor {
	return localfile.New(a.problems, path, slug, language)
}

// BrowserExtractor returns the extractor for the open browser tab.
func (a *App) BrowserExtractor() ports.Extractor {
	return a.session
}

// Configure stores the push target.
func (a *App) Configure(ctx context.Context, target model.RemoteTarget) error {
	return a.settings.SaveTarget(ctx, target)
}

// Describe returns the stored push target with the token redacted.
func (a *App) Describe(ctx context.Context) (usecase.TargetView, error) {
	return a.settings.Describe(ctx)
}

// Watch auto-pushes accepted submissions from the browser and, when a
// directory is configured, solution files written to it. It returns when
// ctx is cancelled or a watcher fails to start.
func (a *App) Watch(ctx context.Context) error {
	if err := a.scheduleJob(ctx); err != nil {
		return err
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info(gCtx, "starting auto-push poller", "schedule", a.opts.WatchSchedule)
		a.cron.Start()

		<-gCtx.Done()
		stopCtx := a.cron.Stop()
		select {
		case <-stopCtx.Done():
		case <-time.After(shutdownTimeout):
		}
		a.logger.Info(context.Background(), "auto-push poller stopped")
		return nil
	})

	if a.opts.WatchDir != "" {
		watcher := dirwatch.New(a.opts.WatchDir, dirwatch.DefaultDebounce, a.logger)
		g.Go(func() error {
			return watcher.Watch(gCtx, a.pushWrittenFile)
		})
	}

	return g.Wait()
}

// Serve runs the HTTP endpoint until ctx is cancelled.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              a.opts.ListenAddr,
		Handler:           httpapi.NewRouter(a.pusher, a.opts.AllowedOrigin, a.logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.Info(gCtx, "starting http server", "address", a.opts.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error(shutdownCtx, "http server shutdown failed", "error", err)
		}
		a.logger.Info(shutdownCtx, "http server stopped")
		return nil
	})

	return g.Wait()
}

func (a *App) scheduleJob(ctx context.Context) error {
	_, err := a.cron.AddFunc(a.opts.WatchSchedule, func() {
		a.pollBrowser(ctx)
	})
	if err != nil {
		return fmt.Errorf("schedule poller: %w", err)
	}
	return nil
}

// pollBrowser pushes once per accepted verdict. The mark for a page is
// cleared when its verdict disappears, so a later accepted run pushes again.
func (a *App) pollBrowser(ctx context.Context) {
	url, accepted, err := a.session.Accepted(ctx)
	if err != nil {
		if !errors.Is(err, apperr.ErrExtractionFailed) {
			a.logger.Warn(ctx, "verdict check failed", "error", err)
		}
		return
	}

	if !a.claim(url, accepted) {
		return
	}

	a.logger.Info(ctx, "accepted verdict detected, pushing", "url", url)
	if _, err := a.pusher.Run(ctx, a.session); err != nil {
		a.logger.Error(ctx, "auto-push failed", "url", url, "error", err)
	}
}

func (a *App) claim(url string, accepted bool) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !accepted {
		delete(a.autoPushed, url)
		return false
	}
	if a.autoPushed[url] {
		return false
	}
	a.autoPushed[url] = true
	return true
}

func (a *App) pushWrittenFile(ctx context.Context, path string) {
	a.logger.Info(ctx, "solution file written, pushing", "path", path)
	if _, err := a.PushFile(ctx, path, "", ""); err != nil {
		a.logger.Error(ctx, "file push failed", "path", path, "error", err)
	}
}

// cronLogger routes cron's own messages through ports.Logger.
type cronLogger struct {
	logger ports.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(context.Background(), "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error(context.Background(), "cron: "+msg, append(keysAndValues, "error", err)...)
}
