package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
	"github.com/svscodes/LeetLink/internal/readme"
	"github.com/svscodes/LeetLink/internal/solution"
)

// PushSolution orchestrates committing a solution and refreshing the index.
type PushSolution struct {
	settings *Settings
	upserter *Upserter
	index    *IndexReconciler
	notifier ports.Notifier
	logger   ports.Logger
	now      func() time.Time
}

// NewPushSolution constructs a PushSolution use case. notifier may be nil.
func NewPushSolution(
	settings *Settings,
	upserter *Upserter,
	index *IndexReconciler,
	notifier ports.Notifier,
	logger ports.Logger,
) *PushSolution {
	return &PushSolution{
		settings: settings,
		upserter: upserter,
		index:    index,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Run extracts the current problem and pushes it.
func (p *PushSolution) Run(ctx context.Context, extractor ports.Extractor) (*model.PushResult, error) {
	record, err := extractor.Extract(ctx)
	if err != nil {
		if !errors.Is(err, apperr.ErrExtractionFailed) {
			err = fmt.Errorf("%w: %w", apperr.ErrExtractionFailed, err)
		}
		p.logger.Error(ctx, "failed to extract solution", "error", err)
		p.notifyFailure(ctx, nil, err)
		return nil, err
	}
	return p.Push(ctx, *record)
}

// Push commits record to the configured repository and updates the README
// index. A failed index update does not fail the push.
func (p *PushSolution) Push(ctx context.Context, record model.ProblemRecord) (*model.PushResult, error) {
	start := time.Now()
	p.logger.Info(ctx, "starting push", "title", record.Title, "language", record.Language)

	target, err := p.settings.LoadTarget(ctx)
	if err != nil {
		p.logger.Error(ctx, "push target is not configured", "error", err)
		p.notifyFailure(ctx, &record, err)
		return nil, err
	}

	now := p.now()
	path := solution.Path(record)
	body := solution.Format(record, now)

	committed, err := p.upserter.Upsert(ctx, target, path, []byte(body), solutionMessages(record))
	if err != nil {
		p.logger.Error(ctx, "failed to push solution", "path", path, "error", err)
		p.notifyFailure(ctx, &record, err)
		return nil, err
	}

	result := &model.PushResult{
		URL:          committed.URL,
		Message:      committed.Message,
		Path:         path,
		IndexUpdated: p.updateIndex(ctx, target, record, now),
	}

	p.notifySuccess(ctx, record, result)
	p.logger.Info(ctx, "push completed", "path", path, "index_updated", result.IndexUpdated, "duration", time.Since(start))
	return result, nil
}

// Preview derives what Push would write without writing anything.
func (p *PushSolution) Preview(ctx context.Context, record model.ProblemRecord) (*model.PushPreview, error) {
	target, err := p.settings.LoadTarget(ctx)
	if err != nil {
		return nil, err
	}

	now := p.now()
	return &model.PushPreview{
		Path:      solution.Path(record),
		Body:      solution.Format(record, now),
		IndexPath: readme.Path,
		IndexDiff: p.index.Preview(ctx, target, record, now),
	}, nil
}

func (p *PushSolution) updateIndex(ctx context.Context, target model.RemoteTarget, record model.ProblemRecord, now time.Time) bool {
	if err := p.index.Reconcile(ctx, target, record, now); err != nil {
		p.logger.Warn(ctx, "readme update skipped", "error", err)
		return false
	}
	return true
}

func solutionMessages(record model.ProblemRecord) model.CommitMessages {
	return model.CommitMessages{
		Create: "Add solution: " + record.Title,
		Update: "Update solution: " + record.Title,
	}
}

func (p *PushSolution) notifySuccess(ctx context.Context, record model.ProblemRecord, result *model.PushResult) {
	indexed := "yes"
	if !result.IndexUpdated {
		indexed = "no"
	}
	p.notify(ctx, model.Notification{
		Title:       "Solution pushed",
		Description: fmt.Sprintf("**%s** (%s)", record.Title, result.Message),
		URL:         result.URL,
		Fields: []model.NotificationField{
			{Name: "Difficulty", Value: string(record.Difficulty), Inline: true},
			{Name: "Language", Value: record.Language, Inline: true},
			{Name: "README updated", Value: indexed, Inline: true},
		},
	})
}

func (p *PushSolution) notifyFailure(ctx context.Context, record *model.ProblemRecord, cause error) {
	n := model.Notification{
		Title:       "Push failed",
		Description: apperr.UserMessage(cause),
		Failed:      true,
	}
	if record != nil {
		n.URL = record.URL
		n.Fields = []model.NotificationField{{Name: "Problem", Value: record.Title}}
	}
	p.notify(ctx, n)
}

func (p *PushSolution) notify(ctx context.Context, n model.Notification) {
	if p.notifier == nil {
		return
	}
	if err := p.notifier.Send(ctx, n); err != nil {
		p.logger.Error(ctx, "failed to send notification", "error", err)
	}
}
