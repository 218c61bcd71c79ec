package usecase

import (
	"context"
	"fmt"

	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

// Upserter makes a remote file's content equal to a given body.
type Upserter struct {
	contents ports.ContentStore
	logger   ports.Logger
}

// NewUpserter constructs an Upserter.
func NewUpserter(contents ports.ContentStore, logger ports.Logger) *Upserter {
	return &Upserter{contents: contents, logger: logger}
}

// Lookup returns the current file, or nil when it is absent. Read failures
// other than not-found are logged and also reported as absent.
func (u *Upserter) Lookup(ctx context.Context, target model.RemoteTarget, path string) *model.RemoteObject {
	current, err := u.contents.GetFile(ctx, target, path)
	if err != nil {
		u.logger.Error(ctx, "lookup failed, treating file as absent", "path", path, "error", err)
		return nil
	}
	return current
}

// Commit writes body to path, updating current when it is non-nil.
func (u *Upserter) Commit(ctx context.Context, target model.RemoteTarget, path string, body []byte, current *model.RemoteObject, messages model.CommitMessages) (*model.CommitResult, error) {
	req := model.CommitRequest{
		Path:    path,
		Message: messages.For(current != nil),
		Content: body,
		Branch:  target.BranchOrDefault(),
	}
	if current != nil {
		req.RevisionToken = current.RevisionToken
	}

	result, err := u.contents.PutFile(ctx, target, req)
	if err != nil {
		return nil, fmt.Errorf("commit %s: %w", path, err)
	}
	return result, nil
}

// Upsert looks the file up once and then creates or updates it.
func (u *Upserter) Upsert(ctx context.Context, target model.RemoteTarget, path string, body []byte, messages model.CommitMessages) (*model.CommitResult, error) {
	return u.Commit(ctx, target, path, body, u.Lookup(ctx, target, path), messages)
}
