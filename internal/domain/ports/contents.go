package ports

//go:generate mockgen -source=contents.go -destination=mocks/contents_mock.go -package=mocks

import (
	"context"

	"github.com/svscodes/LeetLink/internal/domain/model"
)

// ContentStore reads and writes single files of a hosted repository.
type ContentStore interface {
	// GetFile returns nil and no error when the file does not exist.
	GetFile(ctx context.Context, target model.RemoteTarget, path string) (*model.RemoteObject, error)
	PutFile(ctx context.Context, target model.RemoteTarget, req model.CommitRequest) (*model.CommitResult, error)
}
