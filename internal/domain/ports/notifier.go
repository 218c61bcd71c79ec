package ports

//go:generate mockgen -source=notifier.go -destination=mocks/notifier_mock.go -package=mocks

import (
	"context"

	"github.com/svscodes/LeetLink/internal/domain/model"
)

// Notifier sends push outcomes to downstream channels (e.g. Discord).
type Notifier interface {
	Send(ctx context.Context, notification model.Notification) error
}
