package ports

//go:generate mockgen -source=extractor.go -destination=mocks/extractor_mock.go -package=mocks

import (
	"context"

	"github.com/svscodes/LeetLink/internal/domain/model"
)

// Extractor produces the record for the problem currently being pushed.
type Extractor interface {
	Extract(ctx context.Context) (*model.ProblemRecord, error)
}
