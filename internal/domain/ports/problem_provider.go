package ports

//go:generate mockgen -source=problem_provider.go -destination=mocks/problem_provider_mock.go -package=mocks

import (
	"context"

	"github.com/svscodes/LeetLink/internal/domain/model"
)

// ProblemProvider looks up LeetCode catalogue metadata.
type ProblemProvider interface {
	GetProblem(ctx context.Context, slug string) (*model.Problem, error)
}
