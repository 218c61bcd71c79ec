package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svscodes/LeetLink/internal/adapter/logging"
	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports/mocks"
	"github.com/svscodes/LeetLink/internal/readme"
)

const existingIndex = "# old header\n\n" +
	"| Problem | Difficulty | Language | Date |\n" +
	"|---------|-----------|----------|------|\n" +
	"| [4. Median of Two Sorted Arrays](https://x/problems/median-of-two-sorted-arrays/) | 🔴 Hard | cpp | 2024-01-02 |\n" +
	"| [2. Add Two Numbers](https://x/problems/add-two-numbers/) | 🟡 Medium | java | 2024-01-01 |\n"

func TestReconcile_MergesIntoExistingIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	contents := mocks.NewMockContentStore(ctrl)
	ctx := context.Background()

	contents.EXPECT().GetFile(ctx, testTarget, readme.Path).
		Return(&model.RemoteObject{Path: readme.Path, RevisionToken: "r1", Content: []byte(existingIndex)}, nil)
	contents.EXPECT().PutFile(ctx, testTarget, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.RemoteTarget, req model.CommitRequest) (*model.CommitResult, error) {
			assert.Equal(t, "Update README", req.Message)
			assert.Equal(t, "r1", req.RevisionToken)

			doc := string(req.Content)
			assert.Contains(t, doc, "- **Total Problems Solved:** 3\n")
			easy := strings.Index(doc, "[1. Two Sum]")
			medium := strings.Index(doc, "[2. Add Two Numbers]")
			hard := strings.Index(doc, "[4. Median of Two Sorted Arrays]")
			assert.True(t, easy < medium && medium < hard, "rows are ordered by difficulty")
			assert.NotContains(t, doc, "old header")
			return &model.CommitResult{}, nil
		})

	reconciler := NewIndexReconciler(NewUpserter(contents, logging.Discard()), logging.Discard())
	require.NoError(t, reconciler.Reconcile(ctx, testTarget, twoSum, pushDate))
}

func TestReconcile_DuplicateKeepsExistingRow(t *testing.T) {
	ctrl := gomock.NewController(t)
	contents := mocks.NewMockContentStore(ctrl)
	ctx := context.Background()

	existing := readme.Render([]model.IndexRow{readme.RowFor(twoSum, "2023-12-31")}, testTarget.RepositoryID)
	contents.EXPECT().GetFile(ctx, testTarget, readme.Path).
		Return(&model.RemoteObject{Path: readme.Path, RevisionToken: "r1", Content: []byte(existing)}, nil)
	contents.EXPECT().PutFile(ctx, testTarget, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.RemoteTarget, req model.CommitRequest) (*model.CommitResult, error) {
			assert.Equal(t, existing, string(req.Content))
			return &model.CommitResult{}, nil
		})

	reconciler := NewIndexReconciler(NewUpserter(contents, logging.Discard()), logging.Discard())
	require.NoError(t, reconciler.Reconcile(ctx, testTarget, twoSum, pushDate))
}

func TestReconcile_PanicIsReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	contents := mocks.NewMockContentStore(ctrl)
	ctx := context.Background()

	contents.EXPECT().GetFile(ctx, testTarget, readme.Path).Return(nil, nil)
	contents.EXPECT().PutFile(ctx, testTarget, gomock.Any()).
		DoAndReturn(func(context.Context, model.RemoteTarget, model.CommitRequest) (*model.CommitResult, error) {
			panic("boom")
		})

	reconciler := NewIndexReconciler(NewUpserter(contents, logging.Discard()), logging.Discard())
	err := reconciler.Reconcile(ctx, testTarget, twoSum, pushDate)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrIndexUpdate)
	assert.Contains(t, err.Error(), "boom")
}

func TestPreview_DiffAgainstExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	contents := mocks.NewMockContentStore(ctrl)
	ctx := context.Background()

	contents.EXPECT().GetFile(ctx, testTarget, readme.Path).
		Return(&model.RemoteObject{Path: readme.Path, RevisionToken: "r1", Content: []byte(existingIndex)}, nil)

	reconciler := NewIndexReconciler(NewUpserter(contents, logging.Discard()), logging.Discard())
	diff := reconciler.Preview(ctx, testTarget, twoSum, pushDate)

	assert.Contains(t, diff, "- # old header\n")
	assert.Contains(t, diff, "+ | [1. Two Sum](https://x/problems/two-sum/) | 🟢 Easy | python3 | 2024-03-01 |\n")
	assert.Contains(t, diff, "  | Problem | Difficulty | Language | Date |\n")
}

func TestLineDiff_Identical(t *testing.T) {
	diff := lineDiff("a\nb\n", "a\nb\n")
	assert.Equal(t, "  a\n  b\n", diff)
}
