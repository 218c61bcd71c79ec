package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/svscodes/LeetLink/internal/adapter/logging"
	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
	"github.com/svscodes/LeetLink/internal/domain/ports/mocks"
	"github.com/svscodes/LeetLink/internal/readme"
)

var pushDate = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var twoSum = model.ProblemRecord{
	Title:       "1. Two Sum",
	Difficulty:  "Easy",
	URL:         "https://x/problems/two-sum/",
	ProblemSlug: "two-sum",
	Language:    "python3",
	Code:        "print(1)",
}

func configuredStore() memoryStore {
	return memoryStore{
		ports.SettingCredential:   "ghp_secret",
		ports.SettingRepositoryID: "octo/solutions",
	}
}

func newPush(store ports.SettingsStore, contents ports.ContentStore, notifier ports.Notifier) *PushSolution {
	logger := logging.Discard()
	upserter := NewUpserter(contents, logger)
	p := NewPushSolution(NewSettings(store), upserter, NewIndexReconciler(upserter, logger), notifier, logger)
	p.now = func() time.Time { return pushDate }
	return p
}

func TestPush_EmptyRepository(t *testing.T) {
	repo := newFakeRepo()
	push := newPush(configuredStore(), repo.client(t), nil)

	res, err := push.Push(context.Background(), twoSum)
	require.NoError(t, err)
	assert.Equal(t, "https://github.example/octo/solutions/blob/main/1. Two Sum/1. Two Sum.py", res.URL)
	assert.Equal(t, "Add solution: 1. Two Sum", res.Message)
	assert.Equal(t, "1. Two Sum/1. Two Sum.py", res.Path)
	assert.True(t, res.IndexUpdated)

	solutionFile, ok := repo.file("1. Two Sum/1. Two Sum.py")
	require.True(t, ok)
	assert.Equal(t, "#\n"+
		"# Problem: 1. Two Sum\n"+
		"# Difficulty: Easy\n"+
		"# Link: https://x/problems/two-sum/\n"+
		"# Language: python3\n"+
		"# Date: 2024-03-01\n"+
		"\n\n"+
		"print(1)\n", string(solutionFile.content))

	index, ok := repo.file("README.md")
	require.True(t, ok)
	assert.Equal(t, "Create README", index.message)
	assert.Contains(t, string(index.content), "- **Total Problems Solved:** 1\n")
	assert.Contains(t, string(index.content), "- **Easy:** 1 🟢\n")
	assert.Contains(t, string(index.content), "| [1. Two Sum](https://x/problems/two-sum/) | 🟢 Easy | python3 | 2024-03-01 |\n")
	assert.Contains(t, string(index.content), "*Generated automatically by [LeetLink](https://github.com/octo/solutions)*")

	assert.Equal(t, []string{
		"GET 1. Two Sum/1. Two Sum.py",
		"PUT 1. Two Sum/1. Two Sum.py",
		"GET README.md",
		"PUT README.md",
	}, repo.requests())
}

func TestPush_SecondPushUpdatesInPlace(t *testing.T) {
	repo := newFakeRepo()
	push := newPush(configuredStore(), repo.client(t), nil)
	ctx := context.Background()

	_, err := push.Push(ctx, twoSum)
	require.NoError(t, err)

	again := twoSum
	again.Code = "print(2)"
	res, err := push.Push(ctx, again)
	require.NoError(t, err)
	assert.Equal(t, "Update solution: 1. Two Sum", res.Message)
	assert.True(t, res.IndexUpdated)

	solutionFile, _ := repo.file("1. Two Sum/1. Two Sum.py")
	assert.Contains(t, string(solutionFile.content), "print(2)")

	index, _ := repo.file("README.md")
	assert.Equal(t, "Update README", index.message)
	assert.Contains(t, string(index.content), "- **Total Problems Solved:** 1\n")
}

func TestPush_RepeatedFromDescriptionTabKeepsOneRow(t *testing.T) {
	repo := newFakeRepo()
	push := newPush(configuredStore(), repo.client(t), nil)
	ctx := context.Background()

	fromTab := twoSum
	fromTab.URL = "https://leetcode.com/problems/two-sum/description/"

	_, err := push.Push(ctx, fromTab)
	require.NoError(t, err)
	_, err = push.Push(ctx, fromTab)
	require.NoError(t, err)

	index, _ := repo.file("README.md")
	doc := string(index.content)
	assert.Contains(t, doc, "- **Total Problems Solved:** 1\n")
	assert.Equal(t, 1, strings.Count(doc, "[1. Two Sum]"))

	rows := readme.Parse(doc)
	require.Len(t, rows, 1)
	assert.Equal(t, "two-sum-python3", rows[0].Key)
}

func TestPush_Unauthorized(t *testing.T) {
	repo := newFakeRepo()
	repo.status = http.StatusUnauthorized
	push := newPush(configuredStore(), repo.client(t), nil)

	res, err := push.Push(context.Background(), twoSum)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, apperr.ErrRemoteAuth)

	for _, call := range repo.requests() {
		assert.NotContains(t, call, "README.md")
	}
}

func TestPush_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	contents := mocks.NewMockContentStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	notifier.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) error {
			assert.True(t, n.Failed)
			assert.Contains(t, n.Description, "please configure GitHub settings first")
			return nil
		})

	_, err := newPush(memoryStore{}, contents, notifier).Push(context.Background(), twoSum)
	assert.ErrorIs(t, err, apperr.ErrPreconditionMissing)
}

func TestPush_IndexFailureIsAbsorbed(t *testing.T) {
	ctrl := gomock.NewController(t)
	contents := mocks.NewMockContentStore(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	ctx := context.Background()

	contents.EXPECT().GetFile(ctx, gomock.Any(), "1. Two Sum/1. Two Sum.py").Return(nil, nil)
	contents.EXPECT().PutFile(ctx, gomock.Any(), gomock.Any()).
		Return(&model.CommitResult{URL: "https://x/blob", Message: "Add solution: 1. Two Sum"}, nil)
	contents.EXPECT().GetFile(ctx, gomock.Any(), "README.md").Return(nil, nil)
	contents.EXPECT().PutFile(ctx, gomock.Any(), gomock.Any()).
		Return(nil, apperr.FromStatus(http.StatusConflict, "sha does not match", "octo/solutions"))
	notifier.EXPECT().Send(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) error {
			assert.False(t, n.Failed)
			assert.Equal(t, "https://x/blob", n.URL)
			return errors.New("webhook down")
		})

	res, err := newPush(configuredStore(), contents, notifier).Push(ctx, twoSum)
	require.NoError(t, err)
	assert.Equal(t, "https://x/blob", res.URL)
	assert.False(t, res.IndexUpdated)
}

func TestRun_ExtractionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	contents := mocks.NewMockContentStore(ctrl)

	extractor.EXPECT().Extract(gomock.Any()).Return(nil, errors.New("page closed"))

	_, err := newPush(configuredStore(), contents, nil).Run(context.Background(), extractor)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrExtractionFailed)
	assert.Contains(t, err.Error(), "page closed")
}

func TestRun_PushesExtractedRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockExtractor(ctrl)
	repo := newFakeRepo()

	record := twoSum
	extractor.EXPECT().Extract(gomock.Any()).Return(&record, nil)

	res, err := newPush(configuredStore(), repo.client(t), nil).Run(context.Background(), extractor)
	require.NoError(t, err)
	assert.Equal(t, "1. Two Sum/1. Two Sum.py", res.Path)
}

func TestPreview_WritesNothing(t *testing.T) {
	repo := newFakeRepo()
	push := newPush(configuredStore(), repo.client(t), nil)

	preview, err := push.Preview(context.Background(), twoSum)
	require.NoError(t, err)
	assert.Equal(t, "1. Two Sum/1. Two Sum.py", preview.Path)
	assert.Equal(t, "README.md", preview.IndexPath)
	assert.Contains(t, preview.Body, "# Problem: 1. Two Sum")
	assert.Contains(t, preview.IndexDiff, "+ | [1. Two Sum](https://x/problems/two-sum/) | 🟢 Easy | python3 | 2024-03-01 |\n")

	assert.Equal(t, []string{"GET README.md"}, repo.requests())
}
