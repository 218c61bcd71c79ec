package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
	"github.com/svscodes/LeetLink/internal/readme"
	"github.com/svscodes/LeetLink/internal/solution"
)

var readmeMessages = model.CommitMessages{Create: "Create README", Update: "Update README"}

// IndexReconciler keeps the README table in step with pushed solutions.
type IndexReconciler struct {
	upserter *Upserter
	logger   ports.Logger
	path     string
}

// NewIndexReconciler constructs an IndexReconciler writing readme.Path.
func NewIndexReconciler(upserter *Upserter, logger ports.Logger) *IndexReconciler {
	return &IndexReconciler{upserter: upserter, logger: logger, path: readme.Path}
}

// Reconcile adds record to the index and commits the re-rendered README.
// Every failure, panics included, is returned wrapped in apperr.ErrIndexUpdate.
func (r *IndexReconciler) Reconcile(ctx context.Context, target model.RemoteTarget, record model.ProblemRecord, date time.Time) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", apperr.ErrIndexUpdate, rec)
		}
	}()

	current := r.upserter.Lookup(ctx, target, r.path)
	existing := contentOf(current)

	doc, added := readme.Rebuild(string(existing), readme.RowFor(record, solution.FormatDate(date)), target.RepositoryID)
	if !added {
		r.logger.Info(ctx, "problem already indexed", "key", record.IndexKey())
	}

	if _, err := r.upserter.Commit(ctx, target, r.path, []byte(doc), current, readmeMessages); err != nil {
		return fmt.Errorf("%w: %w", apperr.ErrIndexUpdate, err)
	}
	return nil
}

// Preview renders the README that Reconcile would write and returns a line
// diff against the current one. Nothing is written.
func (r *IndexReconciler) Preview(ctx context.Context, target model.RemoteTarget, record model.ProblemRecord, date time.Time) string {
	existing := string(contentOf(r.upserter.Lookup(ctx, target, r.path)))
	doc, _ := readme.Rebuild(existing, readme.RowFor(record, solution.FormatDate(date)), target.RepositoryID)
	return lineDiff(existing, doc)
}

func contentOf(obj *model.RemoteObject) []byte {
	if obj == nil {
		return nil
	}
	return obj.Content
}

func lineDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var builder strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			builder.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}
	return builder.String()
}
