// Package localfile builds problem records from solution files on disk.
package localfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
	"github.com/svscodes/LeetLink/internal/solution"
)

// Extractor reads a single solution file. The slug defaults to the file
// name without extension and the language to the one implied by the
// extension. Title, difficulty and link come from the problem catalogue.
type Extractor struct {
	Path     string
	Slug     string
	Language string

	problems ports.ProblemProvider
}

var _ ports.Extractor = (*Extractor)(nil)

// New creates an Extractor for path.
func New(problems ports.ProblemProvider, path, slug, language string) *Extractor {
	return &Extractor{Path: path, Slug: slug, Language: language, problems: problems}
}

// Extract reads the file and looks its problem up.
func (e *Extractor) Extract(ctx context.Context) (*model.ProblemRecord, error) {
	code, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, apperr.Extraction(fmt.Sprintf("read %s: %v", e.Path, err))
	}
	if strings.TrimSpace(string(code)) == "" {
		return nil, apperr.Extraction("no code found")
	}

	base := filepath.Base(e.Path)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")

	slug := e.Slug
	if slug == "" {
		slug = strings.TrimSuffix(base, filepath.Ext(base))
	}

	language := e.Language
	if language == "" {
		lang, ok := solution.LanguageForExtension(ext)
		if !ok {
			return nil, apperr.Extraction(fmt.Sprintf("cannot infer language from %q, pass it explicitly", base))
		}
		language = lang
	}

	problem, err := e.problems.GetProblem(ctx, slug)
	if err != nil {
		return nil, apperr.Extraction(fmt.Sprintf("look up %s: %v", slug, err))
	}

	return &model.ProblemRecord{
		Title:       problem.DisplayTitle(),
		Difficulty:  model.ParseDifficulty(problem.Difficulty),
		URL:         problem.Link,
		ProblemSlug: problem.Slug,
		Language:    language,
		Code:        string(code),
	}, nil
}
