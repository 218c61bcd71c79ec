package model

import (
	"strconv"
	"strings"
)

// Difficulty is the LeetCode difficulty label of a problem.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// ParseDifficulty normalises a raw label such as "🟢 Easy" to a Difficulty.
// Unknown labels fall back to Medium.
func ParseDifficulty(raw string) Difficulty {
	switch {
	case strings.Contains(raw, string(DifficultyEasy)):
		return DifficultyEasy
	case strings.Contains(raw, string(DifficultyMedium)):
		return DifficultyMedium
	case strings.Contains(raw, string(DifficultyHard)):
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Rank orders difficulties Easy < Medium < Hard.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 1
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// Badge returns the coloured marker rendered next to the difficulty in the index.
func (d Difficulty) Badge() string {
	switch d {
	case DifficultyEasy:
		return "🟢"
	case DifficultyMedium:
		return "🟡"
	default:
		return "🔴"
	}
}

// Problem is catalogue metadata for a LeetCode problem.
type Problem struct {
	ID         int
	Title      string
	Slug       string
	Difficulty string
	Link       string
}

// DisplayTitle returns the "N. Title" form shown on problem pages.
func (p Problem) DisplayTitle() string {
	if p.ID <= 0 {
		return p.Title
	}
	return strconv.Itoa(p.ID) + ". " + p.Title
}

// ProblemRecord is a solved problem ready to be pushed.
type ProblemRecord struct {
	Title       string     `json:"title"`
	Difficulty  Difficulty `json:"difficulty"`
	URL         string     `json:"url"`
	ProblemSlug string     `json:"problemSlug"`
	Language    string     `json:"language"`
	Code        string     `json:"code"`
}

// IndexKey identifies the (problem, language) pair in the README index.
func (r ProblemRecord) IndexKey() string {
	return r.ProblemSlug + "-" + r.Language
}
