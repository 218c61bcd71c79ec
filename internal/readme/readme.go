// Package readme parses and renders the README index of pushed solutions.
package readme

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/svscodes/LeetLink/internal/domain/model"
)

// Path is where the index lives in the repository.
const Path = "README.md"

const missingDate = "N/A"

// rowPattern matches "| [title](url) | difficulty | language | date |".
// Cells may hold the backslash escapes written by cellEscaper.
var rowPattern = regexp.MustCompile(`\|\s*\[((?:\\.|[^\]\\])+)\]\(([^)]+)\)\s*\|((?:\\.|[^|\\])+)\|((?:\\.|[^|\\])+)\|((?:\\.|[^|\\])+)\|`)

var (
	cellEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`, `|`, `\|`)
	urlEscaper  = strings.NewReplacer("(", "%28", ")", "%29", "|", "%7C", " ", "%20")
	urlRestorer = strings.NewReplacer("%28", "(", "%29", ")", "%7C", "|", "%20", " ")
)

// Parse extracts the table rows of an existing README. Lines that are not
// table rows are ignored, so an empty or foreign document yields no rows.
func Parse(doc string) []model.IndexRow {
	var rows []model.IndexRow
	for _, line := range strings.Split(doc, "\n") {
		match := rowPattern.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		url := urlRestorer.Replace(strings.TrimSpace(match[2]))
		lang := unescapeCell(match[4])
		rows = append(rows, model.IndexRow{
			Key:        Key(slugFromURL(url), lang),
			Title:      unescapeCell(match[1]),
			URL:        url,
			Difficulty: model.ParseDifficulty(unescapeCell(match[3])),
			Language:   lang,
			Date:       unescapeCell(match[5]),
		})
	}
	return rows
}

// Key builds the row identity from a problem slug and language.
func Key(slug, lang string) string {
	return slug + "-" + lang
}

// slugFromURL returns the segment after /problems/, or the last non-empty
// segment for links that do not follow the problem URL layout.
func slugFromURL(url string) string {
	if _, rest, found := strings.Cut(url, "/problems/"); found {
		slug, _, _ := strings.Cut(rest, "/")
		slug, _, _ = strings.Cut(slug, "?")
		slug, _, _ = strings.Cut(slug, "#")
		if slug != "" {
			return slug
		}
	}
	parts := strings.Split(url, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}

func unescapeCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if !strings.Contains(cell, `\`) {
		return cell
	}
	var b strings.Builder
	escaped := false
	for _, r := range cell {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}
	return b.String()
}

// RowFor builds the index row for a freshly pushed record.
func RowFor(record model.ProblemRecord, date string) model.IndexRow {
	return model.IndexRow{
		Key:        record.IndexKey(),
		Title:      record.Title,
		URL:        record.URL,
		Difficulty: model.ParseDifficulty(string(record.Difficulty)),
		Language:   record.Language,
		Date:       date,
	}
}

// Merge appends row unless a row with the same key is already present, in
// which case rows is returned untouched and added is false.
func Merge(rows []model.IndexRow, row model.IndexRow) ([]model.IndexRow, bool) {
	for _, existing := range rows {
		if existing.Key == row.Key {
			return rows, false
		}
	}
	return append(rows, row), true
}

// Sort orders rows by difficulty, then by title.
func Sort(rows []model.IndexRow) {
	collator := collate.New(language.English)
	sort.SliceStable(rows, func(i, j int) bool {
		ri, rj := rows[i].Difficulty.Rank(), rows[j].Difficulty.Rank()
		if ri != rj {
			return ri < rj
		}
		return collator.CompareString(rows[i].Title, rows[j].Title) < 0
	})
}

// Stats counts rows per difficulty.
func Stats(rows []model.IndexRow) model.IndexStats {
	stats := model.IndexStats{Total: len(rows)}
	for _, row := range rows {
		switch row.Difficulty {
		case model.DifficultyEasy:
			stats.Easy++
		case model.DifficultyMedium:
			stats.Medium++
		case model.DifficultyHard:
			stats.Hard++
		}
	}
	return stats
}

// Render produces the full README for rows, which must already be sorted.
func Render(rows []model.IndexRow, repositoryID string) string {
	stats := Stats(rows)

	var builder strings.Builder
	builder.WriteString("# 🚀 LeetCode Solutions\n\n")
	builder.WriteString("My LeetCode solutions, automatically synced from [LeetCode](https://leetcode.com/)!\n\n")
	builder.WriteString("## 📊 Statistics\n\n")
	builder.WriteString(fmt.Sprintf("- **Total Problems Solved:** %d\n", stats.Total))
	builder.WriteString(fmt.Sprintf("- **Easy:** %d 🟢\n", stats.Easy))
	builder.WriteString(fmt.Sprintf("- **Medium:** %d 🟡\n", stats.Medium))
	builder.WriteString(fmt.Sprintf("- **Hard:** %d 🔴\n\n", stats.Hard))
	builder.WriteString("## 📝 Problems\n\n")
	builder.WriteString("| Problem | Difficulty | Language | Date |\n")
	builder.WriteString("|---------|-----------|----------|------|\n")

	for _, row := range rows {
		date := row.Date
		if date == "" {
			date = missingDate
		}
		builder.WriteString(fmt.Sprintf("| [%s](%s) | %s %s | %s | %s |\n",
			cellEscaper.Replace(row.Title), urlEscaper.Replace(row.URL),
			row.Difficulty.Badge(), row.Difficulty,
			cellEscaper.Replace(row.Language), cellEscaper.Replace(date)))
	}

	builder.WriteString("\n---\n\n")
	builder.WriteString(fmt.Sprintf("*Generated automatically by [LeetLink](https://github.com/%s)*\n", repositoryID))
	return builder.String()
}

// Rebuild merges row into the index held by doc and renders the result.
func Rebuild(doc string, row model.IndexRow, repositoryID string) (string, bool) {
	rows, added := Merge(Parse(doc), row)
	Sort(rows)
	return Render(rows, repositoryID), added
}
