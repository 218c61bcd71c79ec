// Package solution derives where a solution lives in the repository and what the file contains.
package solution

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/svscodes/LeetLink/internal/domain/model"
)

const fallbackExtension = "txt"

var extensions = map[string]string{
	"python":     "py",
	"python3":    "py",
	"c++":        "cpp",
	"cpp":        "cpp",
	"c#":         "cs",
	"csharp":     "cs",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c":          "c",
	"golang":     "go",
	"go":         "go",
	"php":        "php",
	"ruby":       "rb",
	"swift":      "swift",
	"kotlin":     "kt",
	"rust":       "rs",
	"scala":      "scala",
	"mysql":      "sql",
	"mssql":      "sql",
	"oraclesql":  "sql",
	"postgresql": "sql",
}

// languages maps an extension back to the name LeetCode uses for it.
var languages = map[string]string{
	"py":    "python3",
	"cpp":   "cpp",
	"cs":    "csharp",
	"js":    "javascript",
	"ts":    "typescript",
	"java":  "java",
	"c":     "c",
	"go":    "golang",
	"php":   "php",
	"rb":    "ruby",
	"swift": "swift",
	"kt":    "kotlin",
	"rs":    "rust",
	"scala": "scala",
	"sql":   "mysql",
}

// CommentStyle is the syntax of the header block written above the code.
type CommentStyle struct {
	Start string
	Line  string
	End   string
}

var (
	hashStyle  = CommentStyle{Start: "#", Line: "#", End: ""}
	blockStyle = CommentStyle{Start: "/*", Line: " *", End: " */"}
)

// Extension maps a language name to a file extension, "txt" when unknown.
func Extension(language string) string {
	lang := strings.ToLower(strings.TrimSpace(language))
	if ext, ok := extensions[lang]; ok {
		return ext
	}

	// "python2", "java 17"
	trimmed := strings.TrimRightFunc(lang, func(r rune) bool {
		return unicode.IsDigit(r) || unicode.IsSpace(r) || r == '.'
	})
	if ext, ok := extensions[trimmed]; ok {
		return ext
	}

	return fallbackExtension
}

// LanguageForExtension returns the LeetCode language name for a file extension.
func LanguageForExtension(ext string) (string, bool) {
	lang, ok := languages[strings.ToLower(strings.TrimPrefix(ext, "."))]
	return lang, ok
}

// CommentStyleFor picks hash comments for python and ruby, block comments otherwise.
func CommentStyleFor(language string) CommentStyle {
	lang := strings.ToLower(language)
	if strings.Contains(lang, "python") || strings.Contains(lang, "ruby") {
		return hashStyle
	}
	return blockStyle
}

// Sanitize keeps ASCII letters and digits, whitespace, hyphens and periods.
func Sanitize(title string) string {
	var builder strings.Builder
	for _, r := range norm.NFC.String(title) {
		if isSafeRune(r) {
			builder.WriteRune(r)
		}
	}
	return strings.TrimSpace(builder.String())
}

func isSafeRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-', r == '.':
		return true
	default:
		return unicode.IsSpace(r)
	}
}

// Path returns "{title}/{title}.{ext}" for the record.
func Path(record model.ProblemRecord) string {
	name := Sanitize(record.Title)
	return fmt.Sprintf("%s/%s.%s", name, name, Extension(record.Language))
}

// Format renders the file body: a header comment, a blank line, then the code.
func Format(record model.ProblemRecord, date time.Time) string {
	style := CommentStyleFor(record.Language)

	var builder strings.Builder
	builder.WriteString(style.Start + "\n")
	builder.WriteString(fmt.Sprintf("%s Problem: %s\n", style.Line, record.Title))
	builder.WriteString(fmt.Sprintf("%s Difficulty: %s\n", style.Line, record.Difficulty))
	builder.WriteString(fmt.Sprintf("%s Link: %s\n", style.Line, record.URL))
	builder.WriteString(fmt.Sprintf("%s Language: %s\n", style.Line, record.Language))
	builder.WriteString(fmt.Sprintf("%s Date: %s\n", style.Line, FormatDate(date)))
	builder.WriteString(style.End + "\n")
	builder.WriteString("\n")
	builder.WriteString(record.Code)
	builder.WriteString("\n")
	return builder.String()
}

// FormatDate renders the UTC calendar date used in headers and the index.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
