package leetcode

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
)

const (
	unknownTitle    = "Unknown Problem"
	defaultLanguage = "python3"
)

// PageDetails is the metadata scraped from a problem page. The code comes
// from the editor and is filled in by the caller.
type PageDetails struct {
	Title      string
	Difficulty model.Difficulty
	Slug       string
	Language   string
	URL        string
}

// Record combines the page details with the editor contents.
func (d PageDetails) Record(code string) model.ProblemRecord {
	return model.ProblemRecord{
		Title:       d.Title,
		Difficulty:  d.Difficulty,
		URL:         d.URL,
		ProblemSlug: d.Slug,
		Language:    d.Language,
		Code:        code,
	}
}

// ParsePage reads problem metadata from the HTML of a problem page.
func ParsePage(document, pageURL string) (PageDetails, error) {
	slug := slugFromURL(pageURL)
	if slug == "" {
		return PageDetails{}, apperr.Extraction("problem page not located")
	}

	root, err := html.Parse(strings.NewReader(document))
	if err != nil {
		return PageDetails{}, apperr.Extraction("parse page: " + err.Error())
	}

	return PageDetails{
		Title:      pageTitle(root),
		Difficulty: pageDifficulty(root),
		Slug:       slug,
		Language:   pageLanguage(root),
		URL:        CanonicalURL(pageURL),
	}, nil
}

// IsProblemPage reports whether pageURL points at a problem.
func IsProblemPage(pageURL string) bool {
	return slugFromURL(pageURL) != ""
}

// CanonicalURL reduces a problem page URL such as
// https://leetcode.com/problems/two-sum/description/?envType=x to
// https://leetcode.com/problems/two-sum/. Other URLs are returned unchanged.
func CanonicalURL(pageURL string) string {
	slug := slugFromURL(pageURL)
	if slug == "" {
		return pageURL
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	prefix, _, _ := strings.Cut(u.Path, "/problems/")
	canonical := url.URL{Scheme: u.Scheme, Host: u.Host, Path: prefix + "/problems/" + slug + "/"}
	return canonical.String()
}

func slugFromURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	_, rest, found := strings.Cut(u.Path, "/problems/")
	if !found {
		return ""
	}
	slug, _, _ := strings.Cut(rest, "/")
	return slug
}

func pageTitle(root *html.Node) string {
	if node := find(root, func(n *html.Node) bool { return isElement(n, "title") }); node != nil {
		title, _, _ := strings.Cut(textOf(node), " - ")
		title = strings.TrimSpace(title)
		if title != "" && title != "LeetCode" && startsWithDigit(title) {
			return title
		}
	}

	fallbacks := []func(*html.Node) bool{
		func(n *html.Node) bool { return n.Type == html.ElementNode && attr(n, "data-cy") == "question-title" },
		func(n *html.Node) bool { return n.Type == html.ElementNode && hasClass(n, "text-title-large") },
	}
	for _, match := range fallbacks {
		if node := find(root, match); node != nil {
			if title := strings.TrimSpace(textOf(node)); title != "" {
				return title
			}
		}
	}
	return unknownTitle
}

func pageDifficulty(root *html.Node) model.Difficulty {
	node := find(root, func(n *html.Node) bool {
		if !isElement(n, "div") && !isElement(n, "span") && !isElement(n, "p") {
			return false
		}
		switch strings.TrimSpace(textOf(n)) {
		case string(model.DifficultyEasy), string(model.DifficultyMedium), string(model.DifficultyHard):
			return true
		}
		return false
	})
	if node == nil {
		return model.DifficultyMedium
	}
	return model.Difficulty(strings.TrimSpace(textOf(node)))
}

func pageLanguage(root *html.Node) string {
	layout := find(root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == "editor-language-layout"
	})
	if layout == nil {
		return defaultLanguage
	}
	button := find(layout, func(n *html.Node) bool { return isElement(n, "button") })
	if button == nil {
		return defaultLanguage
	}
	if lang := strings.TrimSpace(textOf(button)); lang != "" {
		return lang
	}
	return defaultLanguage
}

// find returns the first node in document order that satisfies match.
func find(node *html.Node, match func(*html.Node) bool) *html.Node {
	if match(node) {
		return node
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if found := find(child, match); found != nil {
			return found
		}
	}
	return nil
}

func textOf(node *html.Node) string {
	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	if node.Type == html.TextNode {
		builder.WriteString(node.Data)
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
