// Package browser extracts the open problem from a Chrome session over the
// DevTools protocol.
package browser

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/tidwall/gjson"

	"github.com/svscodes/LeetLink/internal/adapter/leetcode"
	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

// editorScript reads the full Monaco model, which unlike the rendered lines
// is not virtualised.
const editorScript = `() => {
	try {
		if (window.monaco && window.monaco.editor) {
			const models = window.monaco.editor.getModels();
			if (models.length > 0) {
				return JSON.stringify({ code: models[0].getValue(), language: models[0].getLanguageId() });
			}
		}
	} catch (e) {}
	return JSON.stringify({ code: "", language: "" });
}`

const acceptedScript = `() => {
	const markers = ["text-green", "text-success", "text-olive", "bg-green", "success"];
	for (const el of document.querySelectorAll("*")) {
		if ((el.textContent || "").trim() !== "Accepted") continue;
		const cls = el.getAttribute && (el.getAttribute("class") || "");
		if (cls && markers.some(m => cls.includes(m))) return true;
	}
	return false;
}`

// Options configures an Extractor.
type Options struct {
	// ControlURL attaches to a running browser. When empty a browser is launched.
	ControlURL string
	Headless   bool
	// PageURL is opened when no problem page is open yet.
	PageURL string
}

// Extractor implements ports.Extractor on a live LeetCode tab.
type Extractor struct {
	mu       sync.Mutex
	opts     Options
	browser  *rod.Browser
	launcher *launcher.Launcher
	logger   ports.Logger
}

var _ ports.Extractor = (*Extractor)(nil)

// New creates an Extractor. The browser is connected on first use.
func New(opts Options, logger ports.Logger) *Extractor {
	return &Extractor{opts: opts, logger: logger}
}

// Extract reads the problem metadata and editor contents of the open problem page.
func (e *Extractor) Extract(ctx context.Context) (*model.ProblemRecord, error) {
	page, err := e.problemPage(ctx)
	if err != nil {
		return nil, err
	}

	info, err := page.Info()
	if err != nil {
		return nil, apperr.Extraction("read page info: " + err.Error())
	}
	document, err := page.HTML()
	if err != nil {
		return nil, apperr.Extraction("read page: " + err.Error())
	}

	details, err := leetcode.ParsePage(document, info.URL)
	if err != nil {
		return nil, err
	}

	code, language := e.editorContents(ctx, page)
	if strings.TrimSpace(code) == "" {
		return nil, apperr.Extraction("no code found")
	}
	if language != "" {
		details.Language = language
	}

	record := details.Record(code)
	e.logger.Info(ctx, "extracted solution", "slug", record.ProblemSlug, "language", record.Language)
	return &record, nil
}

// Accepted reports whether the open problem page shows an accepted verdict,
// along with the canonical problem URL.
func (e *Extractor) Accepted(ctx context.Context) (string, bool, error) {
	page, err := e.problemPage(ctx)
	if err != nil {
		return "", false, err
	}

	info, err := page.Info()
	if err != nil {
		return "", false, fmt.Errorf("read page info: %w", err)
	}

	problemURL := leetcode.CanonicalURL(info.URL)
	res, err := page.Context(ctx).Evaluate(&rod.EvalOptions{JS: acceptedScript, ByValue: true})
	if err != nil {
		return problemURL, false, fmt.Errorf("evaluate verdict: %w", err)
	}
	return problemURL, res.Value.Bool(), nil
}

// Close disconnects from the browser and stops it if it was launched here.
func (e *Extractor) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var err error
	if e.browser != nil {
		if e.launcher != nil {
			err = e.browser.Close()
		}
		e.browser = nil
	}
	if e.launcher != nil {
		e.launcher.Kill()
		e.launcher = nil
	}
	return err
}

func (e *Extractor) connect() (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		return e.browser, nil
	}

	controlURL := e.opts.ControlURL
	if controlURL == "" {
		l := launcher.New().Headless(e.opts.Headless)
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch chrome: %w", err)
		}
		controlURL = u
		e.launcher = l
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to chrome: %w", err)
	}
	e.browser = browser
	return browser, nil
}

func (e *Extractor) problemPage(ctx context.Context) (*rod.Page, error) {
	browser, err := e.connect()
	if err != nil {
		return nil, apperr.Extraction(err.Error())
	}

	pages, err := browser.Pages()
	if err != nil {
		return nil, apperr.Extraction("list pages: " + err.Error())
	}
	for _, page := range pages {
		info, err := page.Info()
		if err != nil {
			continue
		}
		if leetcode.IsProblemPage(info.URL) {
			return page.Context(ctx), nil
		}
	}

	if e.opts.PageURL == "" {
		return nil, apperr.Extraction("problem page not located")
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: e.opts.PageURL})
	if err != nil {
		return nil, apperr.Extraction("open page: " + err.Error())
	}
	page = page.Context(ctx)
	if err := page.WaitLoad(); err != nil {
		return nil, apperr.Extraction("load page: " + err.Error())
	}
	return page, nil
}

// editorContents prefers the Monaco model and falls back to the rendered
// lines, which may be incomplete for long solutions.
func (e *Extractor) editorContents(ctx context.Context, page *rod.Page) (string, string) {
	res, err := page.Evaluate(&rod.EvalOptions{JS: editorScript, ByValue: true})
	if err == nil {
		if code, language := parseEditorState(res.Value.String()); code != "" {
			return code, language
		}
	} else {
		e.logger.Warn(ctx, "monaco model unavailable", "error", err)
	}

	lines, err := page.Elements(".view-line")
	if err != nil || len(lines) == 0 {
		return "", ""
	}
	e.logger.Warn(ctx, "falling back to rendered editor lines, code may be incomplete")

	texts := make([]string, 0, len(lines))
	for _, line := range lines {
		text, err := line.Text()
		if err != nil {
			continue
		}
		texts = append(texts, text)
	}
	return strings.Join(texts, "\n"), ""
}

func parseEditorState(raw string) (code, language string) {
	return gjson.Get(raw, "code").String(), gjson.Get(raw, "language").String()
}
