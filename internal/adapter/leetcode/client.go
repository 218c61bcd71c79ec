package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

// DefaultBaseURL is the public LeetCode site.
const DefaultBaseURL = "https://leetcode.com"

// Client implements ProblemProvider using the LeetCode GraphQL endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     ports.Logger
}

var _ ports.ProblemProvider = (*Client)(nil)

// New creates a new LeetCode client. An empty baseURL means DefaultBaseURL.
func New(baseURL string, timeout time.Duration, logger ports.Logger) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// GetProblem retrieves catalogue metadata for a problem slug.
func (c *Client) GetProblem(ctx context.Context, slug string) (*model.Problem, error) {
	payload := map[string]any{
		"query":     `query questionTitle($titleSlug: String!) { question(titleSlug: $titleSlug) { questionFrontendId title titleSlug difficulty } }`,
		"variables": map[string]string{"titleSlug": slug},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/graphql", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", c.baseURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data))
	}

	var gqlResp struct {
		Data struct {
			Question *struct {
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				TitleSlug          string `json:"titleSlug"`
				Difficulty         string `json:"difficulty"`
			} `json:"question"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	q := gqlResp.Data.Question
	if q == nil || q.TitleSlug == "" {
		return nil, fmt.Errorf("problem %q not found", slug)
	}

	c.logger.Info(ctx, "fetched problem metadata", "slug", q.TitleSlug)

	return &model.Problem{
		ID:         parseInt(q.QuestionFrontendID),
		Title:      q.Title,
		Slug:       q.TitleSlug,
		Difficulty: q.Difficulty,
		Link:       c.ProblemURL(q.TitleSlug),
	}, nil
}

// ProblemURL is the page of a problem on this site.
func (c *Client) ProblemURL(slug string) string {
	return fmt.Sprintf("%s/problems/%s/", c.baseURL, slug)
}

func parseInt(val string) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}
