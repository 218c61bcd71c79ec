package github

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
	"github.com/svscodes/LeetLink/internal/domain/ports"
)

const (
	DefaultAPIURL = "https://api.github.com"
	DefaultWebURL = "https://github.com"

	apiVersion   = "2022-11-28"
	userAgent    = "leetlink"
	maxBodyBytes = 8 << 20
)

// Options configures a Client.
type Options struct {
	APIURL string
	WebURL string
	// Timeout of zero leaves the transport defaults in charge.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client implements ports.ContentStore on the GitHub repository contents API.
type Client struct {
	httpClient *http.Client
	apiURL     string
	webURL     string
	logger     ports.Logger
}

var _ ports.ContentStore = (*Client)(nil)

// New creates a GitHub contents client.
func New(opts Options, logger ports.Logger) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	apiURL := strings.TrimRight(opts.APIURL, "/")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	webURL := strings.TrimRight(opts.WebURL, "/")
	if webURL == "" {
		webURL = DefaultWebURL
	}
	return &Client{
		httpClient: httpClient,
		apiURL:     apiURL,
		webURL:     webURL,
		logger:     logger,
	}
}

type putRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	Branch  string `json:"branch"`
	SHA     string `json:"sha,omitempty"`
}

// GetFile fetches a file and its revision token. A 404 yields (nil, nil).
func (c *Client) GetFile(ctx context.Context, target model.RemoteTarget, path string) (*model.RemoteObject, error) {
	endpoint := c.contentsURL(target, path) + "?ref=" + url.QueryEscape(target.BranchOrDefault())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, target)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.FromStatus(resp.StatusCode, errorMessage(body), target.RepositoryID)
	}

	sha := gjson.GetBytes(body, "sha").String()
	if sha == "" {
		return nil, fmt.Errorf("%s is not a file", path)
	}

	content, err := decodeContent(gjson.GetBytes(body, "content").String())
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return &model.RemoteObject{
		Path:          path,
		RevisionToken: sha,
		Content:       content,
	}, nil
}

// PutFile creates or updates a file. The revision token is sent only when present.
func (c *Client) PutFile(ctx context.Context, target model.RemoteTarget, commit model.CommitRequest) (*model.CommitResult, error) {
	branch := commit.Branch
	if branch == "" {
		branch = target.BranchOrDefault()
	}

	payload, err := json.Marshal(putRequest{
		Message: commit.Message,
		Content: base64.StdEncoding.EncodeToString(commit.Content),
		Branch:  branch,
		SHA:     commit.RevisionToken,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.contentsURL(target, commit.Path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	c.setHeaders(req, target)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperr.FromStatus(resp.StatusCode, errorMessage(body), target.RepositoryID)
	}

	link := gjson.GetBytes(body, "content.html_url").String()
	if link == "" {
		link = c.BlobURL(target, branch, commit.Path)
	}

	c.logger.Info(ctx, "file committed", "repository", target.RepositoryID, "path", commit.Path, "status", resp.StatusCode)

	return &model.CommitResult{URL: link, Message: commit.Message}, nil
}

// BlobURL is the browser link of a file on a branch.
func (c *Client) BlobURL(target model.RemoteTarget, branch, path string) string {
	return fmt.Sprintf("%s/%s/blob/%s/%s", c.webURL, target.RepositoryID, branch, escapePath(path))
}

func (c *Client) contentsURL(target model.RemoteTarget, path string) string {
	return fmt.Sprintf("%s/repos/%s/%s/contents/%s",
		c.apiURL, url.PathEscape(target.Owner()), url.PathEscape(target.Repo()), escapePath(path))
}

func (c *Client) setHeaders(req *http.Request, target model.RemoteTarget) {
	req.Header.Set("Authorization", "Bearer "+target.Credential)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	req.Header.Set("User-Agent", userAgent)
}

func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}
	return strings.Join(segments, "/")
}

// decodeContent undoes GitHub's line-wrapped base64.
func decodeContent(encoded string) ([]byte, error) {
	clean := strings.NewReplacer("\n", "", "\r", "").Replace(encoded)
	return base64.StdEncoding.DecodeString(clean)
}

func errorMessage(body []byte) string {
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return msg
	}
	return strings.TrimSpace(string(body))
}
