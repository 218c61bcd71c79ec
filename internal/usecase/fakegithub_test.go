package usecase

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/svscodes/LeetLink/internal/adapter/github"
	"github.com/svscodes/LeetLink/internal/adapter/logging"
)

type fakeFile struct {
	sha     string
	content []byte
	message string
}

// fakeRepo is an in-memory GitHub contents API for octo/solutions.
type fakeRepo struct {
	mu     sync.Mutex
	files  map[string]fakeFile
	status int
	calls  []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{files: map[string]fakeFile{}}
}

func (f *fakeRepo) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/repos/octo/solutions/contents/")
	f.calls = append(f.calls, r.Method+" "+path)
	w.Header().Set("Content-Type", "application/json")

	if f.status != 0 {
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
		return
	}

	switch r.Method {
	case http.MethodGet:
		file, ok := f.files[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"type":    "file",
			"sha":     file.sha,
			"content": base64.StdEncoding.EncodeToString(file.content),
		})
	case http.MethodPut:
		var payload struct {
			Message string `json:"message"`
			Content string `json:"content"`
			SHA     string `json:"sha"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		existing, ok := f.files[path]
		if ok && existing.sha != payload.SHA {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"message":"sha does not match"}`))
			return
		}
		if !ok && payload.SHA != "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"sha wasn't supplied"}`))
			return
		}
		content, _ := base64.StdEncoding.DecodeString(payload.Content)
		f.files[path] = fakeFile{sha: fmt.Sprintf("sha-%d", len(f.calls)), content: content, message: payload.Message}

		status := http.StatusCreated
		if ok {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"content": map[string]string{"html_url": "https://github.example/octo/solutions/blob/main/" + path},
		})
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeRepo) file(path string) (fakeFile, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[path]
	return file, ok
}

func (f *fakeRepo) requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRepo) client(t *testing.T) *github.Client {
	t.Helper()
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return github.New(github.Options{APIURL: srv.URL, WebURL: "https://github.example", HTTPClient: srv.Client()}, logging.Discard())
}
