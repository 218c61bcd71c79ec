package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svscodes/LeetLink/internal/adapter/logging"
	"github.com/svscodes/LeetLink/internal/apperr"
	"github.com/svscodes/LeetLink/internal/domain/model"
)

var target = model.RemoteTarget{
	Credential:   "ghp_secret",
	RepositoryID: "octo/solutions",
	Branch:       "main",
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{APIURL: srv.URL, WebURL: "https://github.example", HTTPClient: srv.Client()}, logging.Discard())
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(r.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestGetFile_NotFoundIsAbsent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	})

	obj, err := client.GetFile(context.Background(), target, "README.md")
	require.NoError(t, err)
	assert.Nil(t, obj)
}

func TestGetFile_DecodesContentAndToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/repos/octo/solutions/contents/1.%20Two%20Sum/1.%20Two%20Sum.py", r.URL.EscapedPath())
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		assert.Equal(t, "Bearer ghp_secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

		encoded := base64.StdEncoding.EncodeToString([]byte("print(1)\nprint(2)\n"))
		wrapped := encoded[:8] + "\n" + encoded[8:] + "\n"
		_ = json.NewEncoder(w).Encode(map[string]string{
			"sha":      "abc123",
			"content":  wrapped,
			"encoding": "base64",
		})
	})

	obj, err := client.GetFile(context.Background(), target, "1. Two Sum/1. Two Sum.py")
	require.NoError(t, err)
	require.NotNil(t, obj)
	assert.Equal(t, "abc123", obj.RevisionToken)
	assert.Equal(t, "print(1)\nprint(2)\n", string(obj.Content))
}

func TestGetFile_DefaultsBranch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		w.WriteHeader(http.StatusNotFound)
	})

	noBranch := target
	noBranch.Branch = ""
	_, err := client.GetFile(context.Background(), noBranch, "README.md")
	require.NoError(t, err)
}

func TestGetFile_OtherStatusIsClassified(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	})

	_, err := client.GetFile(context.Background(), target, "README.md")
	assert.ErrorIs(t, err, apperr.ErrRemoteAuth)
}

func TestGetFile_DirectoryIsAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"name":"a.py","sha":"1"}]`))
	})

	_, err := client.GetFile(context.Background(), target, "folder")
	assert.Error(t, err)
}

func TestPutFile_CreateOmitsSHA(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		payload := decodeBody(t, r)
		assert.NotContains(t, payload, "sha")
		assert.Equal(t, "Add solution: 1. Two Sum", payload["message"])
		assert.Equal(t, "main", payload["branch"])
		assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("body ✓")), payload["content"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"content":{"html_url":"https://github.com/octo/solutions/blob/main/x.py"}}`))
	})

	res, err := client.PutFile(context.Background(), target, model.CommitRequest{
		Path:    "x.py",
		Message: "Add solution: 1. Two Sum",
		Content: []byte("body ✓"),
		Branch:  "main",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octo/solutions/blob/main/x.py", res.URL)
	assert.Equal(t, "Add solution: 1. Two Sum", res.Message)
}

func TestPutFile_UpdateSendsSHA(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		payload := decodeBody(t, r)
		assert.Equal(t, "abc123", payload["sha"])
		_, _ = w.Write([]byte(`{"content":{"html_url":"u"}}`))
	})

	_, err := client.PutFile(context.Background(), target, model.CommitRequest{
		Path:          "README.md",
		Message:       "Update README",
		Content:       []byte("x"),
		RevisionToken: "abc123",
	})
	require.NoError(t, err)
}

func TestPutFile_SynthesizesLinkWhenMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{}`))
	})

	res, err := client.PutFile(context.Background(), target, model.CommitRequest{
		Path:    "1. Two Sum/1. Two Sum.py",
		Message: "Add solution: 1. Two Sum",
		Content: []byte("x"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://github.example/octo/solutions/blob/main/1.%20Two%20Sum/1.%20Two%20Sum.py", res.URL)
}

func TestPutFile_StatusTaxonomy(t *testing.T) {
	cases := []struct {
		status int
		body   string
		kind   error
		text   string
	}{
		{http.StatusUnauthorized, `{"message":"Bad credentials"}`, apperr.ErrRemoteAuth, "invalid or expired"},
		{http.StatusNotFound, `{"message":"Not Found"}`, apperr.ErrRemoteNotFound, `"octo/solutions"`},
		{http.StatusForbidden, `{"message":"Resource not accessible"}`, apperr.ErrRemotePermission, "repo"},
		{http.StatusUnprocessableEntity, `{"message":"Invalid request.\n\n\"sha\" wasn't supplied."}`, apperr.ErrRemoteValidation, "\"sha\" wasn't supplied."},
		{http.StatusInternalServerError, `oops`, apperr.ErrRemote, "(500): oops"},
	}

	for _, tc := range cases {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})

			_, err := client.PutFile(context.Background(), target, model.CommitRequest{Path: "a.py", Content: []byte("x")})
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.kind)
			assert.Contains(t, err.Error(), tc.text)

			var remote *apperr.RemoteError
			require.True(t, errors.As(err, &remote))
			assert.Equal(t, tc.status, remote.Status)
		})
	}
}
