package http_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jmartel/bibliofind"
	biblhttp "github.com/jmartel/bibliofind/http"
	"github.com/jmartel/bibliofind/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testArticles = []bibliofind.Article{
	{Title: "Intro to X", Description: "Basics of X", Tags: "ml,intro", URL: "http://a"},
}

func newTestCatalog(articles []bibliofind.Article) *bibliofind.CatalogCache {
	return bibliofind.NewCatalogCache(&mock.CatalogSource{
		LoadFn: func(context.Context) ([]bibliofind.Article, error) {
			return articles, nil
		},
	})
}

func newTestServer(t *testing.T, srv *biblhttp.Server) *httptest.Server {
	t.Helper()
	if srv.Logger == nil {
		srv.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postQuestion(t *testing.T, serverURL, question string) (int, string) {
	t.Helper()
	resp, err := http.PostForm(serverURL, url.Values{"question": {question}})
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestServer_Get(t *testing.T) {
	t.Parallel()

	t.Run("renders the empty form with tags and count", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
		})

		status, body := get(t, ts.URL)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, `name="question"`)
		assert.Contains(t, body, "1 articles dans la base")
		assert.Contains(t, body, "intro")
		assert.Contains(t, body, "ml")
	})

	t.Run("unknown path is not found", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
		})

		status, _ := get(t, ts.URL+"/nope")

		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("catalog failure renders an empty page", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, &biblhttp.Server{
			Catalog: bibliofind.NewCatalogCache(&mock.CatalogSource{
				LoadFn: func(context.Context) ([]bibliofind.Article, error) {
					return nil, bibliofind.Errorf(bibliofind.EUNAVAILABLE, "source down")
				},
			}),
		})

		status, body := get(t, ts.URL)

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "0 articles dans la base")
	})
}

func TestServer_Post(t *testing.T) {
	t.Parallel()

	t.Run("matched result renders cards and echoes the question", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
			Search: &mock.Searcher{
				SearchFn: func(_ context.Context, question string) (*bibliofind.SearchResult, error) {
					return &bibliofind.SearchResult{
						Question: question,
						Titles:   []string{"Intro to X"},
						Articles: testArticles,
						Raw:      `["Intro to X"]`,
					}, nil
				},
			},
		})

		status, body := postQuestion(t, ts.URL, "anything about ml?")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Intro to X")
		assert.Contains(t, body, `href="http://a"`)
		assert.Contains(t, body, "anything about ml?")
	})

	t.Run("no matches renders the no-results fragment", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
			Search: &mock.Searcher{
				SearchFn: func(_ context.Context, question string) (*bibliofind.SearchResult, error) {
					return &bibliofind.SearchResult{Question: question, Raw: "[]"}, nil
				},
			},
		})

		status, body := postQuestion(t, ts.URL, "unrelated")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, string(biblhttp.NoResultsFragment))
	})

	t.Run("search failure renders inline error with HTTP 200", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
			Search: &mock.Searcher{
				SearchFn: func(context.Context, string) (*bibliofind.SearchResult, error) {
					return nil, bibliofind.Errorf(bibliofind.EUNAVAILABLE, "model endpoint down")
				},
			},
		})

		status, body := postQuestion(t, ts.URL, "question")

		assert.Equal(t, http.StatusOK, status)
		assert.Contains(t, body, "Erreur :")
		assert.Contains(t, body, "model endpoint down")
	})

	t.Run("blank question skips the search", func(t *testing.T) {
		t.Parallel()

		called := false
		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
			Search: &mock.Searcher{
				SearchFn: func(context.Context, string) (*bibliofind.SearchResult, error) {
					called = true
					return nil, nil
				},
			},
		})

		status, _ := postQuestion(t, ts.URL, "   ")

		assert.Equal(t, http.StatusOK, status)
		assert.False(t, called)
	})

	t.Run("records the query log best-effort", func(t *testing.T) {
		t.Parallel()

		var recorded *bibliofind.QueryRecord
		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
			Search: &mock.Searcher{
				SearchFn: func(_ context.Context, question string) (*bibliofind.SearchResult, error) {
					return &bibliofind.SearchResult{
						Question: question,
						Titles:   []string{"Intro to X"},
						Articles: testArticles,
						Raw:      `["Intro to X"]`,
					}, nil
				},
			},
			Queries: &mock.QueryLogService{
				CreateQueryFn: func(_ context.Context, q *bibliofind.QueryRecord) error {
					recorded = q
					return nil
				},
			},
		})

		_, _ = postQuestion(t, ts.URL, "question")

		require.NotNil(t, recorded)
		assert.Equal(t, "question", recorded.Question)
		assert.Equal(t, 1, recorded.MatchCount)
		assert.Equal(t, `["Intro to X"]`, recorded.RawResponse)
	})

	t.Run("query log failure stays invisible to the user", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, &biblhttp.Server{
			Catalog: newTestCatalog(testArticles),
			Search: &mock.Searcher{
				SearchFn: func(_ context.Context, question string) (*bibliofind.SearchResult, error) {
					return &bibliofind.SearchResult{Question: question, Raw: "[]"}, nil
				},
			},
			Queries: &mock.QueryLogService{
				CreateQueryFn: func(context.Context, *bibliofind.QueryRecord) error {
					return bibliofind.Errorf(bibliofind.EINTERNAL, "disk full")
				},
			},
		})

		status, body := postQuestion(t, ts.URL, "question")

		assert.Equal(t, http.StatusOK, status)
		assert.NotContains(t, body, "disk full")
	})
}

func TestServer_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, &biblhttp.Server{
		Catalog: newTestCatalog(testArticles),
	})

	req, err := http.NewRequest(http.MethodDelete, ts.URL, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

// End-to-end: real Search over a mock catalog and a stubbed model.
func TestServer_EndToEnd(t *testing.T) {
	t.Parallel()

	catalog := newTestCatalog(testArticles)

	newServer := func(response string) *biblhttp.Server {
		return &biblhttp.Server{
			Catalog: catalog,
			Search: &bibliofind.Search{
				Catalog: catalog,
				Completer: &mock.Completer{
					CompleteFn: func(context.Context, string, string) (string, error) {
						return response, nil
					},
				},
			},
		}
	}

	t.Run("model returns empty array", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, newServer("[]"))

		_, body := postQuestion(t, ts.URL, "how do I knit a sweater?")

		assert.Contains(t, body, string(biblhttp.NoResultsFragment))
	})

	t.Run("model returns a known title", func(t *testing.T) {
		t.Parallel()

		ts := newTestServer(t, newServer("```json\n[\"Intro to X\"]\n```"))

		_, body := postQuestion(t, ts.URL, "anything introductory on ml?")

		assert.Contains(t, body, "Intro to X")
		assert.Contains(t, body, "ml,intro")
		assert.Contains(t, body, `href="http://a"`)
	})
}
