// Package http provides the inbound web server and the HTTP-based catalog
// source.
package http

import (
	"context"
	_ "embed"
	"html/template"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jmartel/bibliofind"
	"golang.org/x/time/rate"
)

//go:embed index.html
var pageHTML string

var pageTmpl = template.Must(template.New("index").Parse(pageHTML))

// Server serves the question form and search results on the root path.
// Every failure mode degrades to a rendered page: catalog failures show
// an empty result set, completion failures show an inline error message.
type Server struct {
	Search  bibliofind.Searcher
	Catalog *bibliofind.CatalogCache
	Queries bibliofind.QueryLogService // optional, nil disables the query log
	Limiter *rate.Limiter              // optional, guards the completion endpoint
	Logger  *slog.Logger
}

type pageData struct {
	Question     string
	Result       template.HTML
	Error        string
	Tags         []string
	ArticleCount int
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	ctx := r.Context()
	logger := s.logger().With("request_id", uuid.New().String())

	var data pageData
	switch r.Method {
	case http.MethodGet:
	case http.MethodPost:
		question := strings.TrimSpace(r.FormValue("question"))
		data.Question = question
		if question != "" {
			data.Result, data.Error = s.answer(ctx, logger, question)
		}
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// A failed refresh already logged through the source decorators and
	// degrades to the held snapshot.
	snap, _ := s.Catalog.Get(ctx)
	data.Tags = snap.Tags
	data.ArticleCount = len(snap.Articles)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		logger.Error("render page", "err", err)
	}
}

// answer runs one question and returns either the rendered result fragment
// or a user-visible error message. The request itself still completes with
// HTTP 200 either way.
func (s *Server) answer(ctx context.Context, logger *slog.Logger, question string) (template.HTML, string) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			logger.Warn("rate limit wait aborted", "err", err)
			return "", "le service est occupé, réessayez dans un instant"
		}
	}

	result, err := s.Search.Search(ctx, question)
	if err != nil {
		logger.Error("search failed", "err", err)
		return "", bibliofind.ErrorMessage(err)
	}

	s.recordQuery(ctx, logger, result)
	return RenderArticles(result.Articles), ""
}

// recordQuery persists the query best-effort; failures are logged and
// never surfaced to the user.
func (s *Server) recordQuery(ctx context.Context, logger *slog.Logger, result *bibliofind.SearchResult) {
	if s.Queries == nil {
		return
	}
	rec := &bibliofind.QueryRecord{
		Question:    result.Question,
		RawResponse: result.Raw,
		MatchCount:  len(result.Articles),
	}
	if err := s.Queries.CreateQuery(ctx, rec); err != nil {
		logger.Warn("query log write failed", "err", err)
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
