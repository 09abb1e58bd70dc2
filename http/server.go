package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/helpcenter"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// ShutdownTimeout is how long Serve waits for in-flight requests on exit.
const ShutdownTimeout = 5 * time.Second

// Server exposes search, listing, theme and feedback over JSON so the
// presentation layer renders results without reimplementing any matching.
type Server struct {
	index    *helpcenter.Index
	matcher  *helpcenter.Matcher
	searcher helpcenter.Searcher
	themes   *helpcenter.ThemeService
	feedback helpcenter.FeedbackService
	logger   *slog.Logger

	allowAllOrigins bool
	router          chi.Router
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithSearcher replaces the searcher used for capped queries, typically
// with a logging decorator around the matcher.
func WithSearcher(searcher helpcenter.Searcher) ServerOption {
	return func(s *Server) {
		s.searcher = searcher
	}
}

// WithAllowAllOrigins allows cross-origin requests from any origin.
// By default only localhost origins are allowed.
func WithAllowAllOrigins(allow bool) ServerOption {
	return func(s *Server) {
		s.allowAllOrigins = allow
	}
}

// NewServer creates a Server over idx. Themes and feedback may be nil, in
// which case their routes are not mounted.
func NewServer(idx *helpcenter.Index, themes *helpcenter.ThemeService, feedback helpcenter.FeedbackService, logger *slog.Logger, opts ...ServerOption) *Server {
	matcher := helpcenter.NewMatcher(idx)
	s := &Server{
		index:    idx,
		matcher:  matcher,
		searcher: matcher,
		themes:   themes,
		feedback: feedback,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.buildRouter()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Serve listens on ln until ctx is canceled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "If-None-Match"},
		ExposedHeaders: []string{"ETag"},
		MaxAge:         300,
	}
	if s.allowAllOrigins {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", s.handleSearch)
		r.Get("/listing", s.handleListing)

		if s.themes != nil {
			r.Get("/theme", s.handleGetTheme)
			r.Put("/theme", s.handleSetTheme)
			r.Post("/theme/toggle", s.handleToggleTheme)
		}

		if s.feedback != nil {
			r.Post("/feedback", s.handleCreateFeedback)
			r.Get("/feedback/{reference}", s.handleFeedbackSummary)
		}
	})

	return r
}

// logRequests logs each request with its status and duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		defer func(begin time.Time) {
			s.logger.Debug("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"request_id", middleware.GetReqID(r.Context()),
				"duration", time.Since(begin),
			)
		}(time.Now())
		next.ServeHTTP(ww, r)
	})
}

// handleSearch answers GET /api/search?q=...[&all=true].
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	etag := `"` + helpcenter.FormatFingerprint(s.index.Fingerprint()) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	query := r.URL.Query().Get("q")
	all, _ := strconv.ParseBool(r.URL.Query().Get("all"))

	var out helpcenter.Outcome
	if all {
		out = s.matcher.SearchAll(query)
	} else {
		out = s.searcher.Search(query)
	}
	if out.Results == nil {
		out.Results = []helpcenter.Result{}
	}

	s.writeJSON(w, http.StatusOK, out)
}

// listingResponse is the body of GET /api/listing.
type listingResponse struct {
	helpcenter.ListingSummary
	Filter     string                `json:"filter"`
	Search     string                `json:"search"`
	Sort       helpcenter.SortKey    `json:"sort"`
	Categories []helpcenter.Category `json:"categories"`
	Records    []helpcenter.Record   `json:"records"`
}

// handleListing answers GET /api/listing?filter=&category=&search=&sort=.
// The category parameter takes a category slug and overrides filter.
func (s *Server) handleListing(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	listing := helpcenter.NewListing(s.index.Records())

	sortKey := helpcenter.SortKey(q.Get("sort"))
	listing.Sort(sortKey)

	listing.SetFilter(q.Get("filter"))
	if slug := q.Get("category"); slug != "" {
		category, err := listing.CategoryBySlug(slug)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		listing.SetFilter(category.Key)
	}
	listing.SetSearch(q.Get("search"))

	records := listing.Visible()
	if records == nil {
		records = []helpcenter.Record{}
	}

	s.writeJSON(w, http.StatusOK, listingResponse{
		ListingSummary: listing.Summary(),
		Filter:         listing.Filter(),
		Search:         listing.Search(),
		Sort:           sortKey,
		Categories:     listing.Categories(),
		Records:        records,
	})
}

type themeBody struct {
	Theme helpcenter.Theme `json:"theme"`
}

func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.themes.Current(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, themeBody{Theme: theme})
}

func (s *Server) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var body themeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, r, helpcenter.Errorf(helpcenter.EINVALID, "invalid JSON body: %v", err))
		return
	}
	if err := s.themes.Set(r.Context(), body.Theme); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) handleToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.themes.Toggle(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, themeBody{Theme: theme})
}

func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	var fb helpcenter.Feedback
	if err := json.NewDecoder(r.Body).Decode(&fb); err != nil {
		s.writeError(w, r, helpcenter.Errorf(helpcenter.EINVALID, "invalid JSON body: %v", err))
		return
	}
	fb.ID = ""
	if err := s.feedback.CreateFeedback(r.Context(), &fb); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, fb)
}

func (s *Server) handleFeedbackSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.feedback.SummarizeFeedback(r.Context(), chi.URLParam(r, "reference"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, summary)
}

// errorResponse is the body of every error reply.
type errorResponse struct {
	Error string `json:"error"`
}

// errorStatusCodes maps application error codes to HTTP status codes.
var errorStatusCodes = map[string]int{
	helpcenter.ECONFLICT: http.StatusConflict,
	helpcenter.EINVALID:  http.StatusBadRequest,
	helpcenter.ENOTFOUND: http.StatusNotFound,
	helpcenter.EINTERNAL: http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application error code.
func ErrorStatusCode(code string) int {
	if v, ok := errorStatusCodes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := helpcenter.ErrorCode(err)
	if code == helpcenter.EINTERNAL {
		s.logger.Error("http error",
			"method", r.Method,
			"path", r.URL.Path,
			"err", err,
		)
	}
	s.writeJSON(w, ErrorStatusCode(code), errorResponse{Error: helpcenter.ErrorMessage(err)})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "err", err)
	}
}
