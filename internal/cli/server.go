package cli

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/pyunparse/pkg/buildinfo"
	"github.com/matzehuels/pyunparse/pkg/errors"
	"github.com/matzehuels/pyunparse/pkg/observability"
	"github.com/matzehuels/pyunparse/pkg/pipeline"
	"github.com/matzehuels/pyunparse/pkg/render/treeviz"
)

// requestIDHeader carries the request ID in both directions.
const requestIDHeader = "X-Request-ID"

// server exposes the pipeline over HTTP.
//
//	POST /v1/unparse  body: JSON tree  → {"source": ..., "tree_hash": ..., ...}
//	POST /v1/tree     body: JSON tree  → diagram in ?format=dot|svg|png|pdf
//	GET  /healthz                      → build info
type server struct {
	runner   *pipeline.Runner
	logger   *log.Logger
	defaults pipeline.Options
	maxBody  int64
}

// unparseResponse is the body of a successful POST /v1/unparse.
type unparseResponse struct {
	Source     string `json:"source"`
	TreeHash   string `json:"tree_hash"`
	Statements int    `json:"statements"`
	Cached     bool   `json:"cached"`
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error struct {
		Code      errors.Code `json:"code"`
		Message   string      `json:"message"`
		RequestID string      `json:"request_id,omitempty"`
	} `json:"error"`
}

// handler builds the router.
func (s *server) handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.observe)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Route("/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		r.Post("/unparse", s.unparse)
		r.Post("/tree", s.tree)
	})
	return r
}

// requestID assigns every request an ID, keeping a well-formed incoming one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		r.Header.Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// observe logs each request and reports it to the HTTP hooks.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		logger := s.logger.With("request_id", r.Header.Get(requestIDHeader))
		ctx := withLogger(r.Context(), logger)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, duration)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", duration.Round(time.Microsecond))
	})
}

func (s *server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *server) unparse(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, unparseResponse{
		Source:     result.Source,
		TreeHash:   result.TreeHash,
		Statements: result.Stats.Statements,
		Cached:     result.CacheInfo.RenderHit,
	})
}

func (s *server) tree(w http.ResponseWriter, r *http.Request) {
	opts, err := s.options(w, r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := s.runner.Visualize(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[opts.Format])
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

var contentTypes = map[string]string{
	treeviz.FormatDOT: "text/vnd.graphviz; charset=utf-8",
	treeviz.FormatSVG: "image/svg+xml",
	treeviz.FormatPNG: "image/png",
	treeviz.FormatPDF: "application/pdf",
}

// options reads the body and the query parameters indent, raw_strings,
// refresh, format, max_depth and detailed.
func (s *server) options(w http.ResponseWriter, r *http.Request) (pipeline.Options, error) {
	opts := s.defaults
	opts.Logger = loggerFromContext(r.Context())

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "read body")
	}
	opts.Source = body

	q := r.URL.Query()
	if v := q.Get("indent"); v != "" {
		indent, err := parseIndent(v)
		if err != nil {
			return opts, err
		}
		opts.Indent = indent
	}
	raw := !opts.EscapeOnly
	for _, p := range []struct {
		name string
		dst  *bool
	}{
		{"raw_strings", &raw},
		{"refresh", &opts.Refresh},
		{"detailed", &opts.Detailed},
	} {
		if err := boolParam(q, p.name, p.dst); err != nil {
			return opts, err
		}
	}
	opts.EscapeOnly = !raw
	if v := q.Get("format"); v != "" {
		opts.Format = v
	}
	if v := q.Get("max_depth"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "invalid max_depth: %q", v)
		}
		opts.MaxDepth = n
	}
	return opts, nil
}

// boolParam sets *dst from query parameter name when present.
func boolParam(q url.Values, name string, dst *bool) error {
	v := q.Get(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", name, v)
	}
	*dst = b
	return nil
}

// parseIndent accepts "tab" or a number of spaces.
func parseIndent(v string) (string, error) {
	if v == "tab" {
		return "\t", nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 16 {
		return "", errors.New(errors.ErrCodeInvalidInput, "invalid indent: %q (want tab or 1-16)", v)
	}
	return strings.Repeat(" ", n), nil
}

func (s *server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = errors.UserMessage(err)
	resp.Error.RequestID = r.Header.Get(requestIDHeader)

	logger := loggerFromContext(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		resp.Error.Message = "internal error"
	} else if errors.IsRenderError(err) {
		logger.Warn("tree not renderable", "code", code, "error", err)
	} else {
		logger.Debug("request rejected", "code", code, "error", err)
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}
