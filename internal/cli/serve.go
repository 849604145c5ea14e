package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/chartaxis/pkg/axis"
	"github.com/matzehuels/chartaxis/pkg/buildinfo"
	"github.com/matzehuels/chartaxis/pkg/chart"
	"github.com/matzehuels/chartaxis/pkg/errors"
	chartio "github.com/matzehuels/chartaxis/pkg/io"
	"github.com/matzehuels/chartaxis/pkg/observability"
	"github.com/matzehuels/chartaxis/pkg/pipeline"
)

const (
	// requestIDHeader carries the request ID in both directions.
	requestIDHeader = "X-Request-ID"

	// maxBodyBytes caps the size of a chart document sent to the server.
	maxBodyBytes = 1 << 20

	// shutdownTimeout bounds how long in-flight requests may take on exit.
	shutdownTimeout = 10 * time.Second
)

// contentTypes maps export formats to response content types.
var contentTypes = map[string]string{
	chartio.FormatJSON: "application/json",
	chartio.FormatTOML: "application/toml",
	chartio.FormatCSV:  "text/csv",
}

// serveCommand creates the serve command, which exposes the tick calculator
// over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	addr := defaultAddr

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tick calculator over HTTP",
		Long: `Serve the tick calculator over HTTP.

Endpoints:
  POST /v1/ticks   chart document (JSON, or TOML with Content-Type application/toml)
                   query: direction, width, format (json, toml, csv)
  POST /v1/range   {"direction", "min", "max", "logarithmic"}
  GET  /healthz    build information`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", addr, "listen address")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	logger := loggerFromContext(ctx)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newServer(c.newRunner(), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		printInfo("Listening on %s", StyleLink.Render("http://"+addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return ctx.Err()
}

// =============================================================================
// Router
// =============================================================================

// server holds the dependencies of the HTTP handlers.
type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// newServer builds the HTTP handler tree.
func newServer(runner *pipeline.Runner, logger *log.Logger) http.Handler {
	s := &server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/ticks", s.handleTicks)
		r.Post("/range", s.handleRange)
	})
	return r
}

type requestIDKey struct{}

// requestID tags each request with the caller's X-Request-ID or a fresh UUID.
func (s *server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// accessLog logs every request and reports it to the server hooks.
func (s *server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		id := requestIDFrom(ctx)
		hooks := observability.Server()
		hooks.OnRequest(ctx, id, r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		elapsed := time.Since(start)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(ctx, id, r.Method, r.URL.Path, status, elapsed)
		s.logger.Info("request",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed)
	})
}

// =============================================================================
// Handlers
// =============================================================================

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *server) handleTicks(w http.ResponseWriter, r *http.Request) {
	c, err := chart.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), bodyEncoding(r))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Chart:     c,
		Direction: q.Get("direction"),
	}
	if width := q.Get("width"); width != "" {
		ws, err := strconv.ParseFloat(width, 64)
		if err != nil {
			s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "width %q", width))
			return
		}
		opts.WorkingSpace = ws
	}
	format := q.Get("format")
	if format == "" {
		format = chartio.FormatJSON
	}
	opts.Formats = []string{format}

	if err := opts.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, r, err)
		return
	}
	ticks, err := s.runner.Calculate(r.Context(), c, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	artifacts, err := s.runner.Export(r.Context(), ticks, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// rangeRequest is the body of POST /v1/range.
type rangeRequest struct {
	Direction   string  `json:"direction"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	Logarithmic bool    `json:"logarithmic"`
}

// rangeResponse is the reply of POST /v1/range.
type rangeResponse struct {
	Direction axis.Direction `json:"direction"`
	Min       float64        `json:"min"`
	Max       float64        `json:"max"`
}

func (s *server) handleRange(w http.ResponseWriter, r *http.Request) {
	var req rangeRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode range request"))
		return
	}

	dir, err := axis.ParseDirection(req.Direction)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	lo, hi, err := axis.Adjust(dir, req.Min, req.Max, req.Logarithmic)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rangeResponse{Direction: dir, Min: lo, Max: hi})
}

// =============================================================================
// Responses
// =============================================================================

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.IsClientError(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// bodyEncoding picks the chart decoder from the request media type,
// ignoring parameters such as charset. Anything but TOML is read as JSON.
func bodyEncoding(r *http.Request) chart.Encoding {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err == nil && mt == contentTypes[chartio.FormatTOML] {
		return chart.EncodingTOML
	}
	return chart.EncodingJSON
}

func (s *server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", requestIDFrom(r.Context()), "err", err)
	}
	writeJSON(w, status, errorResponse{
		Code:      code,
		Message:   errors.UserMessage(err),
		RequestID: requestIDFrom(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
