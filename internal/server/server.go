// Package server exposes the dispatcher over a small JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhinav4568482/pyterminal/internal/core/logging"
	"github.com/abhinav4568482/pyterminal/internal/core/session"
	"github.com/abhinav4568482/pyterminal/internal/dispatch"
)

// DefaultMaxBodyBytes caps /execute request bodies when Options leaves it unset.
const DefaultMaxBodyBytes = 64 << 10

// Options configures a Server.
type Options struct {
	Addr         string
	MaxBodyBytes int64
	// Pprof mounts the runtime profiling endpoints under /debug/pprof/.
	Pprof bool
}

// Server serves /execute and /history for cookie-identified sessions.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	dispatcher *dispatch.Dispatcher
	sessions   *session.Manager
	maxBody    int64
	pprof      bool
	log        zerolog.Logger

	done     chan struct{}
	serveErr error
}

// New creates a server. It does not listen until Start is called.
func New(d *dispatch.Dispatcher, sessions *session.Manager, opts Options) *Server {
	s := &Server{
		dispatcher: d,
		sessions:   sessions,
		maxBody:    opts.MaxBodyBytes,
		pprof:      opts.Pprof,
		log:        logging.Component("server"),
		done:       make(chan struct{}),
	}
	if s.maxBody <= 0 {
		s.maxBody = DefaultMaxBodyBytes
	}

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the API routes wrapped in request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /execute", s.handleExecute)
	mux.HandleFunc("GET /history", s.handleHistory)

	if s.pprof {
		mux.HandleFunc("/debug/pprof/", pprof.Index)
		mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
		mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
		mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
		mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	}
	return s.logRequests(mux)
}

// Start listens on the configured address and serves in the background. It
// returns once the listener is up or serving fails immediately.
func (s *Server) Start(ctx context.Context) error {
	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	s.listener = listener

	s.log.Info().Str("addr", listener.Addr().String()).Msg("starting server")

	go func() {
		defer close(s.done)
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.serveErr = err
		}
	}()

	select {
	case <-s.done:
		return fmt.Errorf("server failed to start: %w", s.serveErr)
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

// Wait blocks until the server stops and returns the serve error, if any.
func (s *Server) Wait() error {
	<-s.done
	return s.serveErr
}

// Addr returns the bound listen address, or "" before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// statusRecorder captures the response code for request logs.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}
