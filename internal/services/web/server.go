package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/lycee-saint-jean/site/internal/platform/timeouts"
	"github.com/lycee-saint-jean/site/internal/services/web/routepath"
	"github.com/lycee-saint-jean/site/internal/services/web/static"
	webhttp "github.com/lycee-saint-jean/site/internal/services/web/transport/http"
	"github.com/lycee-saint-jean/site/internal/services/web/transport/httpmux"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/lycee-saint-jean/site/internal/services/web"

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr string
	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider
}

// Server hosts the landing site over HTTP.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

type handler struct {
	tracer trace.Tracer
}

// NewHandler returns the root HTTP handler for the site.
func NewHandler(config Config) http.Handler {
	tp := config.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	h := &handler{tracer: tp.Tracer(tracerName)}

	mux := http.NewServeMux()
	httpmux.MountStatic(mux, static.FS, webhttp.WithStaticMime)
	mux.HandleFunc(routepath.Root, h.handleHome)
	return mux
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           NewHandler(config),
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe binds the configured address and serves until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	listener, err := net.Listen("tcp", s.httpAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.httpAddr, err)
	}
	return s.Serve(ctx, listener)
}

// Serve runs the HTTP server on listener until the context ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}
	if listener == nil {
		return errors.New("listener is required")
	}

	serveErr := make(chan error, 1)
	log.Printf("web listening on %s", listener.Addr())
	go func() {
		serveErr <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close stops the HTTP server immediately.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		log.Printf("close http server: %v", err)
	}
}
