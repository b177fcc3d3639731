package httputil

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

// Timeouts applied to every server started through HTTPServer.
// WriteTimeout is left generous: a faucet request blocks until the dispense tx is mined.
type Timeouts struct {
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
}

var DefaultTimeouts = Timeouts{
	ReadTimeout:       30 * time.Second,
	ReadHeaderTimeout: 30 * time.Second,
	WriteTimeout:      5 * time.Minute,
	IdleTimeout:       120 * time.Second,
}

// HTTPServer wraps a http.Server, exposing the running state and the bound address.
//
// The addr contains both host and port. A 0 port binds to any available port,
// which can be retrieved with HTTPServer.Addr or HTTPServer.HTTPEndpoint once started.
type HTTPServer struct {
	// mu guards bringing the server online/offline and reading its address.
	mu sync.RWMutex

	listenAddr string
	handler    http.Handler
	timeouts   Timeouts

	// nil while offline
	listener net.Listener
	srv      *http.Server

	srvCancel context.CancelFunc
}

type Option func(s *HTTPServer)

func WithTimeouts(t Timeouts) Option {
	return func(s *HTTPServer) {
		s.timeouts = t
	}
}

// NewHTTPServer creates an HTTPServer that serves the given handler.
// The server is inactive and has to be started explicitly.
func NewHTTPServer(addr string, handler http.Handler, opts ...Option) *HTTPServer {
	s := &HTTPServer{
		listenAddr: addr,
		handler:    handler,
		timeouts:   DefaultTimeouts,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func StartHTTPServer(addr string, handler http.Handler, opts ...Option) (*HTTPServer, error) {
	out := NewHTTPServer(addr, handler, opts...)
	return out, out.Start()
}

// Start binds the listener and checks that the server comes online.
func (s *HTTPServer) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv != nil {
		return errors.New("already have existing server")
	}

	srvCtx, srvCancel := context.WithCancel(context.Background())
	srv := &http.Server{
		Handler:           s.handler,
		ReadTimeout:       s.timeouts.ReadTimeout,
		ReadHeaderTimeout: s.timeouts.ReadHeaderTimeout,
		WriteTimeout:      s.timeouts.WriteTimeout,
		IdleTimeout:       s.timeouts.IdleTimeout,
		BaseContext: func(listener net.Listener) context.Context {
			return srvCtx
		},
	}

	listener, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		srvCancel()
		return fmt.Errorf("failed to bind to address %q: %w", s.listenAddr, err)
	}
	s.listener = listener
	s.srv = srv
	s.srvCancel = srvCancel

	// cap of 1, to not block on non-immediate shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(listener)
	}()

	standupTimer := time.NewTimer(10 * time.Millisecond)
	defer standupTimer.Stop()

	select {
	case err := <-errCh:
		s.cleanup()
		return fmt.Errorf("http server failed: %w", err)
	case <-standupTimer.C:
		return nil
	}
}

func (s *HTTPServer) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.srv == nil
}

// Stop gracefully shuts down the server, and force-closes it if ctx is cancelled first.
func (s *HTTPServer) Stop(ctx context.Context) error {
	if err := s.Shutdown(ctx); err != nil {
		if errors.Is(err, ctx.Err()) {
			return s.Close()
		}
		return err
	}
	return nil
}

func (s *HTTPServer) cleanup() {
	s.srv = nil
	s.listener = nil
	s.srvCancel = nil
}

// Shutdown closes the listener and waits for active connections to finish.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return nil
	}
	s.srvCancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	s.cleanup()
	return nil
}

// Close force-closes the listener and all active connections.
func (s *HTTPServer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.srv == nil {
		return nil
	}
	s.srvCancel()
	if err := s.srv.Close(); err != nil {
		return err
	}
	s.cleanup()
	return nil
}

// Addr returns the bound address, or nil if the server is offline.
func (s *HTTPServer) Addr() net.Addr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// HTTPEndpoint returns the http endpoint the server is serving,
// or an empty string if the server is offline.
func (s *HTTPServer) HTTPEndpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.listener == nil {
		return ""
	}
	return "http://" + s.listener.Addr().String()
}
