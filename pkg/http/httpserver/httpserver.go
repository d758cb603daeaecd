package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"
)

const (
	defaultShutdownTimeout = time.Second * 60
	defaultReadTimeout     = time.Second * 60
	defaultWriteTimeout    = time.Second * 60
)

var ErrNotListening = errors.New("http server: not listening")

type serverConfig struct {
	readTimeout     time.Duration
	writeTimeout    time.Duration
	shutdownTimeout time.Duration
	handler         http.Handler
	readyCallback   func(net.Addr)
}

// Option configures the server. Non-positive timeouts keep the defaults.
type Option func(*serverConfig)

func WithShutdownTimeout(timeout time.Duration) Option {
	return func(c *serverConfig) {
		if timeout > 0 {
			c.shutdownTimeout = timeout
		}
	}
}

func WithReadTimeout(timeout time.Duration) Option {
	return func(c *serverConfig) {
		if timeout > 0 {
			c.readTimeout = timeout
		}
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *serverConfig) {
		if timeout > 0 {
			c.writeTimeout = timeout
		}
	}
}

func WithHandler(handler http.Handler) Option {
	return func(c *serverConfig) {
		c.handler = handler
	}
}

// WithReadySignal registers a callback invoked with the bound address
// once the server is able to accept connections
func WithReadySignal(cb func(net.Addr)) Option {
	return func(c *serverConfig) {
		c.readyCallback = cb
	}
}

type HTTPServer struct {
	addr   *net.TCPAddr
	server *http.Server
	cfg    serverConfig

	mutex    sync.Mutex
	listener net.Listener
	closer   chan struct{}
	stopOnce sync.Once
}

func New(addr string, opts ...Option) (*HTTPServer, error) {
	tcpAddr, err := net.ResolveTCPAddr("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("http server: resolve %s: %w", addr, err)
	}
	cfg := serverConfig{
		readTimeout:     defaultReadTimeout,
		writeTimeout:    defaultWriteTimeout,
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.handler == nil {
		cfg.handler = http.NotFoundHandler()
	}
	svr := &http.Server{
		Addr:              addr,
		Handler:           cfg.handler,
		ReadTimeout:       cfg.readTimeout,
		ReadHeaderTimeout: cfg.readTimeout,
		WriteTimeout:      cfg.writeTimeout,
	}
	return &HTTPServer{
		addr:   tcpAddr,
		server: svr,
		cfg:    cfg,
		closer: make(chan struct{}),
	}, nil
}

// ListenAndServe blocks until the server is stopped or fails.
// A graceful stop is not reported as an error.
func (s *HTTPServer) ListenAndServe() error {
	listener, err := net.ListenTCP("tcp", s.addr)
	if err != nil {
		return err
	}
	defer listener.Close() // nolint: errcheck

	s.mutex.Lock()
	s.listener = listener
	s.mutex.Unlock()

	if s.cfg.readyCallback != nil {
		s.cfg.readyCallback(listener.Addr())
	}

	fatal := make(chan error, 1)
	go func() {
		fatal <- s.server.Serve(listener)
	}()

	select {
	case serveErr := <-fatal:
		if errors.Is(serveErr, http.ErrServerClosed) {
			return nil
		}
		return serveErr
	case <-s.closer:
		return nil
	}
}

func (s *HTTPServer) ListenAddr() (net.Addr, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.listener == nil {
		return nil, ErrNotListening
	}
	return s.listener.Addr(), nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.stopOnce.Do(func() {
		close(s.closer)
	})
	stopCtx, cancel := context.WithTimeout(ctx, s.cfg.shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(stopCtx); err != nil {
		return fmt.Errorf("http server: shutdown %s: %w", s.addr, err)
	}
	return nil
}
