package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"

	ginhandler "user-directory-service/internal/adapter/gin/handler"
	"user-directory-service/internal/config"

	"go.uber.org/zap"
)

// Server struct holds all server dependencies
type Server struct {
	Config *config.Config
	Logger *zap.Logger
	HTTP   *http.Server

	readyOnce sync.Once
	ready     chan struct{}
	addr      net.Addr
}

// New creates a new server instance
func New(cfg *config.Config, l *zap.Logger, handler *ginhandler.UserHandler) *Server {
	return &Server{
		Config: cfg,
		Logger: l,
		HTTP:   SetupGinServer(handler, cfg.App.ImagesDir, cfg.App.Address(), l),
		ready:  make(chan struct{}),
	}
}

// Start listens on the configured address and serves until Shutdown
func (s *Server) Start() error {
	lc := net.ListenConfig{}
	lis, err := lc.Listen(context.Background(), "tcp", s.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	return s.Serve(lis)
}

// Serve serves HTTP on lis until Shutdown. It returns nil after a clean shutdown.
func (s *Server) Serve(lis net.Listener) error {
	s.readyOnce.Do(func() {
		s.addr = lis.Addr()
		close(s.ready)
	})
	s.logBanner()

	if err := s.HTTP.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Ready is closed once the server has a listener
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address. Only valid after Ready is closed.
func (s *Server) Addr() net.Addr {
	return s.addr
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.HTTP.Shutdown(ctx)
}

// logBanner announces the listening URL and the documented routes
func (s *Server) logBanner() {
	port := s.Config.App.Port
	if tcp, ok := s.addr.(*net.TCPAddr); ok {
		port = fmt.Sprint(tcp.Port)
	}

	s.Logger.Info("server is running", zap.String("url", "http://localhost:"+port))

	descriptions := make(map[string]string, len(ginhandler.Endpoints))
	routes := make([]string, 0, len(ginhandler.Endpoints))
	for desc, route := range ginhandler.Endpoints {
		descriptions[route] = desc
		routes = append(routes, route)
	}
	slices.Sort(routes)

	for _, route := range routes {
		s.Logger.Info("API endpoint", zap.String("route", route), zap.String("description", descriptions[route]))
	}
}
