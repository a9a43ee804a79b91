// Package gateway serves the local HTTP/WebSocket API the web UI talks to.
// Handlers are a thin shell: every action goes through the dashboard
// controller; nothing here touches persistence or the remote capability
// directly.
package gateway

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

type Server struct {
	httpServer *http.Server
	logger     *zap.Logger
}

func New(port string, handler http.Handler, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		httpServer: &http.Server{Addr: port, Handler: handler},
		logger:     logger,
	}
}

func (s *Server) Start() error {
	s.logger.Info("starting gateway", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
