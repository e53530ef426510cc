package health

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/taltal7719-art/4muluk-cloud-bot/pkg/config"
)

// Server is the liveness probe endpoint. Any path and method answers
// 200 OK with a fixed body. It shares no state with the bot and carries
// no per-request logging, so automated probing cannot flood the logs.
type Server struct {
	cfg        *config.HealthConfig
	logger     *logrus.Entry
	httpServer *http.Server
}

// NewServer creates the health server.
func NewServer(cfg *config.HealthConfig, addr string, logger *logrus.Entry) *Server {
	router := mux.NewRouter()
	router.PathPrefix("/").HandlerFunc(handleProbe)

	return &Server{
		cfg:    cfg,
		logger: logger,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Start runs the server. Blocks until shutdown; http.ErrServerClosed is
// returned on a clean Stop.
func (s *Server) Start() error {
	s.logger.WithField("address", s.httpServer.Addr).Info("Health server started")
	return s.httpServer.ListenAndServe()
}

// Stop gracefully stops the server.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping health server")
	return s.httpServer.Shutdown(ctx)
}

func handleProbe(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
