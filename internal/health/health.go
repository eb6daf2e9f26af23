// Package health exposes the uptime-probe endpoint. It serves a fixed body
// and never touches bot state.
package health

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const body = "Bot online"

// Server is the keep-alive HTTP responder used by external uptime probes.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

func NewServer(port int, logger *zap.Logger) *Server {
	router := mux.NewRouter()
	router.HandleFunc("/", Handler).Methods(http.MethodGet)

	return &Server{
		srv: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Handler answers any probe with the fixed online body.
func Handler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(body))
}

// Start serves probes in the background until Shutdown is called.
func (s *Server) Start() {
	go func() {
		s.logger.Info("Keep-alive HTTP server listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Keep-alive HTTP server failed", zap.Error(err))
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
