// Package server exposes the local control API: library operations,
// playlist management and the gateway command bridge.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sann404/sannmusic/internal/client/api"
	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/gateway"
	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/service/library"
)

// shutdownTimeout bounds the graceful shutdown of the HTTP listener.
const shutdownTimeout = 5 * time.Second

// StateFunc reports the current gateway lifecycle state.
type StateFunc func() gateway.State

// Server is the local control API over the library service and the gateway.
type Server struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// service manages the offline library.
	service library.Service
	// client resolves search queries against the origin.
	client api.Client
	// sender posts commands to the gateway.
	sender gateway.Sender
	// state reports the gateway lifecycle state for health checks.
	state StateFunc
}

// NewServer creates a control API server instance with dependency-injected
// components.
func NewServer(
	cfg *config.Config,
	service library.Service,
	client api.Client,
	sender gateway.Sender,
	state StateFunc,
) *Server {
	return &Server{
		cfg:     cfg,
		service: service,
		client:  client,
		sender:  sender,
		state:   state,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() chi.Router {
	router := chi.NewRouter()

	router.Get("/healthz", s.handleHealth)

	router.Route("/api", func(router chi.Router) {
		router.Get("/search", s.handleSearch)

		router.Get("/downloads", s.handleListDownloads)
		router.Post("/downloads", s.handleDownload)
		router.Delete("/downloads/{id}", s.handleRemoveDownload)

		router.Post("/likes", s.handleToggleLike)
		router.Get("/likes", s.handleListLiked)

		router.Get("/playlists", s.handleListPlaylists)
		router.Post("/playlists", s.handleCreatePlaylist)
		router.Get("/playlists/{id}", s.handleGetPlaylist)
		router.Delete("/playlists/{id}", s.handleDeletePlaylist)
		router.Post("/playlists/{id}/tracks", s.handleAddTrackToPlaylist)
	})

	router.Post("/control/cache-audio", s.handleCacheAudio)

	return router
}

// Run serves the control API until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		logger.Infof(ctx, "Control API listening on %s", s.cfg.ListenAddr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
