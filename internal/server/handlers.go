package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sann404/sannmusic/internal/gateway"
	"github.com/sann404/sannmusic/internal/logger"
	"github.com/sann404/sannmusic/internal/model"
)

// createPlaylistRequest is the body of POST /api/playlists.
type createPlaylistRequest struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

// cacheAudioRequest is the body of POST /control/cache-audio.
type cacheAudioRequest struct {
	URL string `json:"url"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"gateway": s.state().String(),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusOK, []*model.TrackDescriptor{})

		return
	}

	tracks, err := s.client.Search(ctx, query)
	if err != nil {
		logger.Warnf(ctx, "Search for '%s' failed: %v", query, err)
	}

	if tracks == nil {
		tracks = []*model.TrackDescriptor{}
	}

	writeJSON(w, http.StatusOK, tracks)
}

func (s *Server) handleListDownloads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := s.service.ListDownloads(ctx)
	if err != nil {
		logger.Warnf(ctx, "Failed to list downloads: %v", err)
	}

	if records == nil {
		records = []*model.DownloadRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var track model.TrackDescriptor
	if err := decodeJSON(r, &track); err != nil {
		writeError(w, http.StatusBadRequest, "invalid track payload")

		return
	}

	if err := s.service.Download(ctx, &track); err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusCreated, &track)
}

func (s *Server) handleRemoveDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	audioURL := r.URL.Query().Get("url")

	s.service.Remove(r.Context(), id, audioURL)

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var track model.TrackDescriptor
	if err := decodeJSON(r, &track); err != nil {
		writeError(w, http.StatusBadRequest, "invalid track payload")

		return
	}

	liked, err := s.service.ToggleLike(ctx, &track)
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

func (s *Server) handleListLiked(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tracks, err := s.service.ListLiked(ctx)
	if err != nil {
		logger.Warnf(ctx, "Failed to list liked tracks: %v", err)
	}

	if tracks == nil {
		tracks = []*model.TrackDescriptor{}
	}

	writeJSON(w, http.StatusOK, tracks)
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	playlists, err := s.service.ListPlaylists(ctx)
	if err != nil {
		logger.Warnf(ctx, "Failed to list playlists: %v", err)
	}

	if playlists == nil {
		playlists = []*model.Playlist{}
	}

	writeJSON(w, http.StatusOK, playlists)
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request createPlaylistRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid playlist payload")

		return
	}

	playlist, err := s.service.CreatePlaylist(ctx, request.Name, request.Image)
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusCreated, playlist)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlist, err := s.service.GetPlaylist(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, playlist)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	if err := s.service.DeletePlaylist(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddTrackToPlaylist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var track model.TrackDescriptor
	if err := decodeJSON(r, &track); err != nil {
		writeError(w, http.StatusBadRequest, "invalid track payload")

		return
	}

	duplicate, err := s.service.AddTrackToPlaylist(ctx, chi.URLParam(r, "id"), &track)
	if err != nil {
		writeServiceError(w, err)

		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"duplicate": duplicate})
}

func (s *Server) handleCacheAudio(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request cacheAudioRequest
	if err := decodeJSON(r, &request); err != nil || request.URL == "" {
		writeError(w, http.StatusBadRequest, "invalid cache-audio payload")

		return
	}

	ack, err := s.sender.Send(ctx, gateway.Command{
		Type: gateway.CommandTypeCacheAudio,
		URL:  request.URL,
	})
	if err != nil {
		writeServiceError(w, err)

		return
	}

	if !ack.OK {
		writeError(w, http.StatusBadGateway, ack.Error)

		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
