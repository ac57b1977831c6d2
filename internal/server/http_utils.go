package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sann404/sannmusic/internal/gateway"
	"github.com/sann404/sannmusic/internal/metadata"
	"github.com/sann404/sannmusic/internal/service/library"
)

// errorResponse is the JSON error body rendered for failed mutations.
// The message is suitable for direct toast display.
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps known service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, library.ErrMissingAudioURL),
		errors.Is(err, library.ErrPlaylistNameEmpty):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, library.ErrPayloadTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, metadata.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, gateway.ErrGatewayNotServing):
		writeError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, gateway.ErrCommandTimeout):
		writeError(w, http.StatusGatewayTimeout, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// decodeJSON reads the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	return decoder.Decode(v)
}
