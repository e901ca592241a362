package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oshokin/suno-cli/internal/logger"
	suno_service "github.com/oshokin/suno-cli/internal/service/suno"
)

// Handlers serve the REST API routes.
type Handlers struct {
	// service performs the song operations.
	service suno_service.Service
	// cache holds ready songs, nil when disabled.
	cache *SongCache
}

// CreditsResponse is the body of GET /v1/credits.
type CreditsResponse struct {
	// TotalCreditsLeft is the number of credits that can still be spent.
	TotalCreditsLeft int `json:"total_credits_left"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Error is the error message.
	Error string `json:"error"`
}

// maxRequestBodySize bounds the POST /v1/songs body.
const maxRequestBodySize = 1 << 20

// NewHandlers creates the route handlers.
func NewHandlers(service suno_service.Service, cache *SongCache) *Handlers {
	return &Handlers{
		service: service,
		cache:   cache,
	}
}

// GenerateSongs handles POST /v1/songs. It blocks until the songs are ready.
func (h *Handlers) GenerateSongs(w http.ResponseWriter, r *http.Request) {
	var params suno_service.GenerateParams

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&params); err != nil {
		writeError(w, r, http.StatusBadRequest, err)

		return
	}

	songs, err := h.service.GenerateSongs(r.Context(), &params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, suno_service.ErrEmptyPrompt) {
			status = http.StatusBadRequest
		}

		writeError(w, r, status, err)

		return
	}

	h.cache.AddReady(songs...)

	writeJSON(w, r, http.StatusOK, songs)
}

// ListSongs handles GET /v1/songs.
func (h *Handlers) ListSongs(w http.ResponseWriter, r *http.Request) {
	songs, err := h.service.ListSongs(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, r, http.StatusOK, songs)
}

// GetSong handles GET /v1/song/{id}. Only ready songs are served from the cache when it is enabled.
func (h *Handlers) GetSong(w http.ResponseWriter, r *http.Request) {
	songID, err := suno_service.ExtractSongID(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)

		return
	}

	if song, ok := h.cache.Get(songID); ok {
		writeJSON(w, r, http.StatusOK, song)

		return
	}

	song, err := h.service.GetSong(r.Context(), songID)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)

		return
	}

	h.cache.AddReady(song)

	writeJSON(w, r, http.StatusOK, song)
}

// GetCredits handles GET /v1/credits.
func (h *Handlers) GetCredits(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.GetCredits(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)

		return
	}

	writeJSON(w, r, http.StatusOK, &CreditsResponse{TotalCreditsLeft: info.TotalCreditsLeft})
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Errorf(r.Context(), "Failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	logger.Errorf(r.Context(), "%s %s failed: %v", r.Method, r.URL.Path, err)

	writeJSON(w, r, status, &ErrorResponse{Error: err.Error()})
}
