package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

type stripRequest struct {
	Text string `json:"text"`
}

// handleStrip filters the request body and returns the clean text, the
// removal count, and per-block findings. The body is either raw text or a
// JSON object {"text": ...} when Content-Type is application/json.
func (s *Server) handleStrip(w http.ResponseWriter, r *http.Request) {
	requestID := getRequestID(r.Context())
	log := s.logger.WithRequestID(requestID)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.config.Server.MaxBodyBytes))
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			http.Error(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		log.Error("Failed to read request body", zap.Error(err))
		http.Error(w, "Failed to read request", http.StatusInternalServerError)
		return
	}

	text := string(body)
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req stripRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "Invalid JSON body", http.StatusBadRequest)
			return
		}
		text = req.Text
	}

	if !utf8.ValidString(text) {
		http.Error(w, "Body is not valid UTF-8", http.StatusBadRequest)
		return
	}

	result := s.currentStripper().Strip(text)

	if result.Removed > 0 {
		log.Debug("Emoji removed",
			zap.Int("removed", result.Removed),
			zap.Int("blocks_hit", len(result.Findings)),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.Error("Failed to encode response", zap.Error(err))
	}
}
