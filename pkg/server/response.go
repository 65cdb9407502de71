package server

import (
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (b *BreweryServer) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		b.logger.Warn("failed to write response", zap.Error(err))
	}
}

func (b *BreweryServer) writeError(w http.ResponseWriter, status int, message string) {
	b.writeJSON(w, status, errorResponse{Error: message})
}
