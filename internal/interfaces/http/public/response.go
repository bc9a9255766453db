package public

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// writeJSON serializes payload to JSON with status and logs on failure.
func writeJSON(logger zerolog.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("fallo al codificar la respuesta JSON")
	}
}
