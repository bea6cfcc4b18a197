package http

import (
	"encoding/json"
	"mime"
	"net/http"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/models"
)

// importEgg stores an egg document sent as JSON, or as YAML when the
// request's Content-Type says so.
func (h *Handler) importEgg(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var egg models.Egg
	if isYAML(r.Header.Get("Content-Type")) {
		if err := yaml.NewDecoder(r.Body).Decode(&egg); err != nil {
			log.Err(err).Str("func", "*Handler.importEgg").Msg("Invalid YAML was passed")
			writeError(w, r, ErrInvalidYAML)
			return
		}
	} else if err := json.NewDecoder(r.Body).Decode(&egg); err != nil {
		log.Err(err).Str("func", "*Handler.importEgg").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	created, err := h.services.EggService.ImportEgg(r.Context(), egg)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func isYAML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml", "text/x-yaml":
		return true
	default:
		return false
	}
}
