// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/models"
)

// validateVariables checks submitted values against an egg without storing
// them and answers with the accepted values.
func (h *Handler) validateVariables(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	eggID, err := int64PathParam(r, "eggID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.validateVariables").Send()
		writeError(w, r, err)
		return
	}

	var request models.ValidateVariablesRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.validateVariables").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}
	request.EggID = eggID

	set, err := h.services.StartupService.ValidateVariables(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Data: set.Results()}, http.StatusOK)
}

func (h *Handler) updateStartup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	serverID, err := int64PathParam(r, "serverID")
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateStartup").Send()
		writeError(w, r, err)
		return
	}

	var request models.UpdateStartupRequest
	if err = json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.updateStartup").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}
	request.ServerID = serverID

	set, err := h.services.StartupService.UpdateStartup(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ResultsResponse{Data: set.Results()}, http.StatusOK)
}

// getStartup lists the startup variables of a server.
func (h *Handler) getStartup(w http.ResponseWriter, r *http.Request) {
	serverID, err := int64PathParam(r, "serverID")
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getStartup").Send()
		writeError(w, r, err)
		return
	}

	startup, err := h.services.StartupService.GetStartup(r.Context(), models.GetStartupRequest{ServerID: serverID})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StartupResponse{Data: startup}, http.StatusOK)
}

func (h *Handler) createServer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.CreateServerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.createServer").Msg("Invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	server, err := h.services.StartupService.CreateServer(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, server, http.StatusCreated)
}

func int64PathParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w %s=%q", ErrInvalidPathParam, name, raw)
	}
	return value, nil
}
