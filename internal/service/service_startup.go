// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/internal/store"
	"github.com/MKhiriev/go-panel/internal/utils"
	"github.com/MKhiriev/go-panel/internal/validators"
	"github.com/MKhiriev/go-panel/models"
)

type startupService struct {
	variableValidator VariableValidator

	eggVariableRepository    store.EggVariableRepository
	serverRepository         store.ServerRepository
	serverVariableRepository store.ServerVariableRepository

	uuidGenerator UUIDGenerator

	logger *logger.Logger
}

func NewStartupService(
	variableValidator VariableValidator,
	storages *store.Storages,
	uuidGenerator UUIDGenerator,
	logger *logger.Logger,
) StartupService {
	return &startupService{
		variableValidator:        variableValidator,
		eggVariableRepository:    storages.EggVariableRepository,
		serverRepository:         storages.ServerRepository,
		serverVariableRepository: storages.ServerVariableRepository,
		uuidGenerator:            uuidGenerator,
		logger:                   logger,
	}
}

func (s *startupService) ValidateVariables(ctx context.Context, request models.ValidateVariablesRequest) (models.ValidationSet, error) {
	opts := validators.NewVariableOptions().
		WithFields(request.Environment).
		AsAdmin(utils.IsRootAdmin(ctx))

	return s.variableValidator.Validate(ctx, request.EggID, opts)
}

// UpdateStartup stores and returns only the accepted values whose keys were
// submitted. An omitted key leaves the stored value untouched.
func (s *startupService) UpdateStartup(ctx context.Context, request models.UpdateStartupRequest) (models.ValidationSet, error) {
	log := logger.FromContext(ctx)

	server, err := s.serverRepository.FindServerByID(ctx, request.ServerID)
	if err != nil {
		log.Err(err).Int64("server_id", request.ServerID).Msg("server lookup failed")
		return models.NewValidationSet(), fmt.Errorf("server lookup failed: %w", err)
	}

	opts := validators.NewVariableOptions().
		WithFields(request.Environment).
		AsAdmin(utils.IsRootAdmin(ctx))

	set, err := s.variableValidator.Validate(ctx, server.EggID, opts)
	if err != nil {
		return models.NewValidationSet(), err
	}

	submitted := make([]models.ValidationResult, 0, set.Len())
	for _, result := range set.Results() {
		if _, ok := request.Environment[result.Key]; ok {
			submitted = append(submitted, result)
		}
	}
	accepted := models.NewValidationSet(submitted...)

	if accepted.Len() > 0 {
		if err = s.serverVariableRepository.SaveServerVariables(ctx, server.ID, accepted.Values()); err != nil {
			log.Err(err).Int64("server_id", server.ID).Msg("saving server variables failed")
			return models.NewValidationSet(), fmt.Errorf("saving server variables failed: %w", err)
		}
	}

	return accepted, nil
}

func (s *startupService) GetStartup(ctx context.Context, request models.GetStartupRequest) ([]models.StartupVariable, error) {
	log := logger.FromContext(ctx)

	server, err := s.serverRepository.FindServerByID(ctx, request.ServerID)
	if err != nil {
		log.Err(err).Int64("server_id", request.ServerID).Msg("server lookup failed")
		return nil, fmt.Errorf("server lookup failed: %w", err)
	}

	variables, err := s.eggVariableRepository.FindByEgg(ctx, server.EggID)
	if err != nil {
		log.Err(err).Int64("egg_id", server.EggID).Msg("loading egg variables failed")
		return nil, fmt.Errorf("loading egg variables failed: %w", err)
	}

	stored, err := s.serverVariableRepository.FindServerVariables(ctx, server.ID)
	if err != nil {
		log.Err(err).Int64("server_id", server.ID).Msg("loading server variables failed")
		return nil, fmt.Errorf("loading server variables failed: %w", err)
	}

	values := make(map[int64]string, len(stored))
	for _, variable := range stored {
		values[variable.VariableID] = variable.VariableValue
	}

	admin := utils.IsRootAdmin(ctx)
	startup := make([]models.StartupVariable, 0, len(variables))
	for _, variable := range variables {
		if !admin && !variable.UserViewable {
			continue
		}

		value, ok := values[variable.ID]
		if !ok {
			value = variable.DefaultValue
		}

		startup = append(startup, models.StartupVariable{
			ID:           variable.ID,
			Name:         variable.Name,
			Description:  variable.Description,
			EnvVariable:  variable.EnvVariable,
			DefaultValue: variable.DefaultValue,
			ServerValue:  value,
			IsEditable:   admin || variable.UserEditable,
			Rules:        variable.Rules,
		})
	}

	return startup, nil
}

// CreateServer fills keys missing from the environment with the egg's
// default values before the pass, then stores every accepted value.
func (s *startupService) CreateServer(ctx context.Context, request models.CreateServerRequest) (models.Server, error) {
	log := logger.FromContext(ctx)

	variables, err := s.eggVariableRepository.FindByEgg(ctx, request.EggID)
	if err != nil {
		log.Err(err).Int64("egg_id", request.EggID).Msg("loading egg variables failed")
		return models.Server{}, fmt.Errorf("loading egg variables failed: %w", err)
	}

	environment := make(map[string]string, len(variables))
	for _, variable := range variables {
		environment[variable.EnvVariable] = variable.DefaultValue
	}
	for key, value := range request.Environment {
		environment[key] = value
	}

	opts := validators.NewVariableOptions().
		WithFields(environment).
		AsAdmin(true)

	set, err := s.variableValidator.Validate(ctx, request.EggID, opts)
	if err != nil {
		return models.Server{}, err
	}

	server := models.Server{
		UUID:  s.uuidGenerator.Generate(),
		Name:  request.Name,
		EggID: request.EggID,
	}

	created, err := s.serverRepository.CreateServer(ctx, server, set.Values())
	if err != nil {
		log.Err(err).Str("uuid", server.UUID).Msg("server creation failed")
		return models.Server{}, fmt.Errorf("server creation failed: %w", err)
	}

	return created, nil
}
