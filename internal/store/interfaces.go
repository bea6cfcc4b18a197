package store

import (
	"context"

	"github.com/MKhiriev/go-panel/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EggRepository stores eggs together with their variable definitions.
type EggRepository interface {
	CreateEgg(ctx context.Context, egg models.Egg) (models.Egg, error)
}

// EggVariableRepository loads the variable definitions declared by an egg.
type EggVariableRepository interface {
	// FindByEgg returns the variables of eggID ordered by id. An unknown egg
	// yields an empty slice and no error.
	FindByEgg(ctx context.Context, eggID int64) ([]models.EggVariable, error)
}

// ServerRepository stores server instances.
type ServerRepository interface {
	// CreateServer inserts server and the given variable values (keyed by
	// egg variable id) in one transaction.
	CreateServer(ctx context.Context, server models.Server, values map[int64]string) (models.Server, error)
	FindServerByID(ctx context.Context, serverID int64) (models.Server, error)
}

// ServerVariableRepository stores the per-server values of egg variables.
type ServerVariableRepository interface {
	// SaveServerVariables inserts or updates the values keyed by egg
	// variable id.
	SaveServerVariables(ctx context.Context, serverID int64, values map[int64]string) error
	FindServerVariables(ctx context.Context, serverID int64) ([]models.ServerVariable, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
