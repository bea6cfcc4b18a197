package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/logger"
)

// Storages groups the repositories of the application so they can be
// passed to the service layer as one value.
type Storages struct {
	DB *DB

	EggRepository            EggRepository
	EggVariableRepository    EggVariableRepository
	ServerRepository         ServerRepository
	ServerVariableRepository ServerVariableRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository on top of the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		DB:                       db,
		EggRepository:            NewEggRepository(db, logger),
		EggVariableRepository:    NewEggVariableRepository(db, logger),
		ServerRepository:         NewServerRepository(db, logger),
		ServerVariableRepository: NewServerVariableRepository(db, logger),
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.DB.Close()
}
