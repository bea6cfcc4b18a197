package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/models"
)

// serverRepository is the SQL-backed implementation of [ServerRepository].
type serverRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewServerRepository(db *DB, logger *logger.Logger) ServerRepository {
	logger.Debug().Msg("creating server repository")
	return &serverRepository{
		db:     db,
		logger: logger,
	}
}

// CreateServer inserts server and its variable values atomically.
//
// Error handling:
//   - foreign key violation on egg_id → [ErrEggNotFound].
//   - foreign key violation on a variable id → [ErrUnknownVariable].
func (r *serverRepository) CreateServer(ctx context.Context, server models.Server, values map[int64]string) (models.Server, error) {
	log := logger.FromContext(ctx)

	created := server
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		created = server

		query, args, err := buildInsertServerQuery(r.db.builder, server)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt); err != nil {
			if errorCode(err) == pgerrcode.ForeignKeyViolation {
				return ErrEggNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(values) == 0 {
			return nil
		}

		query, args, err = buildUpsertServerVariablesQuery(r.db.builder, created.ID, values)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if errorCode(err) == pgerrcode.ForeignKeyViolation {
				return ErrUnknownVariable
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*serverRepository.CreateServer").Int64("egg_id", server.EggID).Msg("error creating server")
		return models.Server{}, err
	}

	created.Variables = make([]models.ServerVariable, 0, len(values))
	for _, variableID := range sortedVariableIDs(values) {
		created.Variables = append(created.Variables, models.ServerVariable{
			ServerID:      created.ID,
			VariableID:    variableID,
			VariableValue: values[variableID],
		})
	}

	return created, nil
}

// FindServerByID returns the server with serverID or [ErrServerNotFound].
func (r *serverRepository) FindServerByID(ctx context.Context, serverID int64) (models.Server, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindServerQuery(r.db.builder, serverID)
	if err != nil {
		log.Err(err).Str("func", "*serverRepository.FindServerByID").Msg("error building query")
		return models.Server{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var server models.Server
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&server.ID, &server.UUID, &server.Name, &server.EggID, &server.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Server{}, ErrServerNotFound
	case err != nil:
		log.Err(err).Str("func", "*serverRepository.FindServerByID").Int64("server_id", serverID).Msg("error scanning server")
		return models.Server{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return server, nil
}
