package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/models"
)

// serverVariableRepository is the SQL-backed implementation of
// [ServerVariableRepository] over the "server_variables" table.
type serverVariableRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewServerVariableRepository(db *DB, logger *logger.Logger) ServerVariableRepository {
	logger.Debug().Msg("creating server variable repository")
	return &serverVariableRepository{
		db:     db,
		logger: logger,
	}
}

// SaveServerVariables upserts values for serverID. An empty map is a no-op.
func (r *serverVariableRepository) SaveServerVariables(ctx context.Context, serverID int64, values map[int64]string) error {
	if len(values) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildUpsertServerVariablesQuery(r.db.builder, serverID, values)
	if err != nil {
		log.Err(err).Str("func", "*serverVariableRepository.SaveServerVariables").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*serverVariableRepository.SaveServerVariables").Int64("server_id", serverID).Msg("error saving server variables")
		if errorCode(err) == pgerrcode.ForeignKeyViolation {
			return ErrUnknownVariable
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindServerVariables returns the stored values of serverID ordered by
// variable id.
func (r *serverVariableRepository) FindServerVariables(ctx context.Context, serverID int64) ([]models.ServerVariable, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindServerVariablesQuery(r.db.builder, serverID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*serverVariableRepository.FindServerVariables").Int64("server_id", serverID).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	variables := make([]models.ServerVariable, 0)
	for rows.Next() {
		var v models.ServerVariable
		if err := rows.Scan(&v.ID, &v.ServerID, &v.VariableID, &v.VariableValue, &v.CreatedAt, &v.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*serverVariableRepository.FindServerVariables").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		variables = append(variables, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return variables, nil
}
