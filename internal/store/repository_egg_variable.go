package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/models"
)

// eggVariableRepository is the SQL-backed implementation of
// [EggVariableRepository] over the "egg_variables" table.
type eggVariableRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewEggVariableRepository(db *DB, logger *logger.Logger) EggVariableRepository {
	logger.Debug().Msg("creating egg variable repository")
	return &eggVariableRepository{
		db:     db,
		logger: logger,
	}
}

// FindByEgg returns every variable declared by eggID in id order.
func (r *eggVariableRepository) FindByEgg(ctx context.Context, eggID int64) ([]models.EggVariable, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindEggVariablesQuery(r.db.builder, eggID)
	if err != nil {
		log.Err(err).Str("func", "*eggVariableRepository.FindByEgg").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*eggVariableRepository.FindByEgg").Int64("egg_id", eggID).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	variables := make([]models.EggVariable, 0)
	for rows.Next() {
		var v models.EggVariable
		if err := rows.Scan(
			&v.ID,
			&v.EggID,
			&v.Name,
			&v.Description,
			&v.EnvVariable,
			&v.DefaultValue,
			&v.UserViewable,
			&v.UserEditable,
			&v.Rules,
			&v.CreatedAt,
			&v.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "*eggVariableRepository.FindByEgg").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		variables = append(variables, v)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*eggVariableRepository.FindByEgg").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return variables, nil
}
