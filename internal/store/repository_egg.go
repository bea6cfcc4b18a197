package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/models"
)

// eggRepository is the SQL-backed implementation of [EggRepository].
type eggRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewEggRepository(db *DB, logger *logger.Logger) EggRepository {
	logger.Debug().Msg("creating egg repository")
	return &eggRepository{
		db:     db,
		logger: logger,
	}
}

// CreateEgg inserts egg and all of its variables in a single transaction
// and returns them with the ids and timestamps assigned by the database.
//
// Error handling:
//   - unique violation on the egg name → [ErrEggAlreadyExists].
//   - unique violation on (egg_id, env_variable) → [ErrDuplicateVariable].
func (r *eggRepository) CreateEgg(ctx context.Context, egg models.Egg) (models.Egg, error) {
	log := logger.FromContext(ctx)

	created := egg
	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		created = egg
		created.Variables = make([]models.EggVariable, 0, len(egg.Variables))

		query, args, err := buildInsertEggQuery(r.db.builder, egg)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := tx.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt); err != nil {
			if errorCode(err) == pgerrcode.UniqueViolation {
				return ErrEggAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		for _, variable := range egg.Variables {
			query, args, err := buildInsertEggVariableQuery(r.db.builder, created.ID, variable)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}

			variable.EggID = created.ID
			if err := tx.QueryRowContext(ctx, query, args...).Scan(&variable.ID, &variable.CreatedAt, &variable.UpdatedAt); err != nil {
				if errorCode(err) == pgerrcode.UniqueViolation {
					return fmt.Errorf("%w: %s", ErrDuplicateVariable, variable.EnvVariable)
				}
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			created.Variables = append(created.Variables, variable)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*eggRepository.CreateEgg").Str("egg", egg.Name).Msg("error creating egg")
		return models.Egg{}, err
	}

	return created, nil
}
