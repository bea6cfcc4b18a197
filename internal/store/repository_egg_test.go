package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/models"
)

func testEgg() models.Egg {
	return models.Egg{
		Name: "Vanilla Minecraft",
		Variables: []models.EggVariable{
			{Name: "Server Port", EnvVariable: "PORT", UserViewable: true, UserEditable: true, Rules: "required|integer"},
			{Name: "Build", EnvVariable: "BUILD", Rules: "required|string"},
		},
	}
}

func TestCreateEgg_Success(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEggRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO eggs`).
		WithArgs("Vanilla Minecraft", "").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(3, now, now))
	mock.ExpectQuery(`INSERT INTO egg_variables`).
		WithArgs(int64(3), "Server Port", "", "PORT", "", true, true, "required|integer").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(10, now, now))
	mock.ExpectQuery(`INSERT INTO egg_variables`).
		WithArgs(int64(3), "Build", "", "BUILD", "", false, false, "required|string").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(11, now, now))
	mock.ExpectCommit()

	egg, err := repo.CreateEgg(context.Background(), testEgg())
	require.NoError(t, err)

	assert.Equal(t, int64(3), egg.ID)
	require.Len(t, egg.Variables, 2)
	assert.Equal(t, int64(10), egg.Variables[0].ID)
	assert.Equal(t, int64(3), egg.Variables[0].EggID)
	assert.Equal(t, int64(11), egg.Variables[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEgg_NameTaken(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEggRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO eggs`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateEgg(context.Background(), testEgg())
	assert.ErrorIs(t, err, ErrEggAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEgg_DuplicateVariable(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEggRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO eggs`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(3, now, now))
	mock.ExpectQuery(`INSERT INTO egg_variables`).
		WillReturnError(pgError(pgerrcode.UniqueViolation))
	mock.ExpectRollback()

	_, err := repo.CreateEgg(context.Background(), testEgg())
	assert.ErrorIs(t, err, ErrDuplicateVariable)
	assert.Contains(t, err.Error(), "PORT")
}

func TestCreateEgg_BeginError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEggRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

	_, err := repo.CreateEgg(context.Background(), testEgg())
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

// TestCreateEgg_RetriesSerializationFailure verifies that a retryable
// PostgreSQL error reruns the whole transaction.
func TestCreateEgg_RetriesSerializationFailure(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEggRepository(db, logger.Nop())
	now := time.Now()

	egg := models.Egg{Name: "Paper"}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO eggs`).
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO eggs`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(8, now, now))
	mock.ExpectCommit()

	created, err := repo.CreateEgg(context.Background(), egg)
	require.NoError(t, err)
	assert.Equal(t, int64(8), created.ID)
	assert.Empty(t, created.Variables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEgg_CommitError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewEggRepository(db, logger.Nop())
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO eggs`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(8, now, now))
	mock.ExpectCommit().WillReturnError(errors.New("disk full"))

	_, err := repo.CreateEgg(context.Background(), models.Egg{Name: "Paper"})
	assert.ErrorIs(t, err, ErrCommittingTransaction)
}
