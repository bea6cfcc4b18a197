package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-panel/internal/config"
	"github.com/MKhiriev/go-panel/internal/logger"
	"github.com/MKhiriev/go-panel/migrations"
)

const (
	maxTxAttempts = 3
	txRetryDelay  = 50 * time.Millisecond
)

// DB wraps a *sql.DB with the driver-specific pieces the repositories need:
// a squirrel statement builder with the right placeholder format and an
// error classifier for transaction retries.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens and pings a connection for cfg.Driver. An empty driver means
// pgx. SQLite connections always enforce foreign keys.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres, "":
		return open(ctx, config.DriverPostgres, cfg.DSN, cfg, NewPostgresErrorClassifier(), log)
	case config.DriverSQLite:
		return open(ctx, config.DriverSQLite, sqliteDSN(cfg.DSN), cfg, NewSQLiteErrorClassifier(), log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func open(ctx context.Context, driver, dsn string, cfg config.DB, classifier ErrorClassificator, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("func", "store.open").Str("driver", driver).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}

	if cfg.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(cfg.MaxOpenConns)
		conn.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "store.open").Str("driver", driver).Msg("database is unreachable")
		_ = conn.Close()
		return nil, fmt.Errorf("error reaching %s database: %w", driver, err)
	}
	log.Info().Str("driver", driver).Msg("connected to database")

	return newDB(conn, driver, classifier, log), nil
}

func newDB(conn *sql.DB, driver string, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		driver:             driver,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Migrate applies the embedded migrations of the connection's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Driver returns the database/sql driver name of the connection.
func (db *DB) Driver() string {
	return db.driver
}

// inTx runs fn inside a transaction. A failure the classifier reports as
// [Retryable] reruns the whole transaction up to maxTxAttempts times.
func (db *DB) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = db.runTx(ctx, fn)
		if err == nil || db.classify(err) != Retryable || attempt == maxTxAttempts {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Str("func", "*DB.inTx").Msg("retrying transaction")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * txRetryDelay):
		}
	}

	return err
}

func (db *DB) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}

	return db.errorClassificator.Classify(err)
}

// errorCode returns the PostgreSQL error code of err. SQLite constraint
// failures are translated to their PostgreSQL equivalents so repositories
// can map both drivers with one switch.
func errorCode(err error) string {
	if code := postgresError(err); code != "" {
		return code
	}

	return sqliteError(err)
}
