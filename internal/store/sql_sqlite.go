package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
)

// sqliteDSN turns on foreign key enforcement unless the DSN sets it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}

	return dsn + sep + "_foreign_keys=on"
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3.
// Only lock contention is retryable.
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return NonRetryable
	}

	switch liteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}

// sqliteError translates SQLite constraint failures to PostgreSQL codes.
func sqliteError(err error) string {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return ""
	}

	switch liteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return pgerrcode.UniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return pgerrcode.ForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return pgerrcode.NotNullViolation
	}

	return ""
}
