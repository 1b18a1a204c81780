package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name      string
		err       error
		retryable bool
		unique    bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("x")},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), retryable: true},
		{name: "deadlock wrapped", err: fmt.Errorf("wrap: %w", pgError(pgerrcode.DeadlockDetected)), retryable: true},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), retryable: true},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), retryable: true},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), unique: true},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := NonRetryable
			if tt.retryable {
				want = Retryable
			}
			assert.Equal(t, want, c.Classify(tt.err))
			assert.Equal(t, tt.unique, c.IsUniqueViolation(tt.err))
		})
	}
}

func TestClassifyPgError_Default(t *testing.T) {
	assert.Equal(t, NonRetryable, ClassifyPgError(&pgconn.PgError{Code: "XX000"}))
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	busy := sqlite3.Error{Code: sqlite3.ErrBusy}
	unique := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}
	pk := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}
	notNull := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintNotNull}

	assert.Equal(t, Retryable, c.Classify(busy))
	assert.Equal(t, Retryable, c.Classify(fmt.Errorf("wrap: %w", sqlite3.Error{Code: sqlite3.ErrLocked})))
	assert.Equal(t, NonRetryable, c.Classify(unique))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("x")))

	assert.True(t, c.IsUniqueViolation(unique))
	assert.True(t, c.IsUniqueViolation(pk))
	assert.False(t, c.IsUniqueViolation(notNull))
	assert.False(t, c.IsUniqueViolation(errors.New("x")))
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("PostgreSQL://localhost/db"))
	assert.False(t, isPostgresDSN("defisensei.db"))
	assert.False(t, isPostgresDSN(":memory:"))
}
