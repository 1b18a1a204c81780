package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/migrations"
)

const (
	defaultRetryAttempts = 3
	defaultRetryBackoff  = 50 * time.Millisecond
)

// DB is a database handle shared by the repositories. It knows its goose
// dialect, the placeholder style of its driver and how to classify driver
// errors.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	retryAttempts uint64
	retryBackoff  time.Duration
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classifier ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
		retryAttempts:      defaultRetryAttempts,
		retryBackoff:       defaultRetryBackoff,
	}
}

// NewConnect opens the account database named by cfg.DSN. postgres:// and
// postgresql:// URLs go to PostgreSQL, anything else is a SQLite path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(dsn)
	return strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://")
}

// Migrate applies the embedded schema with the dialect of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs fn, retrying with exponential backoff while the classifier
// reports the error as transient.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(db.retryAttempts, retry.NewExponential(db.retryBackoff))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}

		return err
	})
}

// exec builds q and executes it, returning the number of affected rows.
func (db *DB) exec(ctx context.Context, q sq.Sqlizer) (int64, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = db.withRetry(ctx, func(ctx context.Context) error {
		res, execErr := db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}

		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		return 0, err
	}

	return affected, nil
}

// queryRow builds q and scans its single row with scan. sql.ErrNoRows is
// returned unchanged.
func (db *DB) queryRow(ctx context.Context, q sq.Sqlizer, scan func(*sql.Row) error) error {
	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return db.withRetry(ctx, func(ctx context.Context) error {
		return scan(db.QueryRowContext(ctx, query, args...))
	})
}
