package store

import (
	"context"
	"fmt"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

// Storages bundles the persistence collaborators of the auth engine.
type Storages struct {
	AccountRepository AccountRepository
	OTPLedger         OTPLedger

	db *DB
}

// NewStorages connects to the account database, applies migrations and
// creates an empty OTP ledger.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to account database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating account database: %w", err)
	}
	log.Info().Str("dialect", db.dialect).Msg("account database migrated")

	return &Storages{
		AccountRepository: NewAccountRepository(db, log),
		OTPLedger:         NewOTPLedger(cfg.App.OTPTTL),
		db:                db,
	}, nil
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}
