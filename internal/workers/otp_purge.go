// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
)

// OTPPurgeWorker sweeps expired OTP challenges on a fixed interval.
type OTPPurgeWorker struct {
	ledger   ExpiredPurger
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewOTPPurgeWorker(ledger ExpiredPurger, interval time.Duration, log *logger.Logger) *OTPPurgeWorker {
	return &OTPPurgeWorker{
		ledger:   ledger,
		interval: interval,
		now:      time.Now,
		logger:   log,
	}
}

func (w *OTPPurgeWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info().Dur("interval", w.interval).Msg("otp purge worker started")

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("otp purge worker stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *OTPPurgeWorker) sweep() {
	if purged := w.ledger.PurgeExpired(w.now()); purged > 0 {
		w.logger.Debug().Int("purged", purged).Msg("expired otp challenges purged")
	}
}
