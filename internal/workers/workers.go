package workers

import (
	"context"
	"sync"

	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/config"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/logger"
	"github.com/NikunjSachdeva/DefiSensei-Bot/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers creates the jobs enabled in cfg. A non-positive OTP purge interval
// leaves expired challenges to the lazy check on verify.
func NewWorkers(storages *store.Storages, cfg config.Workers, log *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.OTPPurgeInterval > 0 {
		w.workers = append(w.workers, NewOTPPurgeWorker(storages.OTPLedger, cfg.OTPPurgeInterval, log))
	}

	log.Info().Int("count", len(w.workers)).Msg("background workers created")
	return w
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
