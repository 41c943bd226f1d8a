package memory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.uber.org/fx"
)

const sweepInterval = time.Minute

// JanitorParams holds dependencies for the sweeper.
type JanitorParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Store     *ClientStateRepository
	Logger    *slog.Logger
}

// RegisterJanitor periodically sweeps expired client state for the lifetime of the app.
func RegisterJanitor(p JanitorParams) {
	var (
		cancel context.CancelFunc
		wg     sync.WaitGroup
	)

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			var ctx context.Context
			ctx, cancel = context.WithCancel(context.Background())
			wg.Add(1)
			go func() {
				defer wg.Done()
				runJanitor(ctx, p.Store, sweepInterval, p.Logger)
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			if cancel != nil {
				cancel()
			}
			wg.Wait()

			return nil
		},
	})
}

func runJanitor(ctx context.Context, store *ClientStateRepository, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := store.Sweep(); removed > 0 {
				logger.Debug("Swept expired client state", slog.Int("removed", removed))
			}
		}
	}
}
