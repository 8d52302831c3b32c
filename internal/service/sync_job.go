// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CiviBridge Authors

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/civibridge/mattersync/internal/logger"
	"github.com/civibridge/mattersync/models"
)

// syncJob fires one batch tick per direction on a fixed interval.
type syncJob struct {
	svc    SyncService
	logger *logger.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running bool
}

// NewSyncJob constructs a [SyncJob] driving the given service.
func NewSyncJob(svc SyncService, logger *logger.Logger) SyncJob {
	logger.Debug().Msg("creating sync job")
	return &syncJob{
		svc:    svc,
		logger: logger,
	}
}

func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		j.logger.Info().Msg("scheduled sync disabled, no interval configured")
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	if j.running {
		return
	}

	ctx, j.cancel = context.WithCancel(ctx)
	j.running = true

	j.wg.Add(1)
	go j.run(ctx, interval)

	j.logger.Info().Dur("interval", interval).Msg("scheduled sync started")
}

func (j *syncJob) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.cancel()
	j.running = false
	j.mu.Unlock()

	j.wg.Wait()
	j.logger.Info().Msg("scheduled sync stopped")
}

func (j *syncJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.tickAll(ctx)
		}
	}
}

func (j *syncJob) tickAll(ctx context.Context) {
	for _, direction := range []models.Direction{models.DirectionToChat, models.DirectionToCRM} {
		result, err := j.svc.Tick(ctx, direction, true)
		switch {
		case errors.Is(err, ErrTickInProgress):
			j.logger.Debug().Str("direction", string(direction)).Msg("tick already running, skipping")
		case err != nil:
			j.logger.Error().Err(err).Str("direction", string(direction)).Msg("scheduled tick failed")
		default:
			j.logger.Info().
				Str("direction", string(direction)).
				Str("phase", result.Phase.String()).
				Int("processed", result.Processed).
				Bool("finished", result.Finished).
				Msg("scheduled tick done")
		}
	}
}
