// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-register-form/internal/logger"
	"github.com/MKhiriev/go-register-form/internal/store"
)

// CookieSweeper deletes expired cookies from the SQL jar on a fixed
// interval. Reads already skip expired rows; sweeping only keeps the table
// small.
type CookieSweeper struct {
	store    store.CookieStore
	interval time.Duration
	now      func() time.Time
	logger   *logger.Logger
}

var _ Worker = (*CookieSweeper)(nil)

func NewCookieSweeper(store store.CookieStore, interval time.Duration, logger *logger.Logger) *CookieSweeper {
	return &CookieSweeper{
		store:    store,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Run sweeps once right away and then on every tick until ctx is done.
// Sweep errors are logged and do not stop the worker.
func (s *CookieSweeper) Run(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info().Msg("cookie sweeper disabled")
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.sweep(ctx)
		if ctx.Err() != nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (s *CookieSweeper) sweep(ctx context.Context) {
	n, err := s.store.DeleteExpired(ctx, s.now())
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Msg("error sweeping expired cookies")
		}
		return
	}
	if n > 0 {
		s.logger.Debug().Int64("deleted", n).Msg("expired cookies swept")
	}
}
