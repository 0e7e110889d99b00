// Package jobs holds background maintenance tasks.
package jobs

import (
	"context"
	"log"
	"time"

	"go-food-ordering/stores"
)

// Sweeper periodically deletes unpaid card orders that never reached
// verification, bounding the window left behind when checkout-session
// creation fails after the order is already persisted.
type Sweeper struct {
	Orders   stores.OrderStore
	Interval time.Duration
	MaxAge   time.Duration
}

// Run blocks until ctx is cancelled, sweeping once per interval.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep deletes unpaid orders older than MaxAge.
func (s *Sweeper) Sweep(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	deleted, err := s.Orders.DeleteStaleUnpaid(ctx, time.Now().Add(-s.MaxAge))
	if err != nil {
		log.Printf("stale order sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("stale order sweep removed %d unpaid orders", deleted)
	}
}
