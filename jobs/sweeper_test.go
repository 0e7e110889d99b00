package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-food-ordering/models"
)

// sweepRecorder implements stores.OrderStore; only DeleteStaleUnpaid matters
// for the sweeper.
type sweepRecorder struct {
	mu      sync.Mutex
	cutoffs []time.Time
	deleted int64
}

func (r *sweepRecorder) DeleteStaleUnpaid(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cutoffs = append(r.cutoffs, cutoff)
	return r.deleted, nil
}

func (r *sweepRecorder) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.cutoffs)
}

func (r *sweepRecorder) Insert(ctx context.Context, order models.Order) (string, error) {
	return "", nil
}
func (r *sweepRecorder) List(ctx context.Context) ([]models.Order, error)        { return nil, nil }
func (r *sweepRecorder) ListByUser(ctx context.Context, _ string) ([]models.Order, error) {
	return nil, nil
}
func (r *sweepRecorder) UpdateStatus(ctx context.Context, _, _ string) error { return nil }
func (r *sweepRecorder) MarkPaid(ctx context.Context, _ string) (*models.Order, error) {
	return nil, nil
}
func (r *sweepRecorder) Delete(ctx context.Context, _ string) error { return nil }

func TestSweepUsesMaxAgeCutoff(t *testing.T) {
	rec := &sweepRecorder{deleted: 3}
	s := &Sweeper{Orders: rec, Interval: time.Minute, MaxAge: time.Hour}

	before := time.Now().Add(-time.Hour)
	s.Sweep(context.Background())
	after := time.Now().Add(-time.Hour)

	require.Equal(t, 1, rec.calls())
	cutoff := rec.cutoffs[0]
	assert.False(t, cutoff.Before(before))
	assert.False(t, cutoff.After(after))
}

func TestRunStopsOnCancel(t *testing.T) {
	rec := &sweepRecorder{}
	s := &Sweeper{Orders: rec, Interval: 5 * time.Millisecond, MaxAge: time.Hour}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop after cancellation")
	}
	assert.GreaterOrEqual(t, rec.calls(), 1)
}
