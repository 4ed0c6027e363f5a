package processor

import (
	"context"
	"log"
	"time"
)

// Reaper deletes result image blobs past their retention window. Order rows
// and source images are kept; only the heavy result blobs expire.
type Reaper struct {
	store  OrderStore
	period time.Duration
	ttl    time.Duration
}

func NewReaper(store OrderStore, period, ttl time.Duration) *Reaper {
	return &Reaper{
		store:  store,
		period: period,
		ttl:    ttl,
	}
}

// Start blocks until ctx is cancelled, sweeping once per period.
func (r *Reaper) Start(ctx context.Context) {
	log.Printf("Result image reaper started (period %s, retention %s)", r.period, r.ttl)

	r.sweep()

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Result image reaper stopped")
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

func (r *Reaper) sweep() {
	cutoff := time.Now().Add(-r.ttl)
	deleted, err := r.store.DeleteResultImagesBefore(cutoff)
	if err != nil {
		log.Printf("Reaper sweep failed: %v", err)
		return
	}
	if deleted > 0 {
		log.Printf("Reaper deleted %d expired result images", deleted)
	}
}
