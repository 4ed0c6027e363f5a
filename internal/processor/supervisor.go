package processor

import (
	"context"
	"log"
	"time"

	"artify-backend/internal/models"
)

// Supervisor periodically sweeps the database for orders that are paid but
// not finished and launches a processing run for each. Because runs are
// resumable and guarded by locks, it is always safe for the supervisor to
// relaunch an order; at worst the run is a no-op.
type Supervisor struct {
	store     OrderStore
	processor *Processor
	period    time.Duration
}

func NewSupervisor(store OrderStore, processor *Processor, period time.Duration) *Supervisor {
	return &Supervisor{
		store:     store,
		processor: processor,
		period:    period,
	}
}

// Start blocks until ctx is cancelled. The first sweep runs immediately so
// orders stranded by a crash are picked up as soon as the service is back.
func (s *Supervisor) Start(ctx context.Context) {
	log.Printf("Supervisor started (period %s)", s.period)

	s.sweep(ctx)

	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Supervisor stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Supervisor) sweep(ctx context.Context) {
	orders, err := s.store.ListOrdersInStatus(models.StatusPaid, models.StatusProcessing)
	if err != nil {
		log.Printf("Supervisor sweep failed: %v", err)
		return
	}

	for _, order := range orders {
		s.processor.Launch(ctx, order.ID)
	}
}
