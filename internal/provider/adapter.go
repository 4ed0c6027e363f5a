package provider

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Adapter runs one generation request against the primary backend and,
// if the primary exhausts its attempts, against the secondary. Retries
// use exponential backoff; a fatal failure stops retrying immediately.
type Adapter struct {
	primary   Generator
	secondary Generator // nil when no fallback is configured
	attempts  int
	baseWait  time.Duration
}

func NewAdapter(primary, secondary Generator, attempts int, baseWait time.Duration) *Adapter {
	if attempts < 1 {
		attempts = 1
	}
	return &Adapter{
		primary:   primary,
		secondary: secondary,
		attempts:  attempts,
		baseWait:  baseWait,
	}
}

// Generate returns the first successful result. The error is terminal for
// this image: every configured backend has been exhausted.
func (a *Adapter) Generate(ctx context.Context, req Request) (*Result, error) {
	result, primaryErr := a.generateWithRetry(ctx, a.primary, req)
	if primaryErr == nil {
		return result, nil
	}

	if a.secondary == nil {
		return nil, fmt.Errorf("%s backend exhausted: %w", a.primary.Name(), primaryErr)
	}

	log.Printf("Backend %s exhausted, falling back to %s: %v", a.primary.Name(), a.secondary.Name(), primaryErr)

	result, secondaryErr := a.generateWithRetry(ctx, a.secondary, req)
	if secondaryErr == nil {
		return result, nil
	}

	return nil, fmt.Errorf("all backends exhausted (%s: %v; %s: %w)",
		a.primary.Name(), primaryErr, a.secondary.Name(), secondaryErr)
}

func (a *Adapter) generateWithRetry(ctx context.Context, gen Generator, req Request) (*Result, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = a.baseWait
	policy.MaxElapsedTime = 0

	var result *Result
	attempt := 0

	operation := func() error {
		attempt++
		res, err := gen.Generate(ctx, req)
		if err == nil {
			result = res
			return nil
		}

		class := ClassOf(err)
		log.Printf("Generation attempt %d/%d on %s failed (%s): %v",
			attempt, a.attempts, gen.Name(), class, err)

		if class == FailureFatal {
			return backoff.Permanent(err)
		}
		return err
	}

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(a.attempts-1)), ctx))
	if err != nil {
		return nil, err
	}
	return result, nil
}
