package provider_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artify-backend/internal/provider"
)

type scriptedGenerator struct {
	name  string
	errs  []error
	calls int
}

func (g *scriptedGenerator) Name() string { return g.name }

func (g *scriptedGenerator) Generate(ctx context.Context, req provider.Request) (*provider.Result, error) {
	idx := g.calls
	g.calls++
	if idx < len(g.errs) && g.errs[idx] != nil {
		return nil, g.errs[idx]
	}
	return &provider.Result{Data: []byte(g.name), ContentType: "image/jpeg"}, nil
}

func transientErr(backend string) error {
	return &provider.Error{Backend: backend, Class: provider.FailureTransient, Err: errors.New("upstream 500")}
}

func fatalErr(backend string) error {
	return &provider.Error{Backend: backend, Class: provider.FailureFatal, Err: errors.New("moderation rejected")}
}

func TestAdapter_FirstAttemptSucceeds(t *testing.T) {
	primary := &scriptedGenerator{name: "primary"}
	adapter := provider.NewAdapter(primary, nil, 3, time.Millisecond)

	result, err := adapter.Generate(context.Background(), provider.Request{})

	require.NoError(t, err)
	assert.Equal(t, []byte("primary"), result.Data)
	assert.Equal(t, 1, primary.calls)
}

func TestAdapter_RetriesTransientFailures(t *testing.T) {
	primary := &scriptedGenerator{
		name: "primary",
		errs: []error{transientErr("primary"), transientErr("primary"), nil},
	}
	adapter := provider.NewAdapter(primary, nil, 3, time.Millisecond)

	result, err := adapter.Generate(context.Background(), provider.Request{})

	require.NoError(t, err)
	assert.Equal(t, []byte("primary"), result.Data)
	assert.Equal(t, 3, primary.calls)
}

func TestAdapter_FatalStopsRetrying(t *testing.T) {
	primary := &scriptedGenerator{
		name: "primary",
		errs: []error{fatalErr("primary"), nil, nil},
	}
	adapter := provider.NewAdapter(primary, nil, 3, time.Millisecond)

	_, err := adapter.Generate(context.Background(), provider.Request{})

	require.Error(t, err)
	assert.Equal(t, 1, primary.calls)
}

func TestAdapter_FallsBackToSecondary(t *testing.T) {
	primary := &scriptedGenerator{
		name: "primary",
		errs: []error{transientErr("primary"), transientErr("primary"), transientErr("primary")},
	}
	secondary := &scriptedGenerator{name: "secondary"}
	adapter := provider.NewAdapter(primary, secondary, 3, time.Millisecond)

	result, err := adapter.Generate(context.Background(), provider.Request{})

	require.NoError(t, err)
	assert.Equal(t, []byte("secondary"), result.Data)
	assert.Equal(t, 3, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestAdapter_FatalPrimaryFallsBackImmediately(t *testing.T) {
	primary := &scriptedGenerator{name: "primary", errs: []error{fatalErr("primary")}}
	secondary := &scriptedGenerator{name: "secondary"}
	adapter := provider.NewAdapter(primary, secondary, 3, time.Millisecond)

	result, err := adapter.Generate(context.Background(), provider.Request{})

	require.NoError(t, err)
	assert.Equal(t, []byte("secondary"), result.Data)
	assert.Equal(t, 1, primary.calls)
}

func TestAdapter_BothBackendsExhausted(t *testing.T) {
	primary := &scriptedGenerator{
		name: "primary",
		errs: []error{transientErr("primary"), transientErr("primary"), transientErr("primary")},
	}
	secondary := &scriptedGenerator{
		name: "secondary",
		errs: []error{fatalErr("secondary")},
	}
	adapter := provider.NewAdapter(primary, secondary, 3, time.Millisecond)

	_, err := adapter.Generate(context.Background(), provider.Request{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "all backends exhausted")
	assert.Equal(t, 3, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestAdapter_NoSecondaryReportsPrimary(t *testing.T) {
	primary := &scriptedGenerator{
		name: "primary",
		errs: []error{transientErr("primary"), transientErr("primary"), transientErr("primary")},
	}
	adapter := provider.NewAdapter(primary, nil, 3, time.Millisecond)

	_, err := adapter.Generate(context.Background(), provider.Request{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "primary backend exhausted")
}

func TestClassOf(t *testing.T) {
	assert.Equal(t, provider.FailureFatal, provider.ClassOf(fatalErr("x")))
	assert.Equal(t, provider.FailureTransient, provider.ClassOf(transientErr("x")))
	assert.Equal(t, provider.FailureRateLimited, provider.ClassOf(&provider.Error{
		Backend: "x", Class: provider.FailureRateLimited, Err: errors.New("429"),
	}))
	// Unclassified errors are retryable.
	assert.Equal(t, provider.FailureTransient, provider.ClassOf(errors.New("connection reset")))
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	wrapped := &provider.Error{Backend: "openai", Class: provider.FailureFatal, Err: inner}

	assert.ErrorIs(t, wrapped, inner)
	assert.Contains(t, wrapped.Error(), "openai")
	assert.Contains(t, wrapped.Error(), "fatal")
}
