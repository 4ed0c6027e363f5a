package provider

import (
	"context"
	"errors"
	"fmt"
)

// FailureClass tells the adapter how to react to a generation failure.
type FailureClass int

const (
	// FailureTransient covers temporary upstream unavailability; retried
	// with backoff.
	FailureTransient FailureClass = iota
	// FailureRateLimited is an explicit throttle signal; retried with backoff.
	FailureRateLimited
	// FailureFatal means the backend cannot produce this image; the adapter
	// stops retrying the backend and falls back if one is configured.
	FailureFatal
)

func (c FailureClass) String() string {
	switch c {
	case FailureRateLimited:
		return "rate_limited"
	case FailureFatal:
		return "fatal"
	default:
		return "transient"
	}
}

// Error is a classified generation failure from a specific backend.
type Error struct {
	Backend string
	Class   FailureClass
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s generation failed (%s): %v", e.Backend, e.Class, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ClassOf extracts the failure class from an error chain. Unclassified
// errors (network hiccups and the like) are treated as transient.
func ClassOf(err error) FailureClass {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Class
	}
	return FailureTransient
}

// Request describes one image generation call. PromptText drives
// prompt-based backends; StyleImageURL drives reference-image backends.
// Each backend uses the fields it understands.
type Request struct {
	SourceImageURL string
	StyleImageURL  string
	PromptText     string
	Mode           string
}

// Result is a successfully generated portrait.
type Result struct {
	Data        []byte
	ContentType string
}

// Generator is one image-generation backend.
type Generator interface {
	Name() string
	Generate(ctx context.Context, req Request) (*Result, error)
}
