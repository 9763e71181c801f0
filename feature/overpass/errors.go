package overpass

import (
	"errors"
	"fmt"

	"place-manager/core/reconcile"
)

var (
	// ErrFetchFailed marks a transport failure or a non-success Overpass response.
	ErrFetchFailed = errors.New("overpass fetch failed")

	// ErrCacheMiss is returned by Cache.Load when nothing is cached.
	ErrCacheMiss = errors.New("snapshot cache is empty")

	// ErrMalformedSnapshot is returned when the payload is not an object with an elements array.
	ErrMalformedSnapshot = errors.New("malformed snapshot")

	// ErrMalformedElement is returned when a single element cannot be normalized.
	ErrMalformedElement = errors.New("malformed element")

	// ErrDuplicateElement is returned when the snapshot carries the same id twice.
	ErrDuplicateElement = reconcile.ErrDuplicateElement
)

// FetchError describes a failed Overpass request.
type FetchError struct {
	// StatusCode is the HTTP status, or 0 for transport errors.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("overpass fetch failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("overpass fetch failed: %v", e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is makes every FetchError match ErrFetchFailed.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// ElementError describes the first element that failed normalization.
type ElementError struct {
	// Index is the element position in the snapshot.
	Index int
	// ID is the element id, or 0 if it could not be read.
	ID int64
	// Kind is the raw element type.
	Kind string
	// Reason is a short human readable cause.
	Reason string
	// Err is ErrMalformedElement or ErrDuplicateElement.
	Err error
}

func (e *ElementError) Error() string {
	if e.ID != 0 {
		return fmt.Sprintf("element #%d (%s %d): %s: %v", e.Index, e.Kind, e.ID, e.Reason, e.Err)
	}
	return fmt.Sprintf("element #%d: %s: %v", e.Index, e.Reason, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}
