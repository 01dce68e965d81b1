package upstream

import (
	"errors"
	"fmt"
)

var (
	// ErrCollectionMissing marks a 404 on a collection endpoint: the
	// resource path itself is absent upstream. Adapters route this to
	// fallback generation. It is deliberately distinct from an empty 2xx
	// collection, which is real data.
	ErrCollectionMissing = errors.New("upstream collection endpoint missing")

	// ErrSessionExpired marks a 401 from the upstream. The session store
	// has already been cleared when this is returned.
	ErrSessionExpired = errors.New("session expired, please sign in again")
)

// FetchFailure is a transport or server error on a required fetch. It is
// surfaced to the console as a retryable error banner, so the message is
// written for end users.
type FetchFailure struct {
	Resource string
	Status   int
	Err      error
}

func (e *FetchFailure) Error() string {
	return fmt.Sprintf("could not load %s, please try again", e.Resource)
}

func (e *FetchFailure) Unwrap() error { return e.Err }

// NotFoundError is a single-record lookup miss. Its message is the one the
// console shows next to the back action, not a raw transport error.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// EnrichmentError is a secondary-fetch miss while attaching related-entity
// data. It is recovered locally: the adapter substitutes a stub, logs, and
// keeps going. It never reaches the console.
type EnrichmentError struct {
	Resource string
	ID       string
	Err      error
}

func (e *EnrichmentError) Error() string {
	return fmt.Sprintf("enrich %s %s: %v", e.Resource, e.ID, e.Err)
}

func (e *EnrichmentError) Unwrap() error { return e.Err }

// ValidationError is a user-input failure, surfaced inline next to the
// offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// IsNotFound reports whether err is a single-record miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
