package cluster

import (
	"errors"
	"fmt"
)

var (
	// ErrAdapterUnavailable means the cluster is unreachable or the credential is rejected.
	ErrAdapterUnavailable = errors.New("cluster adapter unavailable")

	// ErrNotFound means the target pod or workload vanished.
	ErrNotFound = errors.New("not found")

	// ErrNoOwner means a remediation target has no resolvable controller.
	ErrNoOwner = errors.New("no resolvable owner")

	// ErrValidation means a required mutation parameter is missing or invalid.
	ErrValidation = errors.New("validation failed")
)

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}

// unavailable is a private interface for checking transport and credential errors
// without importing the adapter package.
type unavailable interface {
	IsUnavailable()
}

// IsNotFound reports whether err carries an adapter "not found" marker.
func IsNotFound(err error) bool {
	var target notFound

	return errors.As(err, &target)
}

// IsUnavailable reports whether err carries an adapter "unavailable" marker.
func IsUnavailable(err error) bool {
	var target unavailable

	return errors.As(err, &target)
}

// DomainError maps adapter error markers onto the package sentinels.
// Errors without a marker are returned unchanged.
func DomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case IsNotFound(err):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case IsUnavailable(err):
		return fmt.Errorf("%w: %w", ErrAdapterUnavailable, err)
	}

	return err
}
