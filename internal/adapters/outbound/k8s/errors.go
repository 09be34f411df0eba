package k8s

import (
	"context"
	"errors"
	"net"
	"net/url"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
)

// NotFoundError marks a missing pod, deployment or node.
type NotFoundError struct {
	err error
}

func (e *NotFoundError) Error() string {
	return e.err.Error()
}

func (e *NotFoundError) Unwrap() error {
	return e.err
}

func (e *NotFoundError) IsNotFound() {}

// UnavailableError marks an unreachable API server or a rejected credential.
type UnavailableError struct {
	err error
}

func (e *UnavailableError) Error() string {
	return e.err.Error()
}

func (e *UnavailableError) Unwrap() error {
	return e.err
}

func (e *UnavailableError) IsUnavailable() {}

var errNoNodes = errors.New("no nodes found")

// classify attaches a marker to errors the logic layer maps to sentinels.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case apierrors.IsNotFound(err):
		return &NotFoundError{err: err}
	case isUnavailable(err):
		return &UnavailableError{err: err}
	}

	return err
}

func isUnavailable(err error) bool {
	if apierrors.IsUnauthorized(err) ||
		apierrors.IsForbidden(err) ||
		apierrors.IsServiceUnavailable(err) ||
		apierrors.IsTimeout(err) ||
		apierrors.IsServerTimeout(err) ||
		apierrors.IsTooManyRequests(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr *net.OpError

	return errors.As(err, &netErr)
}
