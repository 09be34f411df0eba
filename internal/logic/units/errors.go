package units

import (
	"errors"
	"fmt"
)

var (
	// ErrUnitParse is matched by every UnitParseError.
	ErrUnitParse = errors.New("unit parse error")

	// ErrInvalidQuota means a percentage was requested against a non-positive quota.
	ErrInvalidQuota = errors.New("quota must be positive")
)

// UnitParseError reports a usage string that cannot be normalized.
type UnitParseError struct {
	Raw    string
	Reason string
}

func (e *UnitParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Raw, e.Reason)
}

func (e *UnitParseError) Unwrap() error {
	return ErrUnitParse
}

func parseError(raw, reason string) error {
	return &UnitParseError{Raw: raw, Reason: reason}
}
