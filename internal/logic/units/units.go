// Package units normalizes metrics-server usage strings into comparable integers.
//
// CPU is normalized to millicores and memory to MiB. Only the suffixes the
// metrics API actually emits are accepted; anything else is a UnitParseError
// rather than a guess.
package units

import (
	"math"
	"strconv"
	"strings"
)

// splitQuantity separates the base-10 integer body from its suffix.
func splitQuantity(raw string) (int64, string, error) {
	if raw == "" {
		return 0, "", parseError(raw, "empty value")
	}

	end := strings.IndexFunc(raw, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if end == -1 {
		end = len(raw)
	}

	if end == 0 {
		if raw[0] == '-' {
			return 0, "", parseError(raw, "negative usage")
		}

		return 0, "", parseError(raw, "missing numeric body")
	}

	value, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0, "", parseError(raw, err.Error())
	}

	return value, raw[end:], nil
}

func multiply(raw string, value, factor int64) (int64, error) {
	if value > math.MaxInt64/factor {
		return 0, parseError(raw, "value out of range")
	}

	return value * factor, nil
}
