package units

const nanoPerMilli = 1_000_000

// ParseCPU converts a CPU usage string to millicores.
// Nanocores are truncated toward zero.
func ParseCPU(raw string) (int64, error) {
	value, suffix, err := splitQuantity(raw)
	if err != nil {
		return 0, err
	}

	switch suffix {
	case "n":
		return value / nanoPerMilli, nil
	case "m":
		return value, nil
	case "":
		return multiply(raw, value, 1000)
	}

	return 0, parseError(raw, "unsupported cpu suffix "+suffix)
}
