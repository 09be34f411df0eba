package units

const (
	kibPerMib  = 1024
	bytePerMib = 1024 * 1024
)

// ParseMemory converts a memory usage string to MiB, truncating toward zero.
func ParseMemory(raw string) (int64, error) {
	value, suffix, err := splitQuantity(raw)
	if err != nil {
		return 0, err
	}

	switch suffix {
	case "Ki":
		return value / kibPerMib, nil
	case "Mi":
		return value, nil
	case "Gi":
		return multiply(raw, value, kibPerMib)
	case "":
		return value / bytePerMib, nil
	}

	return 0, parseError(raw, "unsupported memory suffix "+suffix)
}
