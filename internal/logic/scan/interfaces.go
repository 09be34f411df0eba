package scan

import "context"

// Scanner inspects a container image for known vulnerabilities.
type Scanner interface {
	Scan(ctx context.Context, image string) (*Report, error)
}
