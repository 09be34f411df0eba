package scan

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/skillcoder/kguard/internal/infra/metrics"
	"github.com/skillcoder/kguard/internal/logic/cluster"
)

type Service struct {
	logger  *slog.Logger
	scanner Scanner
}

// New creates a new image scan service.
func New(logger *slog.Logger, scanner Scanner) *Service {
	return &Service{
		logger:  logger,
		scanner: scanner,
	}
}

// ScanImageCommand scans image and returns its HIGH and CRITICAL findings.
func (s *Service) ScanImageCommand(ctx context.Context, image string) (*Report, error) {
	image = strings.TrimSpace(image)
	if image == "" {
		return nil, fmt.Errorf("%w: image is required", cluster.ErrValidation)
	}

	if strings.HasPrefix(image, "-") {
		return nil, fmt.Errorf("%w: image reference %q must not start with '-'", cluster.ErrValidation, image)
	}

	logger := s.logger.With("image", image)
	logger.InfoContext(ctx, "image scan started")

	report, err := s.scanner.Scan(ctx, image)
	if err != nil {
		metrics.RecordScan(metrics.StatusError)
		logger.ErrorContext(ctx, "image scan failed", "reason", err)

		return nil, fmt.Errorf("scan image %s: %w", image, err)
	}

	metrics.RecordScan(metrics.StatusSuccess)
	logger.InfoContext(ctx, "image scan finished",
		"critical", report.Summary.Critical,
		"high", report.Summary.High,
	)

	return report, nil
}
