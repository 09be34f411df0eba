// Package trivy runs the trivy CLI to scan container images.
package trivy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/skillcoder/kguard/internal/logic/scan"
)

const (
	DefaultPath    = "trivy"
	DefaultTimeout = 5 * time.Minute

	severities = scan.SeverityHigh + "," + scan.SeverityCritical
)

// Scanner shells out to trivy. Each scan is a single attempt.
type Scanner struct {
	logger  *slog.Logger
	path    string
	timeout time.Duration
}

var _ scan.Scanner = (*Scanner)(nil)

// New creates a new trivy scanner.
func New(logger *slog.Logger, path string, timeout time.Duration) *Scanner {
	if path == "" {
		path = DefaultPath
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Scanner{
		logger:  logger,
		path:    path,
		timeout: timeout,
	}
}

type trivyReport struct {
	Results []struct {
		Target          string `json:"Target"`
		Vulnerabilities []struct {
			VulnerabilityID  string `json:"VulnerabilityID"`
			PkgName          string `json:"PkgName"`
			Severity         string `json:"Severity"`
			InstalledVersion string `json:"InstalledVersion"`
			FixedVersion     string `json:"FixedVersion"`
		} `json:"Vulnerabilities"`
	} `json:"Results"`
}

// Scan runs trivy against image and collects findings from every result.
func (s *Scanner) Scan(ctx context.Context, image string) (*scan.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	//nolint:gosec // image is passed as a single positional argv entry after "--", no shell involved
	cmd := exec.CommandContext(ctx, s.path,
		"image",
		"--format", "json",
		"--severity", severities,
		"--quiet",
		"--",
		image,
	)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	s.logger.DebugContext(ctx, "running trivy", "path", s.path, "image", image)

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %w: %s", ErrScanFailed, err, strings.TrimSpace(stderr.String()))
	}

	var raw trivyReport
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode report: %w", ErrScanFailed, err)
	}

	report := &scan.Report{
		Image:           image,
		Vulnerabilities: []scan.Vulnerability{},
	}

	for _, result := range raw.Results {
		for _, v := range result.Vulnerabilities {
			report.Vulnerabilities = append(report.Vulnerabilities, scan.Vulnerability{
				ID:               v.VulnerabilityID,
				Package:          v.PkgName,
				Severity:         v.Severity,
				InstalledVersion: v.InstalledVersion,
				FixedVersion:     v.FixedVersion,
			})
		}
	}

	report.Summarize()

	return report, nil
}
