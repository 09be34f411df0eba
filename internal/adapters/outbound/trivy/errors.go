package trivy

import "errors"

// ErrScanFailed means trivy exited with an error or produced an unreadable report.
var ErrScanFailed = errors.New("trivy scan failed")
