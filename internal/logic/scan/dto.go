package scan

const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
)

// Vulnerability is one finding reported for an image.
type Vulnerability struct {
	ID               string `json:"id" yaml:"id"`
	Package          string `json:"pkg" yaml:"pkg"`
	Severity         string `json:"severity" yaml:"severity"`
	InstalledVersion string `json:"installed_version" yaml:"installed_version"`
	FixedVersion     string `json:"fixed_version" yaml:"fixed_version"`
}

// Summary counts findings by severity.
type Summary struct {
	Critical int `json:"critical" yaml:"critical"`
	High     int `json:"high" yaml:"high"`
}

// Report is the outcome of scanning one image.
type Report struct {
	Image           string          `json:"image" yaml:"image"`
	Summary         Summary         `json:"summary" yaml:"summary"`
	Vulnerabilities []Vulnerability `json:"vulnerabilities" yaml:"vulnerabilities"`
}

// Summarize recomputes the summary from the vulnerability list.
func (r *Report) Summarize() {
	r.Summary = Summary{}

	for _, v := range r.Vulnerabilities {
		switch v.Severity {
		case SeverityCritical:
			r.Summary.Critical++
		case SeverityHigh:
			r.Summary.High++
		}
	}
}
