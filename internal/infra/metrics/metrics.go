package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

var remediationTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kguard_remediation_total",
		Help: "Total number of remediation actions by action and outcome.",
	},
	[]string{"action", "status"},
)

var discoveryFailuresTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kguard_discovery_failures_total",
		Help: "Total number of read-path queries that degraded because the cluster adapter failed.",
	},
	[]string{"query"},
)

var unitParseErrorsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kguard_unit_parse_errors_total",
		Help: "Total number of usage samples dropped because the unit could not be normalized.",
	},
	[]string{"resource"},
)

var scansTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "kguard_scans_total",
		Help: "Total number of image scans by outcome.",
	},
	[]string{"status"},
)

// RecordRemediation increments the counter for a finished remediation action.
func RecordRemediation(action, status string) {
	remediationTotal.WithLabelValues(action, status).Inc()
}

// RecordDiscoveryFailure increments the counter when a read path falls back to a degraded answer.
func RecordDiscoveryFailure(query string) {
	discoveryFailuresTotal.WithLabelValues(query).Inc()
}

// RecordUnitParseError increments the counter when a metrics sample is dropped.
func RecordUnitParseError(resource string) {
	unitParseErrorsTotal.WithLabelValues(resource).Inc()
}

// RecordScan increments the counter for a finished image scan.
func RecordScan(status string) {
	scansTotal.WithLabelValues(status).Inc()
}
