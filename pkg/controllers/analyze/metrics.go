package analyze

import "github.com/prometheus/client_golang/prometheus"

// Values of the outcome label of analyses_total.
const (
	OutcomeSuccess     = "success"
	OutcomeParseError  = "parse_error"
	OutcomeSchemaError = "schema_error"
	OutcomeUploadError = "upload_error" // The request was rejected before the file was analyzed
	OutcomeError       = "error"
)

var analysesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "analyses_total",
		Help: "How many statement uploads were analyzed, partitioned by outcome.",
	},
	[]string{"outcome"},
)

// Collectors returns the Prometheus collectors of the analyze endpoint
// so that the router can register them.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{analysesTotal}
}

func observe(err error) {
	analysesTotal.WithLabelValues(outcome(err)).Inc()
}
