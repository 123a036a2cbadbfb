package metrics

import "github.com/prometheus/client_golang/prometheus"

var matchRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "matchdex",
		Name:      "match_requests_total",
		Help:      "Total number of match requests by document type and outcome",
	},
	[]string{"doc_type", "status"},
)

func init() {
	prometheus.MustRegister(matchRequestsTotal)
}

// ObserveMatch records the outcome of a match request.
func ObserveMatch(docType, status string) {
	matchRequestsTotal.WithLabelValues(docType, status).Inc()
}
