package lifecycle

import "github.com/prometheus/client_golang/prometheus"

var (
	launchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudlaunch",
			Subsystem: "lifecycle",
			Name:      "launches_total",
			Help:      "Total number of launch requests by result",
		},
		[]string{"result"},
	)

	pollsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudlaunch",
			Subsystem: "lifecycle",
			Name:      "polls_total",
			Help:      "Total number of status polls by observed state",
		},
		[]string{"state"},
	)

	addressClaimsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudlaunch",
			Subsystem: "lifecycle",
			Name:      "address_claims_total",
			Help:      "Total number of floating IP claim outcomes",
		},
		[]string{"outcome"},
	)
)

// Claim outcomes.
const (
	claimAttached    = "attached"
	claimRecovered   = "recovered"
	claimUnavailable = "unavailable"
	claimLost        = "lost"
	claimFailed      = "failed"
)

func init() {
	prometheus.MustRegister(launchesTotal, pollsTotal, addressClaimsTotal)
}
