package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayCallsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "unisender_gateway",
			Name:      "calls_total",
			Help:      "Total Unisender API calls by operation and outcome.",
		},
		[]string{"transport", "operation", "outcome"}, // outcome: success, domain_failure, decode_failure, transport_failure, exception
	)

	gatewayCallDurationHist = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "unisender_gateway",
			Name:      "call_duration_seconds",
			Help:      "Duration of Unisender API calls, including transport retries.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"transport", "operation"},
	)
)

const outcomeException = "exception"
