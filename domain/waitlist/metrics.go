package waitlist

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Submission outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var (
	SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "waitlist_submissions_total",
		Help: "Total number of waitlist submissions by outcome",
	}, []string{"outcome"})

	AppendDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "waitlist_sheet_append_duration_seconds",
		Help:    "Time spent appending a signup to the spreadsheet",
		Buckets: prometheus.DefBuckets,
	})
)
