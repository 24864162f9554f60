package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

var (
	classificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sentiment_classifications_total",
			Help: "Total number of sentiment classification calls by outcome",
		},
		[]string{"outcome"},
	)

	classificationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sentiment_classification_duration_seconds",
			Help:    "Sentiment classification latency in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)
)

func observeClassification(err error, elapsed time.Duration) {
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	classificationsTotal.WithLabelValues(outcome).Inc()
	classificationDuration.Observe(elapsed.Seconds())
}
