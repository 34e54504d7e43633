package normalize

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsNormalized = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "normalize",
		Name:      "transactions_total",
		Help:      "Number of successfully normalized transactions",
	})

	recordsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "normalize",
		Name:      "failed_records_total",
		Help:      "Number of raw records that failed normalization and were skipped",
	})

	anomaliesFound = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "normalize",
		Name:      "anomalies_total",
		Help:      "Number of anomalies recorded on otherwise normalized transactions",
	})
)
