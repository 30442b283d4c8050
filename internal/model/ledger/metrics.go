package ledger

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var histogramOperationTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "splitter",
		Subsystem: "ledger",
		Name:      "histogram_operation_time_seconds",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
	},
	[]string{"operation", "error"},
)

func observeOperation(operation string, elapsed time.Duration, err bool) {
	histogramOperationTime.
		WithLabelValues(operation, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
