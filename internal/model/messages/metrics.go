package messages

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	plainTextLabel = "text"
	unknownLabel   = "unknown"
)

var histogramResponseTime = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "splitter",
		Subsystem: "telegram",
		Name:      "histogram_response_time_seconds",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
	},
	[]string{"command", "error"},
)

// commandLabel keeps the label set bounded: anything the bot does not
// handle is reported as unknown.
func commandLabel(cmd string) string {
	switch cmd {
	case "":
		return plainTextLabel
	case startCommand, expenseCommand, listCommand, summaryCommand, reloadCommand:
		return strings.TrimPrefix(cmd, "/")
	default:
		return unknownLabel
	}
}

func observeResponse(command string, elapsed time.Duration, err bool) {
	histogramResponseTime.
		WithLabelValues(command, strconv.FormatBool(err)).
		Observe(elapsed.Seconds())
}
