package httputils

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var (
	requestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "conekta_client_requests_total",
			Help: "Requests executed against the payment API.",
		},
		[]string{"method", "code"},
	)
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "conekta_client_request_duration_seconds",
			Help:    "Wall time of payment API requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func init() {
	prometheus.MustRegister(requestTotal, requestDuration)
}

func observeRequest(method, code string, d time.Duration) {
	requestTotal.WithLabelValues(method, code).Inc()
	requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

func statusLabel(statusCode int) string {
	return strconv.Itoa(statusCode)
}

type logFunc func(v ...interface{})

func (l logFunc) Println(v ...interface{}) {
	l(v...)
}

// RunDebugMux exposes client metrics on /metrics.
func RunDebugMux() http.Handler {
	l := zap.L().Named("debugMux")
	sugar := l.Sugar()

	s := http.NewServeMux()

	s.Handle("/metrics", promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog:      logFunc(sugar.Warn),
		ErrorHandling: promhttp.HTTPErrorOnError,
	}))

	return s
}
