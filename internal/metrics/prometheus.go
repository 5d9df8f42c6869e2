package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// OrdersTotal counts recorded orders by initial status
	OrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_total",
			Help: "Orders recorded, by initial status",
		},
		[]string{"status"},
	)

	// OrderAmount tracks payable amounts in rupees
	OrderAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "storefront_order_amount_rupees",
			Help:    "Final payable order amount in rupees",
			Buckets: []float64{100, 250, 500, 1000, 2500, 5000, 10000},
		},
	)

	// GatewayRequests counts payment initiation calls by result
	GatewayRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_gateway_requests_total",
			Help: "Payment gateway initiation calls, by result",
		},
		[]string{"result"},
	)

	// CallbacksTotal counts gateway callbacks by handling result
	CallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_payment_callbacks_total",
			Help: "Payment gateway callbacks, by result",
		},
		[]string{"result"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storefront_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"circuit_name"},
	)
)

// Middleware records request count and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RequestsTotal.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
