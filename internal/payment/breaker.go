package payment

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/MikeMC777/dryfruits-storefront/internal/metrics"
)

// newBreaker trips after most of a small window of gateway calls failed at
// the transport level. Business rejections from the gateway are not failures.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     20 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(cbName string, from gobreaker.State, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(cbName).Set(stateValue(to))
			log.WithFields(log.Fields{
				"circuit": cbName,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("[payment] circuit breaker state changed")
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	return cb
}

// 0=closed, 1=open, 2=half-open
func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
