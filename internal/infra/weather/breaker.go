package weather

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// newBreaker opens after three consecutive failed lookups and tries again
// after cooldown.
func newBreaker(name string, cooldown time.Duration, log *slog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("weather.breaker_state", "name", name, "from", from.String(), "to", to.String())
		},
	})
}
