package session

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// loginAttemptsTotal counts login attempts by result.
	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "login_attempts_total",
			Help: "Total login attempts by result",
		},
		[]string{"result"}, // result: success | failure
	)

	// signupsTotal counts completed account registrations.
	signupsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "signups_total",
			Help: "Total completed account registrations",
		},
	)
)

// RecordLoginAttempt records the result of a login attempt.
func RecordLoginAttempt(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	loginAttemptsTotal.WithLabelValues(result).Inc()
}

// RecordSignup records a completed account registration.
func RecordSignup() {
	signupsTotal.Inc()
}
