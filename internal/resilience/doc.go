// Package resilience provides fault tolerance patterns for the
// application. It currently holds the circuit breaker that shields
// request handling from a failing database.
package resilience
