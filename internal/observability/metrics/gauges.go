// Package metrics exposes Prometheus gauges reflecting database state.
// The gauges are refreshed periodically by a Poller rather than on each
// write, so they stay correct even when rows change outside the app.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// NewsTotal tracks the total number of news items in the database.
	NewsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_total",
			Help: "Total number of news items in the database",
		},
	)

	// NotesTotal tracks the total number of notes in the database.
	NotesTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "notes_total",
			Help: "Total number of notes in the database",
		},
	)
)

// UpdateNewsTotal updates the total count of news items in the database.
func UpdateNewsTotal(count int64) {
	NewsTotal.Set(float64(count))
}

// UpdateNotesTotal updates the total count of notes in the database.
func UpdateNotesTotal(count int64) {
	NotesTotal.Set(float64(count))
}
