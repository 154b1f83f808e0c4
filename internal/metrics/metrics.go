// Package metrics registers the bot's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal counts processed commands by kind, including
	// unrecognized ones.
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lunchbot_commands_total",
		Help: "Number of processed bot commands by kind.",
	}, []string{"kind"})

	// SaveFailures counts ledger snapshot saves that returned an error.
	SaveFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "lunchbot_snapshot_save_failures_total",
		Help: "Number of failed ledger snapshot saves.",
	})

	// OpenOrders tracks the order units currently on the ledger.
	OpenOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "lunchbot_open_order_units",
		Help: "Order units currently recorded on the ledger.",
	})
)
