package trade

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	tradesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landshop_trades_created_total",
		Help: "Trades opened after a powered notify with an occupant.",
	})

	tradesCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landshop_trades_completed_total",
		Help: "Trades transitioned from wait to finish.",
	})
)
