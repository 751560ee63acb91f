package gateway

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	connects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landshop_gateway_connects_total",
		Help: "Successful gateway connections.",
	})

	reconnects = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landshop_gateway_reconnects_total",
		Help: "Connection drops that triggered the reconnect delay.",
	})

	eventsDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landshop_gateway_events_dispatched_total",
		Help: "Inbound events dispatched to the coordinator, by type.",
	}, []string{"type"})
)
