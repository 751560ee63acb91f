// Package event holds the typed payloads delivered by the remote gateway.
package event

import "github.com/google/uuid"

// Type discriminators carried in the gateway envelope. Anything else is
// ignored by dispatch.
const (
	TypeLandNotify = "land_notify"
	TypePayment    = "payment"
)

// Notify is a land_notify trigger: a notifier fired at a position in some
// environment.
type Notify struct {
	Powered bool      `json:"powered"`
	Key     uuid.UUID `json:"key"`
	Env     string    `json:"env"`
	X       float64   `json:"x"`
	Y       float64   `json:"y"`
	Z       float64   `json:"z"`
}

// Payment reports a state change of a remote trade.
type Payment struct {
	State string    `json:"state"`
	ID    uuid.UUID `json:"id"`
}
