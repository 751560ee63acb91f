package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Trade states as the remote service tags them. The set is open: any other
// tag coming off the wire is stored verbatim, only these two carry behavior.
const (
	TradeStateWait   = "wait"
	TradeStateFinish = "finish"
)

// Trade is a remote-service-assigned transaction tracked locally from wait
// to finish. Trades are never deleted; the trades file is an append-only
// log of outcomes.
type Trade struct {
	ID        uuid.UUID
	RemoterID uuid.UUID
	State     string
}

const tradeRecordFields = 3

// Record serializes the trade as one flat-file line (without the newline).
func (t Trade) Record() string {
	return fmt.Sprintf("%s;%s;%s", t.ID, t.RemoterID, t.State)
}

// ParseTradeRecord parses one line of the trades file.
func ParseTradeRecord(line string) (Trade, error) {
	fields := strings.Split(line, ";")
	if len(fields) != tradeRecordFields {
		return Trade{}, fmt.Errorf("trade record: want %d fields, got %d", tradeRecordFields, len(fields))
	}

	id, err := uuid.Parse(fields[0])
	if err != nil {
		return Trade{}, fmt.Errorf("trade record: trade id: %w", err)
	}

	remoterID, err := uuid.Parse(fields[1])
	if err != nil {
		return Trade{}, fmt.Errorf("trade record: remoter id: %w", err)
	}

	return Trade{
		ID:        id,
		RemoterID: remoterID,
		State:     fields[2],
	}, nil
}
