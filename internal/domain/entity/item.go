package entity

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"landshop/internal/domain/value"
)

// ShopItem binds an in-world notifier to the remoter it gates and the price
// asked for opening it. Display is stored percent-encoded.
type ShopItem struct {
	NotifierID uuid.UUID
	RemoterID  uuid.UUID
	Prices     value.PriceSpec
	Display    string
}

const itemRecordFields = 4

// Record serializes the item as one flat-file line (without the newline).
func (i ShopItem) Record() string {
	return fmt.Sprintf("%s;%s;%s;%s", i.NotifierID, i.RemoterID, i.Prices, i.Display)
}

// ParseItemRecord parses one line of the items file. The field count must
// match the writer's exactly.
func ParseItemRecord(line string) (ShopItem, error) {
	fields := strings.Split(line, ";")
	if len(fields) != itemRecordFields {
		return ShopItem{}, fmt.Errorf("item record: want %d fields, got %d", itemRecordFields, len(fields))
	}

	notifierID, err := uuid.Parse(fields[0])
	if err != nil {
		return ShopItem{}, fmt.Errorf("item record: notifier id: %w", err)
	}

	remoterID, err := uuid.Parse(fields[1])
	if err != nil {
		return ShopItem{}, fmt.Errorf("item record: remoter id: %w", err)
	}

	prices, _ := value.ParsePriceSpec(fields[2])

	return ShopItem{
		NotifierID: notifierID,
		RemoterID:  remoterID,
		Prices:     prices,
		Display:    fields[3],
	}, nil
}
