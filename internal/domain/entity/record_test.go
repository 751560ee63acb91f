package entity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"landshop/internal/domain/entity"
	"landshop/internal/domain/value"
)

func TestItemRecordRoundTrip(t *testing.T) {
	rq := require.New(t)

	prices, malformed := value.ParsePriceSpec("gold:10,emerald:3")
	rq.Empty(malformed)

	item := entity.ShopItem{
		NotifierID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		RemoterID:  uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		Prices:     prices,
		Display:    "Iron+Sword",
	}

	line := item.Record()
	rq.Equal(
		"11111111-1111-1111-1111-111111111111;22222222-2222-2222-2222-222222222222;gold:10,emerald:3;Iron+Sword",
		line,
	)

	parsed, err := entity.ParseItemRecord(line)
	rq.NoError(err)
	rq.Equal(item, parsed)
}

func TestParseItemRecordMalformed(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "a;b;c"},
		{name: "too many fields", line: "a;b;c;d;e"},
		{name: "bad notifier id", line: "nope;22222222-2222-2222-2222-222222222222;gold:10;Sword"},
		{name: "bad remoter id", line: "11111111-1111-1111-1111-111111111111;nope;gold:10;Sword"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.ParseItemRecord(tc.line)
			require.Error(t, err)
		})
	}
}

func TestTradeRecordRoundTrip(t *testing.T) {
	rq := require.New(t)

	trade := entity.Trade{
		ID:        uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		RemoterID: uuid.MustParse("22222222-2222-2222-2222-222222222222"),
		State:     entity.TradeStateWait,
	}

	line := trade.Record()
	rq.Equal("33333333-3333-3333-3333-333333333333;22222222-2222-2222-2222-222222222222;wait", line)

	parsed, err := entity.ParseTradeRecord(line)
	rq.NoError(err)
	rq.Equal(trade, parsed)
}

func TestParseTradeRecordUnknownStatePreserved(t *testing.T) {
	rq := require.New(t)

	parsed, err := entity.ParseTradeRecord(
		"33333333-3333-3333-3333-333333333333;22222222-2222-2222-2222-222222222222;refunded",
	)
	rq.NoError(err)
	rq.Equal("refunded", parsed.State)
}

func TestParseTradeRecordMalformed(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{name: "two fields", line: "33333333-3333-3333-3333-333333333333;wait"},
		{name: "four fields", line: "a;b;c;d"},
		{name: "bad trade id", line: "nope;22222222-2222-2222-2222-222222222222;wait"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := entity.ParseTradeRecord(tc.line)
			require.Error(t, err)
		})
	}
}
