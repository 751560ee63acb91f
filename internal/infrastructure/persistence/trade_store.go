package persistence

import (
	"cmp"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"landshop/internal/domain"
	"landshop/internal/domain/entity"
	"landshop/pkg/errcodes"
)

// TradeStore owns the locally tracked trades. Trades are only ever added or
// transitioned, never removed; the backing file is rewritten on every
// mutation just like the items file.
type TradeStore struct {
	mu     sync.Mutex
	path   string
	trades map[uuid.UUID]entity.Trade
}

// NewTradeStore loads the trades file at path, skipping malformed lines.
func NewTradeStore(path string) (*TradeStore, error) {
	store := &TradeStore{
		path:   path,
		trades: make(map[uuid.UUID]entity.Trade),
	}

	lines, err := readRecordLines(path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.PersistenceError, "failed to read trades file")
	}

	for _, line := range lines {
		trade, err := entity.ParseTradeRecord(line)
		if err != nil {
			continue
		}

		store.trades[trade.ID] = trade
	}

	return store, nil
}

func (s *TradeStore) Get(id uuid.UUID) (entity.Trade, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trade, ok := s.trades[id]
	return trade, ok
}

func (s *TradeStore) All() []entity.Trade {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked()
}

func (s *TradeStore) Upsert(trade entity.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trades[trade.ID] = trade

	return s.flushLocked()
}

func (s *TradeStore) sortedLocked() []entity.Trade {
	trades := make([]entity.Trade, 0, len(s.trades))
	for _, trade := range s.trades {
		trades = append(trades, trade)
	}

	slices.SortFunc(trades, func(a, b entity.Trade) int {
		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return trades
}

func (s *TradeStore) flushLocked() error {
	var sb strings.Builder
	for _, trade := range s.sortedLocked() {
		sb.WriteString(trade.Record())
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(sb.String()), recordFileMode); err != nil {
		return domain.WrapError(err, errcodes.PersistenceError, "failed to write trades file")
	}

	return nil
}
