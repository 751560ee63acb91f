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

// ItemStore owns the configured shop items: an in-memory map plus the
// flat-file record behind it. Every mutation rewrites the file before
// returning, so the file always reconstructs the map as of the last
// successful call.
type ItemStore struct {
	mu    sync.Mutex
	path  string
	items map[uuid.UUID]entity.ShopItem
}

// NewItemStore loads the items file at path. Malformed lines (wrong field
// count, unparsable ids) are skipped, never fatal. A missing file means an
// empty store.
func NewItemStore(path string) (*ItemStore, error) {
	store := &ItemStore{
		path:  path,
		items: make(map[uuid.UUID]entity.ShopItem),
	}

	lines, err := readRecordLines(path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.PersistenceError, "failed to read items file")
	}

	for _, line := range lines {
		item, err := entity.ParseItemRecord(line)
		if err != nil {
			continue
		}

		store.items[item.NotifierID] = item
	}

	return store, nil
}

func (s *ItemStore) Get(id uuid.UUID) (entity.ShopItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	return item, ok
}

func (s *ItemStore) All() []entity.ShopItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sortedLocked()
}

func (s *ItemStore) Upsert(item entity.ShopItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[item.NotifierID] = item

	return s.flushLocked()
}

// Remove deletes the item and rewrites the file. Removing an unknown id is
// an error and performs no write.
func (s *ItemStore) Remove(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return domain.NewError(errcodes.ItemNotFound, "item not found")
	}

	delete(s.items, id)

	return s.flushLocked()
}

func (s *ItemStore) sortedLocked() []entity.ShopItem {
	items := make([]entity.ShopItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b entity.ShopItem) int {
		return cmp.Compare(a.NotifierID.String(), b.NotifierID.String())
	})

	return items
}

func (s *ItemStore) flushLocked() error {
	var sb strings.Builder
	for _, item := range s.sortedLocked() {
		sb.WriteString(item.Record())
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(sb.String()), recordFileMode); err != nil {
		return domain.WrapError(err, errcodes.PersistenceError, "failed to write items file")
	}

	return nil
}
