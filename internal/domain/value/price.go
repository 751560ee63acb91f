package value

import (
	"strings"

	"github.com/samber/lo"
)

// PriceEntry is a single currency:amount pair. Amount stays opaque: the
// remote service interprets it, we only carry it through.
type PriceEntry struct {
	Currency string
	Amount   string
}

// PriceSpec is the ordered list of currency:amount pairs a shop item costs.
// Order is part of the wire format and must survive re-serialization.
type PriceSpec struct {
	Entries []PriceEntry
}

// ParsePriceSpec parses "cur:amt,cur:amt,...". Entries that do not split
// into exactly two parts on ':' are returned in malformed and left out of
// the spec; they never fail the parse.
func ParsePriceSpec(raw string) (PriceSpec, []string) {
	var (
		spec      PriceSpec
		malformed []string
	)

	for _, entry := range strings.Split(raw, ",") {
		parts := strings.Split(entry, ":")
		if len(parts) != 2 {
			malformed = append(malformed, entry)
			continue
		}

		spec.Entries = append(spec.Entries, PriceEntry{
			Currency: parts[0],
			Amount:   parts[1],
		})
	}

	return spec, malformed
}

func (s PriceSpec) IsEmpty() bool {
	return len(s.Entries) == 0
}

// String serializes back to "cur:amt,cur:amt,..." in insertion order.
func (s PriceSpec) String() string {
	return strings.Join(lo.Map(s.Entries, func(e PriceEntry, _ int) string {
		return e.Currency + ":" + e.Amount
	}), ",")
}
