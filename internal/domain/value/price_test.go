package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"landshop/internal/domain/value"
)

func TestParsePriceSpec(t *testing.T) {
	testCases := []struct {
		name      string
		raw       string
		want      string
		malformed []string
	}{
		{
			name: "single pair",
			raw:  "gold:10",
			want: "gold:10",
		},
		{
			name: "order preserved",
			raw:  "gold:10,emerald:3,iron:64",
			want: "gold:10,emerald:3,iron:64",
		},
		{
			name:      "malformed entry reported and skipped",
			raw:       "gold:10,emerald,iron:64",
			want:      "gold:10,iron:64",
			malformed: []string{"emerald"},
		},
		{
			name:      "too many colons",
			raw:       "gold:10:2",
			want:      "",
			malformed: []string{"gold:10:2"},
		},
		{
			name:      "empty string",
			raw:       "",
			want:      "",
			malformed: []string{""},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			spec, malformed := value.ParsePriceSpec(tc.raw)
			rq.Equal(tc.want, spec.String())
			rq.Equal(tc.malformed, malformed)
		})
	}
}

func TestPriceSpecRoundTrip(t *testing.T) {
	rq := require.New(t)

	spec, malformed := value.ParsePriceSpec("gold:10,emerald:3")
	rq.Empty(malformed)
	rq.False(spec.IsEmpty())

	again, malformed := value.ParsePriceSpec(spec.String())
	rq.Empty(malformed)
	rq.Equal(spec, again)
}
