package contains_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"contains"
)

func TestRangeContains(t *testing.T) {
	tests := []struct {
		name  string
		input contains.Container[int]
		item  int
		want  bool
	}{
		{"HalfOpenInside", contains.Range[int]{Low: 0, High: 5}, 3, true},
		{"HalfOpenLowBound", contains.Range[int]{Low: 0, High: 5}, 0, true},
		{"HalfOpenHighBound", contains.Range[int]{Low: 0, High: 5}, 5, false},
		{"HalfOpenBelow", contains.Range[int]{Low: 0, High: 5}, -1, false},
		{"HalfOpenInverted", contains.Range[int]{Low: 5, High: 0}, 3, false},

		{"InclusiveHighBound", contains.RangeInclusive[int]{Low: 0, High: 6}, 6, true},
		{"InclusiveAbove", contains.RangeInclusive[int]{Low: 0, High: 6}, 7, false},
		{"InclusiveSingleton", contains.RangeInclusive[int]{Low: 3, High: 3}, 3, true},

		{"FromAtBound", contains.RangeFrom[int]{Low: 10}, 10, true},
		{"FromAbove", contains.RangeFrom[int]{Low: 10}, 1000, true},
		{"FromBelow", contains.RangeFrom[int]{Low: 10}, 9, false},

		{"ToBelowBound", contains.RangeTo[int]{High: 10}, 9, true},
		{"ToAtBound", contains.RangeTo[int]{High: 10}, 10, false},

		{"ToInclusiveAtBound", contains.RangeToInclusive[int]{High: 10}, 10, true},
		{"ToInclusiveAbove", contains.RangeToInclusive[int]{High: 10}, 11, false},

		{"FullAnything", contains.RangeFull[int]{}, -1 << 30, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Contains(tt.item))
			assert.Equal(t, tt.want, contains.In(tt.item, tt.input))
		})
	}
}

func TestRangeContainsOrderedTypes(t *testing.T) {
	t.Run("Float", func(t *testing.T) {
		r := contains.Range[float64]{Low: 0, High: 1}
		assert.True(t, r.Contains(0.5))
		assert.False(t, r.Contains(1.0))
	})

	t.Run("String", func(t *testing.T) {
		r := contains.Range[string]{Low: "a", High: "m"}
		assert.True(t, r.Contains("hello"))
		assert.False(t, r.Contains("world"))
	})
}
