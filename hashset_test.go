package contains_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contains"
)

func TestHashSetContains(t *testing.T) {
	tests := []struct {
		name  string
		input contains.HashSet[string]
		item  string
		want  bool
	}{
		{"Member", contains.NewHashSet("a", "b", "c"), "b", true},
		{"NotMember", contains.NewHashSet("a", "b", "c"), "d", false},
		{"Empty", contains.NewHashSet[string](), "a", false},
		{"NilSet", nil, "a", false},
		{"Duplicates", contains.NewHashSet("a", "a"), "a", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.input.Contains(tt.item))
			assert.Equal(t, tt.want, contains.In(tt.item, tt.input))
		})
	}
}

func TestHashSetMutation(t *testing.T) {
	s := contains.NewHashSet(1, 2, 2, 3)
	require.Equal(t, 3, s.Len())

	s.Add(4, 4)
	require.Equal(t, 4, s.Len())
	require.True(t, s.Contains(4))

	s.Remove(1)
	require.False(t, s.Contains(1))
	require.Equal(t, 3, s.Len())

	got := slices.Sorted(s.Values())
	require.Equal(t, []int{2, 3, 4}, got)
}
