package contains

import "strings"

// Text adapts a string to Container[string]: it holds an item iff the item
// occurs as a contiguous substring. Matching is case-sensitive and the empty
// string matches vacuously, as with [strings.Contains].
type Text string

func (t Text) Contains(item string) bool {
	return strings.Contains(string(t), item)
}
