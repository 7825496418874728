package item

import (
	"cmp"
	"fmt"
)

// Item is a value tagged with the index of the sequence it originated from.
type Item[V cmp.Ordered] struct {
	Value  V
	Source int
}

// New returns an Item holding value, tagged with source.
func New[V cmp.Ordered](value V, source int) Item[V] {
	return Item[V]{Value: value, Source: source}
}

// Compare orders items by Value only.
func (i Item[V]) Compare(other Item[V]) int {
	return cmp.Compare(i.Value, other.Value)
}

// Less reports whether i orders strictly before other.
func (i Item[V]) Less(other Item[V]) bool {
	return i.Compare(other) < 0
}

func (i Item[V]) String() string {
	return fmt.Sprint(i.Value)
}

// Less is the function form of Item.Less, suitable for heap.New.
func Less[V cmp.Ordered](a, b Item[V]) bool {
	return a.Less(b)
}

// Wrap tags every value of values with source.
func Wrap[V cmp.Ordered](source int, values ...V) []Item[V] {
	items := make([]Item[V], len(values))
	for i, v := range values {
		items[i] = New(v, source)
	}
	return items
}

// Unwrap strips the provenance tags from items.
func Unwrap[V cmp.Ordered](items []Item[V]) []V {
	values := make([]V, len(items))
	for i, it := range items {
		values[i] = it.Value
	}
	return values
}
