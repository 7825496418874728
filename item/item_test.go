package item_test

import (
	"testing"

	"github.com/davidvella/kway/item"
	"github.com/stretchr/testify/assert"
)

func TestItem_Compare(t *testing.T) {
	tests := []struct {
		name string
		a    item.Item[int]
		b    item.Item[int]
		want int
	}{
		{name: "smaller", a: item.New(1, 0), b: item.New(2, 0), want: -1},
		{name: "larger", a: item.New(5, 0), b: item.New(-5, 0), want: 1},
		{name: "equal values same source", a: item.New(3, 1), b: item.New(3, 1), want: 0},
		{name: "equal values different source", a: item.New(3, 0), b: item.New(3, 7), want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
			assert.Equal(t, tt.want < 0, item.Less(tt.a, tt.b))
		})
	}
}

func TestItem_String(t *testing.T) {
	assert.Equal(t, "42", item.New(42, 9).String())
	assert.Equal(t, "kiwi", item.New("kiwi", 0).String())
}

func TestWrapUnwrap(t *testing.T) {
	items := item.Wrap(4, 1, 2, 3)

	assert.Equal(t, []item.Item[int]{
		{Value: 1, Source: 4},
		{Value: 2, Source: 4},
		{Value: 3, Source: 4},
	}, items)
	assert.Equal(t, []int{1, 2, 3}, item.Unwrap(items))
	assert.Empty(t, item.Wrap[int](0))
}
