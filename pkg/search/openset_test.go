package search

import "testing"

func TestOpenSetOrdersByKey(t *testing.T) {
	os := NewOpenSet()
	nodes := []*SearchNode{
		{ID: 0, KeyVal: Key{K1: 5, K2: 0}},
		{ID: 1, KeyVal: Key{K1: 1, K2: 0}},
		{ID: 2, KeyVal: Key{K1: 3, K2: 0}},
		{ID: 3, KeyVal: Key{K1: 1, K2: -1}},
	}
	for _, n := range nodes {
		n.heapIndex = -1
		os.Push(n)
	}

	var order []int
	for !os.Empty() {
		order = append(order, os.Pop().ID)
	}

	want := []int{3, 1, 2, 0}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order = %v, want %v", order, want)
			break
		}
	}
}

func TestOpenSetFixReordersOnKeyDecrease(t *testing.T) {
	os := NewOpenSet()
	a := &SearchNode{ID: 0, KeyVal: Key{K1: 10}, heapIndex: -1}
	b := &SearchNode{ID: 1, KeyVal: Key{K1: 20}, heapIndex: -1}
	os.Push(a)
	os.Push(b)

	b.KeyVal = Key{K1: 1}
	os.Fix(b)

	if got := os.Pop().ID; got != 1 {
		t.Errorf("Pop() = %v, want 1", got)
	}
}

func TestOpenSetRemove(t *testing.T) {
	os := NewOpenSet()
	a := &SearchNode{ID: 0, KeyVal: Key{K1: 1}, heapIndex: -1}
	b := &SearchNode{ID: 1, KeyVal: Key{K1: 2}, heapIndex: -1}
	c := &SearchNode{ID: 2, KeyVal: Key{K1: 3}, heapIndex: -1}
	os.Push(a)
	os.Push(b)
	os.Push(c)

	os.Remove(b)
	if os.Contains(b) {
		t.Error("Contains(b) = true after Remove")
	}
	if os.Len() != 2 {
		t.Errorf("Len() = %d, want 2", os.Len())
	}

	first := os.Pop().ID
	second := os.Pop().ID
	if first != 0 || second != 2 {
		t.Errorf("pop order = %v, %v, want 0, 2", first, second)
	}
}

func TestKeyLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want bool
	}{
		{"lower k1 wins", Key{K1: 1, K2: 5}, Key{K1: 2, K2: 0}, true},
		{"higher k1 loses", Key{K1: 2, K2: 0}, Key{K1: 1, K2: 5}, false},
		{"tie on k1 breaks on k2", Key{K1: 1, K2: 1}, Key{K1: 1, K2: 2}, true},
		{"equal keys neither less", Key{K1: 1, K2: 1}, Key{K1: 1, K2: 1}, false},
		{"within epsilon treated equal", Key{K1: 1, K2: 1}, Key{K1: 1 + eps/2, K2: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.want {
				t.Errorf("Less() = %v, want %v", got, tt.want)
			}
		})
	}
}
