package products

import (
	"context"
	"testing"
)

func TestMemStore_Get(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	for id, name := range map[int64]string{121: "Laptop", 122: "Phone", 123: "Headphones"} {
		p, ok, err := s.Get(ctx, id)
		if err != nil {
			t.Fatalf("get %d: %v", id, err)
		}
		if !ok {
			t.Fatalf("get %d: not found", id)
		}
		if p.ID != id || p.Name != name {
			t.Fatalf("get %d = %+v, want {%d %s}", id, p, id, name)
		}
	}

	for _, id := range []int64{0, -1, 120, 124, 1000000} {
		_, ok, err := s.Get(ctx, id)
		if err != nil {
			t.Fatalf("get %d: %v", id, err)
		}
		if ok {
			t.Fatalf("get %d: unexpectedly found", id)
		}
	}
}

func TestMemStore_ListSortedByID(t *testing.T) {
	s := NewMemStore()

	got, err := s.ListSortedByID(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d want=3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].ID >= got[i].ID {
			t.Fatalf("not sorted: %v", got)
		}
	}
	if got[0].ID != 121 || got[2].ID != 123 {
		t.Fatalf("unexpected ids: %v", got)
	}
}
