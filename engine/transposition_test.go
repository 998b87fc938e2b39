package engine

import "testing"

func TestTransTableGetSet(t *testing.T) {
	tt := NewTransTable()
	if _, ok := tt.Get(42); ok {
		t.Fatalf("empty table reported a hit")
	}

	tt.Set(42, -300)
	score, ok := tt.Get(42)
	if !ok || score != -300 {
		t.Fatalf("got (%d,%v), want (-300,true)", score, ok)
	}

	tt.Set(42, 150)
	if score, _ := tt.Get(42); score != 150 {
		t.Fatalf("overwrite failed: got %d", score)
	}
	if tt.Len() != 1 {
		t.Fatalf("overwrite should not grow the table")
	}
}

func TestTransTablesAreIndependent(t *testing.T) {
	a := NewTransTable()
	a.Set(7, 100)
	b := NewTransTable()
	if _, ok := b.Get(7); ok {
		t.Fatalf("fresh table sees another table's entries")
	}
}
