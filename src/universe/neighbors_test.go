package universe

import "testing"

//newColumnUniverse returns the 4x4 grid used by the neighbor and tick tests
/*
  0 1 2 3
0 . . . .
1 . O . .
2 . O . .
3 . O . .
*/
func newColumnUniverse(t testing.TB) *Universe {
	u := New(4, 4)
	for _, row := range []uint32{1, 2, 3} {
		if err := u.Set(row, 1, Alive); err != nil {
			t.Fatalf("set %d,1: %v", row, err)
		}
	}
	return u
}

func TestLiveNeighborCount(t *testing.T) {
	u := newColumnUniverse(t)
	cases := []struct {
		row, column uint32
		want        uint8
	}{
		{0, 0, 2},
		{0, 1, 2},
		{0, 2, 2},
		{0, 3, 0},
		{2, 2, 3},
		{3, 0, 2},
	}
	for _, c := range cases {
		if got := u.LiveNeighborCount(c.row, c.column); got != c.want {
			t.Errorf("LiveNeighborCount(%d, %d) = %d, want %d", c.row, c.column, got, c.want)
		}
	}
}

func TestLiveNeighborCountCornerWraps(t *testing.T) {
	const w, h = 5, 6
	neighbors := [][2]uint32{
		{h - 1, w - 1}, {h - 1, 0}, {h - 1, 1},
		{0, w - 1}, {0, 1},
		{1, w - 1}, {1, 0}, {1, 1},
	}
	for i, n := range neighbors {
		u := New(w, h)
		if err := u.Set(n[0], n[1], Alive); err != nil {
			t.Fatal(err)
		}
		if got := u.LiveNeighborCount(0, 0); got != 1 {
			t.Errorf("neighbor %d at %v: count = %d, want 1", i, n, got)
		}
	}

	u := New(w, h)
	if err := u.Settle(neighbors); err != nil {
		t.Fatal(err)
	}
	if got := u.LiveNeighborCount(0, 0); got != 8 {
		t.Errorf("all neighbors alive: count = %d, want 8", got)
	}
	//the cell itself is not a neighbor
	if err := u.Set(0, 0, Alive); err != nil {
		t.Fatal(err)
	}
	if got := u.LiveNeighborCount(0, 0); got != 8 {
		t.Errorf("self alive: count = %d, want 8", got)
	}
}

func TestLiveNeighborCountFarCorner(t *testing.T) {
	u := New(3, 4)
	if err := u.Set(0, 0, Alive); err != nil {
		t.Fatal(err)
	}
	if got := u.LiveNeighborCount(3, 2); got != 1 {
		t.Errorf("LiveNeighborCount(3, 2) = %d, want 1", got)
	}
	if got := u.LiveNeighborCount(2, 1); got != 0 {
		t.Errorf("LiveNeighborCount(2, 1) = %d, want 0", got)
	}
}
