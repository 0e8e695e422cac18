package lattice

import "testing"

func TestNeighborsWrapAround(t *testing.T) {
	lt := New(5)
	got := lt.Neighbors(0, 0)
	want := [6]Coord{
		{1, 0}, {4, 0}, {0, 1}, {0, 4}, {4, 1}, {1, 4},
	}
	if got != want {
		t.Errorf("Neighbors(0,0) = %v, want %v", got, want)
	}
}

func TestNeighborsOrderInterior(t *testing.T) {
	lt := New(11)
	got := lt.Neighbors(5, 5)
	want := [6]Coord{
		{6, 5}, {4, 5}, {5, 6}, {5, 4}, {4, 6}, {6, 4},
	}
	if got != want {
		t.Errorf("Neighbors(5,5) = %v, want %v", got, want)
	}
}

func TestAttachedNeighborCount(t *testing.T) {
	lt := New(7)
	lt.Set(3, 3, Cell{Attached: true})
	for _, n := range lt.Neighbors(3, 3) {
		if got := lt.AttachedNeighborCount(n.I, n.J); got != 1 {
			t.Errorf("AttachedNeighborCount(%d,%d) = %d, want 1", n.I, n.J, got)
		}
	}
	if got := lt.AttachedNeighborCount(3, 3); got != 0 {
		t.Errorf("center has no attached neighbors, got %d", got)
	}
}

func TestTotalMassAndClone(t *testing.T) {
	lt := New(3)
	lt.ForEach(func(i, j int, c Cell) {})
	lt.Set(0, 0, Cell{D: 1, B: 2, C: 3})
	lt.Set(1, 1, Cell{D: 0.5})
	if got, want := lt.TotalMass(), 6.5; got != want {
		t.Errorf("TotalMass() = %v, want %v", got, want)
	}
	clone := lt.Clone()
	clone.Set(0, 0, Cell{})
	if lt.At(0, 0).D != 1 {
		t.Errorf("Clone should be independent of the original")
	}
}

func TestLInfDistance(t *testing.T) {
	cases := []struct {
		i, j, ci, cj, want int
	}{
		{0, 0, 0, 0, 0},
		{3, 1, 0, 0, 3},
		{1, 5, 0, 0, 5},
		{-2, -2, 0, 0, 2},
	}
	for _, c := range cases {
		if got := LInfDistance(c.i, c.j, c.ci, c.cj); got != c.want {
			t.Errorf("LInfDistance(%d,%d,%d,%d) = %d, want %d", c.i, c.j, c.ci, c.cj, got, c.want)
		}
	}
}
