// Package lattice implements the fixed L×L hexagonal grid that the
// crystal-growth dynamics run on: neighbor lookup with toroidal wrap and
// the per-cell mass/attachment record.
package lattice

// Cell is the per-site record: vapor (d), boundary/quasi-liquid (b) and
// crystalline (c) mass, the attachment flag, and the ring index assigned
// at attachment time.
type Cell struct {
	D        float64
	B        float64
	C        float64
	Attached bool
	Ring     int
}

// Coord is a lattice site.
type Coord struct {
	I, J int
}

// Lattice is a fixed-size L×L hexagonal grid stored row-major. The
// hexagonal topology comes entirely from the neighbor rule in Neighbors;
// storage is a plain square array, following the teacher's flat
// []TerrainCell-over-width grid (systems/terrain.go) rather than a
// slice-of-slices.
type Lattice struct {
	L     int
	cells []Cell
}

// New allocates an L×L lattice with zero-valued cells.
func New(L int) *Lattice {
	return &Lattice{L: L, cells: make([]Cell, L*L)}
}

func (lt *Lattice) index(i, j int) int {
	i = wrap(i, lt.L)
	j = wrap(j, lt.L)
	return i*lt.L + j
}

func wrap(v, L int) int {
	v %= L
	if v < 0 {
		v += L
	}
	return v
}

// At returns the cell at (i,j), wrapping out-of-range coordinates.
func (lt *Lattice) At(i, j int) Cell {
	return lt.cells[lt.index(i, j)]
}

// Set overwrites the cell at (i,j), wrapping out-of-range coordinates.
func (lt *Lattice) Set(i, j int, c Cell) {
	lt.cells[lt.index(i, j)] = c
}

// AtPtr returns a pointer to the cell at (i,j) for in-place mutation.
func (lt *Lattice) AtPtr(i, j int) *Cell {
	return &lt.cells[lt.index(i, j)]
}

// NeighborOffsets is the fixed six-neighbor enumeration order: N, S, W, E,
// NE, SW, matching spec.md's listing (i+1,j) (i-1,j) (i,j+1) (i,j-1)
// (i-1,j+1) (i+1,j-1).
var NeighborOffsets = [6]Coord{
	{1, 0},  // N
	{-1, 0}, // S
	{0, 1},  // W
	{0, -1}, // E
	{-1, 1}, // NE
	{1, -1}, // SW
}

// Neighbors returns the six hexagonal neighbors of (i,j) in the fixed
// order N, S, W, E, NE, SW, each coordinate reduced modulo L.
func (lt *Lattice) Neighbors(i, j int) [6]Coord {
	var out [6]Coord
	for k, off := range NeighborOffsets {
		out[k] = Coord{wrap(i+off.I, lt.L), wrap(j+off.J, lt.L)}
	}
	return out
}

// AttachedNeighborCount returns the number of the six neighbors of (i,j)
// that are attached.
func (lt *Lattice) AttachedNeighborCount(i, j int) int {
	k := 0
	for _, n := range lt.Neighbors(i, j) {
		if lt.At(n.I, n.J).Attached {
			k++
		}
	}
	return k
}

// LInfDistance returns the L∞ distance from (i,j) to (ci,cj), the metric
// used for the frontier radius.
func LInfDistance(i, j, ci, cj int) int {
	di := abs(i - ci)
	dj := abs(j - cj)
	if di > dj {
		return di
	}
	return dj
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ForEach visits every cell in row-major order.
func (lt *Lattice) ForEach(fn func(i, j int, c Cell)) {
	for i := 0; i < lt.L; i++ {
		for j := 0; j < lt.L; j++ {
			fn(i, j, lt.cells[i*lt.L+j])
		}
	}
}

// TotalMass returns Σ(d+b+c) over the whole lattice.
func (lt *Lattice) TotalMass() float64 {
	var total float64
	for _, c := range lt.cells {
		total += c.D + c.B + c.C
	}
	return total
}

// Clone returns a deep copy of the lattice.
func (lt *Lattice) Clone() *Lattice {
	out := &Lattice{L: lt.L, cells: make([]Cell, len(lt.cells))}
	copy(out.cells, lt.cells)
	return out
}
