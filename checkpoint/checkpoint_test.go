package checkpoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/soup/lattice"
)

func sampleState(L int) State {
	lt := lattice.New(L)
	lt.Set(0, 0, lattice.Cell{D: 0.123456789, B: 1, C: 2.5, Attached: true, Ring: 3})
	lt.Set(1, 1, lattice.Cell{D: 0.987654321, B: 0, C: 0, Attached: false, Ring: 0})
	return State{Lattice: lt, ROld: 4, RNew: 5, T: 100}
}

// Scenario E — checkpoint round trip: every cell identical to 10
// decimals; header identical.
func TestRoundTrip(t *testing.T) {
	L := 9
	want := sampleState(L)
	path := filepath.Join(t.TempDir(), "snapshot.chk")

	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path, L)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.ROld != want.ROld || got.RNew != want.RNew || got.T != want.T {
		t.Errorf("header mismatch: got (%d,%d,%d) want (%d,%d,%d)",
			got.ROld, got.RNew, got.T, want.ROld, want.RNew, want.T)
	}

	for i := 0; i < L; i++ {
		for j := 0; j < L; j++ {
			gc := got.Lattice.At(i, j)
			wc := want.Lattice.At(i, j)
			if gc != wc {
				t.Errorf("cell (%d,%d) = %+v, want %+v", i, j, gc, wc)
			}
		}
	}
}

func TestLoadRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.chk")
	if err := os.WriteFile(path, []byte("0.0 0.0 0.0 0 0\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	_, err := Load(path, 5)
	if err == nil {
		t.Fatal("expected error for truncated checkpoint, got nil")
	}
	if _, ok := err.(*ErrMalformed); !ok {
		t.Errorf("error = %T, want *ErrMalformed", err)
	}
}

func TestLoadToleratesExtraWhitespace(t *testing.T) {
	L := 2
	content := "0.0000000000   1.0000000000 0.0000000000   0   0\n" +
		"\t0.5000000000 0.0 0.0 0 0\n" +
		"0.0 0.0 0.0 1   7\n" +
		"0.25 0.0 0.0 0 0\n" +
		"  3   4   200 \n"
	path := filepath.Join(t.TempDir(), "ws.chk")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	got, err := Load(path, L)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ROld != 3 || got.RNew != 4 || got.T != 200 {
		t.Errorf("header = (%d,%d,%d), want (3,4,200)", got.ROld, got.RNew, got.T)
	}
	if c := got.Lattice.At(0, 0); c.B != 1 {
		t.Errorf("cell(0,0).B = %v, want 1", c.B)
	}
}
