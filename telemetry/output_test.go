package telemetry

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewOutputManager_EmptyDirDisablesOutput(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager(\"\") error = %v", err)
	}
	if om != nil {
		t.Errorf("expected nil OutputManager for empty dir")
	}
	// All write methods must be no-ops on a nil receiver.
	if err := om.WriteTick(TickStats{}); err != nil {
		t.Errorf("WriteTick on nil manager should be a no-op, got %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("Close on nil manager should be a no-op, got %v", err)
	}
}

func TestOutputManager_WritesCSVFiles(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager() error = %v", err)
	}
	defer om.Close()

	if err := om.WriteTick(TickStats{Tick: 1, AttachedCount: 7, RNew: 1, TotalMass: 10}); err != nil {
		t.Fatalf("WriteTick() error = %v", err)
	}
	if err := om.WriteTick(TickStats{Tick: 2, AttachedCount: 13, RNew: 2, TotalMass: 10}); err != nil {
		t.Fatalf("WriteTick() error = %v", err)
	}
	if err := om.WriteBookmark(Bookmark{Type: BookmarkRingAdvance, Tick: 2, Description: "test"}); err != nil {
		t.Fatalf("WriteBookmark() error = %v", err)
	}

	for _, name := range []string{"telemetry.csv", "perf.csv", "bookmarks.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
}
