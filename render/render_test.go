package render

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/pthm-cable/soup/config"
	"github.com/pthm-cable/soup/lattice"
)

func TestWriteToHeaderAndDimensions(t *testing.T) {
	p, err := config.Default()
	if err != nil {
		t.Fatalf("config.Default() error = %v", err)
	}
	p.L = 3
	lt := lattice.New(p.L)

	var buf bytes.Buffer
	if err := WriteTo(&buf, lt, p, 2, Comments{"first", "second"}); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}

	sc := bufio.NewScanner(&buf)
	lines := []string{}
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}

	if lines[0] != "P3" {
		t.Errorf("line 0 = %q, want P3", lines[0])
	}
	wantPrefixes := []string{"#rho:", "#h:", "#p:", "#beta:", "#alpha:", "#theta:", "#kappa:", "#mu:", "#gamma:", "#sigma:"}
	for k, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[1+k], prefix) {
			t.Errorf("line %d = %q, want prefix %q", 1+k, lines[1+k], prefix)
		}
	}
	if !strings.HasPrefix(lines[11], "#L:") {
		t.Errorf("line 11 = %q, want #L: prefix", lines[11])
	}
	if !strings.HasPrefix(lines[12], "#Z:") {
		t.Errorf("line 12 = %q, want #Z: prefix", lines[12])
	}
	if lines[13] != "#: no : no : no" {
		t.Errorf("line 13 = %q, want sentinel comment", lines[13])
	}
	if lines[14] != "#: first" || lines[15] != "#: second" {
		t.Errorf("comment lines = %q, %q", lines[14], lines[15])
	}
	if lines[16] != "3 3" {
		t.Errorf("dimensions line = %q, want \"3 3\"", lines[16])
	}
	if lines[17] != "255" {
		t.Errorf("maxval line = %q, want 255", lines[17])
	}
	if got, want := len(lines)-18, p.L*p.L; got != want {
		t.Errorf("pixel row count = %d, want %d", got, want)
	}
}

func TestOffColorClampedToRange(t *testing.T) {
	p, _ := config.Default()
	p.Rho = 1
	c := lattice.Cell{D: 5} // far beyond rho, must clamp
	rgb := offColor(c, p)
	if rgb != offRamp[63] {
		t.Errorf("offColor() = %v, want the top of the ramp", rgb)
	}
}

func TestOnColorEvenHighIceOverlay(t *testing.T) {
	p, _ := config.Default()
	p.Beta = 2
	c := lattice.Cell{C: p.Beta, Attached: true}
	if got := onColorEven(c, p); got != highIceOverlay[3] {
		t.Errorf("onColorEven() = %v, want top overlay tier", got)
	}
}
