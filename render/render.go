// Package render writes the bespoke PPM (P3 ASCII) checkpoint-adjacent
// image format of spec.md §6: a ten-line parameter-comment header
// followed by L×L RGB pixel triples, palette selected by tick parity.
//
// This is deliberately hand-rolled against bufio/fmt rather than via an
// image-encoding library: the wire format (comment-metadata block,
// exact palette-index arithmetic) is a bespoke contract the spec binds
// byte-for-byte, not something any general-purpose PPM/image package
// produces — see DESIGN.md.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pthm-cable/soup/config"
	"github.com/pthm-cable/soup/lattice"
)

// Comments carries the two free-form comment lines written into the
// PPM header (spec.md §6).
type Comments struct {
	Line1 string
	Line2 string
}

// WriteTo writes a PPM rendering of lt to w for tick t, using the
// dynamics parameters to select palette bounds and header metadata.
func WriteTo(w io.Writer, lt *lattice.Lattice, p config.Parameters, t int32, comments Comments) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprint(bw, "P3\n"); err != nil {
		return err
	}
	for _, kv := range []struct {
		name  string
		value float64
	}{
		{"rho", p.Rho}, {"h", float64(p.H)}, {"p", p.P}, {"beta", p.Beta},
		{"alpha", p.Alpha}, {"theta", p.Theta}, {"kappa", p.Kappa},
		{"mu", p.Mu}, {"gamma", p.Gamma}, {"sigma", p.Sigma},
	} {
		if _, err := fmt.Fprintf(bw, "#%s:%s\n", kv.name, strconv.FormatFloat(kv.value, 'g', -1, 64)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "#L:%d\n", p.L); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "#Z:%d\n", p.Zoom); err != nil {
		return err
	}
	if _, err := fmt.Fprint(bw, "#: no : no : no\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "#: %s\n", comments.Line1); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "#: %s\n", comments.Line2); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(bw, "%d %d\n255\n", p.L, p.L); err != nil {
		return err
	}

	odd := t%2 != 0
	for i := 0; i < p.L; i++ {
		for j := 0; j < p.L; j++ {
			c := lt.At(i, j)
			rgb := pixelColor(c, p, odd)
			if _, err := fmt.Fprintf(bw, "%d %d %d\n", rgb.R, rgb.G, rgb.B); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WritePPM writes the PPM rendering of lt at tick t to path.
func WritePPM(path string, lt *lattice.Lattice, p config.Parameters, t int32, comments Comments) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating PPM file: %w", err)
	}
	defer f.Close()
	if err := WriteTo(f, lt, p, t, comments); err != nil {
		return fmt.Errorf("writing PPM: %w", err)
	}
	return nil
}

// PixelColor returns the color a single cell would render as at tick
// parity odd, the same mapping WriteTo uses per pixel. Exposed for the
// live viewer (cmd/snowview), which draws directly to a texture instead
// of through the PPM format.
func PixelColor(c lattice.Cell, p config.Parameters, odd bool) RGB {
	return pixelColor(c, p, odd)
}

func pixelColor(c lattice.Cell, p config.Parameters, odd bool) RGB {
	if !c.Attached {
		return offColor(c, p)
	}
	if odd {
		return onColorOdd(c, p)
	}
	return onColorEven(c, p)
}

func offColor(c lattice.Cell, p config.Parameters) RGB {
	idx := 0
	if p.Rho > 0 {
		idx = int(63 * c.D / p.Rho)
	}
	return offRamp[clampIndex(idx, 63)]
}

func onColorOdd(c lattice.Cell, p config.Parameters) RGB {
	denom := p.Beta - p.Alpha
	idx := 0
	if denom != 0 {
		idx = int(33 * (c.C + c.D - p.Alpha) / denom)
	}
	return onRamp[clampIndex(idx, 32)]
}

// onColorEven implements the even-t ring palette plus the high-ice
// overlay (spec.md §6): cells whose ice exceeds the lowest of the four
// thresholds (0.2 of (beta-1) above 1) are drawn from a 4-tier overlay
// instead of the ring-index palette.
func onColorEven(c lattice.Cell, p config.Parameters) RGB {
	span := p.Beta - 1
	switch {
	case c.C >= p.Beta:
		return highIceOverlay[3]
	case c.C >= 1+0.7*span:
		return highIceOverlay[2]
	case c.C >= 1+0.5*span:
		return highIceOverlay[1]
	case c.C > 1+0.2*span:
		return highIceOverlay[0]
	}
	return braqueRamp[clampIndex(c.Ring%64, 63)]
}
