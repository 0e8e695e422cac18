package render

// RGB is one 8-bit-per-channel pixel color.
type RGB struct {
	R, G, B uint8
}

// offRamp is the 64-entry grayscale ramp used for non-attached cells,
// indexed by floor(63*d/rho) clamped to [0,63] (spec.md §6).
var offRamp = buildOffRamp()

func buildOffRamp() [64]RGB {
	var ramp [64]RGB
	for i := range ramp {
		v := uint8(i * 255 / 63)
		ramp[i] = RGB{v, v, v}
	}
	return ramp
}

// onRamp is the 33-entry blue ramp for attached cells under the odd-t
// palette, indexed by floor(33*(c+d-alpha)/(beta-alpha)) clamped to [0,32].
var onRamp = buildOnRamp()

func buildOnRamp() [33]RGB {
	var ramp [33]RGB
	for i := range ramp {
		v := uint8(i * 255 / 32)
		ramp[i] = RGB{0, 0, 64 + uint8(int(v)*191/255)}
	}
	return ramp
}

// braqueRamp is the 64-entry ring-coloring palette used for even-t
// frames, indexed by ring mod 64 — a muted, cubist-inspired palette of
// browns, ochres and greys (hence "Braque").
var braqueRamp = buildBraqueRamp()

func buildBraqueRamp() [64]RGB {
	var ramp [64]RGB
	for i := range ramp {
		t := float64(i) / 63
		r := 60 + t*140
		g := 50 + t*110
		b := 40 + t*80
		ramp[i] = RGB{uint8(r), uint8(g), uint8(b)}
	}
	return ramp
}

// highIceOverlay is the 4-tier overlay palette for cells whose ice mass
// exceeds 1+0.2*(beta-1), at thresholds 0.2, 0.5, 0.7 of (beta-1) above
// 1, plus >= beta (spec.md §6, even-t palette).
var highIceOverlay = [4]RGB{
	{200, 220, 255},
	{160, 190, 255},
	{110, 150, 240},
	{255, 255, 255},
}

func clampIndex(idx, maxIdx int) int {
	if idx < 0 {
		return 0
	}
	if idx > maxIdx {
		return maxIdx
	}
	return idx
}
