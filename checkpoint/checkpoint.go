// Package checkpoint implements the text checkpoint format of spec.md
// §6: per-cell "d b c attached ring" records in row-major order,
// followed by "r_old r_new t".
package checkpoint

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/pthm-cable/soup/lattice"
)

// floatPrecision is the number of fractional digits the spec mandates
// for the real fields.
const floatPrecision = 10

// State is the full on-disk checkpoint payload: the lattice plus the
// small header (r_old, r_new, t).
type State struct {
	Lattice *lattice.Lattice
	ROld    int
	RNew    int
	T       int32
}

// ErrMalformed is returned by Load when the file has fewer than
// 5*L*L+3 tokens, or a token fails to parse, carrying the token offset
// at which the problem was found (spec.md §7, CheckpointMalformed).
type ErrMalformed struct {
	Offset int
	Reason string
}

func (e *ErrMalformed) Error() string {
	return fmt.Sprintf("checkpoint malformed at token %d: %s", e.Offset, e.Reason)
}

// Save writes the engine state to path in the spec.md §6 text format.
func Save(path string, state State) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating checkpoint file: %w", err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	lt := state.Lattice
	var writeErr error
	lt.ForEach(func(i, j int, c lattice.Cell) {
		if writeErr != nil {
			return
		}
		_, writeErr = fmt.Fprintf(w, "%s %s %s %s %d\n",
			formatFloat(c.D), formatFloat(c.B), formatFloat(c.C),
			boolDigit(c.Attached), c.Ring)
	})
	if writeErr != nil {
		return fmt.Errorf("writing checkpoint records: %w", writeErr)
	}
	if _, err := fmt.Fprintf(w, "%d %d %d\n", state.ROld, state.RNew, state.T); err != nil {
		return fmt.Errorf("writing checkpoint header: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing checkpoint file: %w", err)
	}
	return nil
}

// Load reads a checkpoint file for a lattice of size L, tolerating any
// whitespace between fields. Returns ErrMalformed if the file has fewer
// than 5*L*L+3 tokens or a token fails to parse as the expected type.
func Load(path string, L int) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("opening checkpoint file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	lt := lattice.New(L)
	n := L * L
	offset := 0

	nextToken := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		offset++
		return sc.Text(), true
	}

	for idx := 0; idx < n; idx++ {
		i, j := idx/L, idx%L

		dTok, ok := nextToken()
		if !ok {
			return State{}, &ErrMalformed{offset, "expected d field, file truncated"}
		}
		d, err := strconv.ParseFloat(dTok, 64)
		if err != nil {
			return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing d: %v", err)}
		}

		bTok, ok := nextToken()
		if !ok {
			return State{}, &ErrMalformed{offset, "expected b field, file truncated"}
		}
		b, err := strconv.ParseFloat(bTok, 64)
		if err != nil {
			return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing b: %v", err)}
		}

		cTok, ok := nextToken()
		if !ok {
			return State{}, &ErrMalformed{offset, "expected c field, file truncated"}
		}
		c, err := strconv.ParseFloat(cTok, 64)
		if err != nil {
			return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing c: %v", err)}
		}

		aTok, ok := nextToken()
		if !ok {
			return State{}, &ErrMalformed{offset, "expected attached field, file truncated"}
		}
		attached, err := strconv.Atoi(aTok)
		if err != nil {
			return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing attached: %v", err)}
		}

		rTok, ok := nextToken()
		if !ok {
			return State{}, &ErrMalformed{offset, "expected ring field, file truncated"}
		}
		ring, err := strconv.Atoi(rTok)
		if err != nil {
			return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing ring: %v", err)}
		}

		lt.Set(i, j, lattice.Cell{D: d, B: b, C: c, Attached: attached != 0, Ring: ring})
	}

	rOldTok, ok := nextToken()
	if !ok {
		return State{}, &ErrMalformed{offset, "expected r_old, file truncated"}
	}
	rOld, err := strconv.Atoi(rOldTok)
	if err != nil {
		return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing r_old: %v", err)}
	}

	rNewTok, ok := nextToken()
	if !ok {
		return State{}, &ErrMalformed{offset, "expected r_new, file truncated"}
	}
	rNew, err := strconv.Atoi(rNewTok)
	if err != nil {
		return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing r_new: %v", err)}
	}

	tTok, ok := nextToken()
	if !ok {
		return State{}, &ErrMalformed{offset, "expected t, file truncated"}
	}
	tVal, err := strconv.Atoi(tTok)
	if err != nil {
		return State{}, &ErrMalformed{offset, fmt.Sprintf("parsing t: %v", err)}
	}

	if err := sc.Err(); err != nil {
		return State{}, fmt.Errorf("reading checkpoint file: %w", err)
	}

	return State{Lattice: lt, ROld: rOld, RNew: rNew, T: int32(tVal)}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', floatPrecision, 64)
}

func boolDigit(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
