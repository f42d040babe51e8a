// Package diag renders plain-text structural and state diagnostics for a
// Kogge-Stone adder's layer hierarchy, and counts its component cells and
// nets, deduplicating by the arena's stable integer IDs.
package diag

import (
	"fmt"
	"strings"

	"github.com/silinet/transistorsim/core"
	"github.com/silinet/transistorsim/ksa"
)

func glyph(k ksa.NodeKind) string {
	switch k {
	case ksa.NodePGCin:
		return "<"
	case ksa.NodePG:
		return "G"
	case ksa.NodeMerge:
		return "X"
	case ksa.NodeHalfMerge:
		return "Y"
	case ksa.NodeBuf:
		return "|"
	case ksa.NodeSum:
		return "S"
	default:
		return "?"
	}
}

// Outline renders one line per layer, each cell represented by its glyph,
// from the highest-order bit position down to bit 0 — mirroring the shape
// of the original's per-layer diagram without ANSI coloring or any
// interactive presentation.
func Outline(a *ksa.Adder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "width=%d height=%d\n", a.Width, len(a.Layers)-2)
	for _, layer := range a.Layers {
		glyphs := make([]string, len(layer))
		for i, n := range layer {
			glyphs[len(layer)-1-i] = glyph(n.Kind)
		}
		b.WriteString(strings.Join(glyphs, " "))
		b.WriteByte('\n')
	}
	return b.String()
}

// StateOutline is Outline plus each cell's live output state(s), read from
// e. e must belong to the same engine the adder was built against, and the
// rail must already be energized for the states to be meaningful.
func StateOutline(e *core.Engine, a *ksa.Adder) string {
	var b strings.Builder
	fmt.Fprintf(&b, "width=%d height=%d\n", a.Width, len(a.Layers)-2)
	bit := func(n core.NetID) string {
		if e.NetEnergized(n) {
			return "1"
		}
		return "0"
	}
	lastLayer := len(a.Layers) - 1
	for li, layer := range a.Layers {
		parts := make([]string, len(layer))
		for i := len(layer) - 1; i >= 0; i-- {
			n := layer[i]
			bits := make([]string, len(n.Out))
			for j, net := range n.Out {
				bits[j] = bit(net)
			}
			parts[len(layer)-1-i] = glyph(n.Kind) + strings.Join(bits, "")
		}
		line := strings.Join(parts, " ")
		switch li {
		case 0:
			line = fmt.Sprintf("%s  Ci%s", line, bit(a.Cin))
		case lastLayer:
			line = fmt.Sprintf("Co%s %s", bit(a.Cout), line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Counts summarizes a structural walk of an adder's layer hierarchy.
type Counts struct {
	Cells int
	Nets  int
}

// WalkOptions configures Walk. OnCell, if set, is invoked once per cell in
// layer order, before it contributes to the running counts.
type WalkOptions struct {
	OnCell func(layer int, n ksa.Node)
}

// Walk counts the cells listed in the adder's layers and the distinct nets
// among those cells' outputs and the adder's terminals, deduplicating nets
// by their arena-stable NetID rather than object identity. Sub-cells, nets
// internal to a cell, and bridges are not counted.
func Walk(a *ksa.Adder) Counts {
	return WalkOpts(a, nil)
}

// WalkOpts is Walk with an optional per-cell observer hook.
func WalkOpts(a *ksa.Adder, opts *WalkOptions) Counts {
	seen := make(map[core.NetID]struct{})
	record := func(n core.NetID) {
		seen[n] = struct{}{}
	}

	cells := 0
	for li, layer := range a.Layers {
		cells += len(layer)
		for _, n := range layer {
			if opts != nil && opts.OnCell != nil {
				opts.OnCell(li, n)
			}
			for _, net := range n.Out {
				record(net)
			}
		}
	}
	for _, n := range a.A {
		record(n)
	}
	for _, n := range a.B {
		record(n)
	}
	record(a.Cin)
	for _, n := range a.Sum {
		record(n)
	}
	record(a.Cout)

	return Counts{Cells: cells, Nets: len(seen)}
}
