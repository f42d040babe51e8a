// Package ksa composes the cells package's propagate/generate and merge
// gates into a radix-2 Kogge-Stone parallel-prefix adder: a generate layer,
// log2(width) prefix-merge layers, and a final sum layer, with a single
// carry-in threaded through the bit-0 generate term.
package ksa

import (
	"fmt"

	"github.com/silinet/transistorsim/cells"
	"github.com/silinet/transistorsim/core"
)

// Supported adder widths.
const (
	Width16 = 16
	Width32 = 32
	Width64 = 64
)

// Adder is a width-bit Kogge-Stone adder: width independent operand bits
// (LSB first) in, width sum bits and one carry-out, out.
type Adder struct {
	Width  int
	A      []core.NetID
	B      []core.NetID
	Cin    core.NetID
	Sum    []core.NetID
	Cout   core.NetID
	Layers [][]Node
}

// NodeKind tags which cell built a Node, for diagnostic rendering.
type NodeKind uint8

const (
	NodePGCin NodeKind = iota
	NodePG
	NodeMerge
	NodeHalfMerge
	NodeBuf
	NodeSum
)

// Node is one cell's diagnostic footprint: its kind and its output net(s),
// in (P, G) order for dual-output kinds.
type Node struct {
	Kind NodeKind
	Out  []core.NetID
}

// pgNode is the uniform view over a generate-layer cell: PGCin at bit 0,
// plain PG everywhere else. Only bit 0 has a meaningful cin field.
type pgNode struct {
	i   [2]core.NetID
	o   [2]core.NetID
	cin core.NetID
}

func heightFor(width int) (int, error) {
	switch width {
	case Width16:
		return 4, nil
	case Width32:
		return 5, nil
	case Width64:
		return 6, nil
	default:
		return 0, fmt.Errorf("ksa: unsupported width %d (want %d, %d or %d)", width, Width16, Width32, Width64)
	}
}

// New builds a Kogge-Stone adder of the given width against e. width must
// be 16, 32 or 64.
func New(e *core.Engine, width int) (*Adder, error) {
	height, err := heightFor(width)
	if err != nil {
		return nil, err
	}

	layers := make([][]Node, 0, height+2)

	pgs := make([]pgNode, width)
	genLayer := make([]Node, width)
	pgCin, err := cells.NewPGCin(e)
	if err != nil {
		return nil, fmt.Errorf("ksa: bit 0 generate: %w", err)
	}
	pgs[0] = pgNode{i: pgCin.I, o: pgCin.O, cin: pgCin.Cin}
	genLayer[0] = Node{Kind: NodePGCin, Out: pgCin.O[:]}
	for i := 1; i < width; i++ {
		pg, err := cells.NewPG(e)
		if err != nil {
			return nil, fmt.Errorf("ksa: bit %d generate: %w", i, err)
		}
		pgs[i] = pgNode{i: pg.I, o: pg.O}
		genLayer[i] = Node{Kind: NodePG, Out: pg.O[:]}
	}
	layers = append(layers, genLayer)

	pOrig := make([]core.NetID, width)
	pOrig[0] = pgs[0].o[0]
	for i := 1; i < width; i++ {
		n, err := e.NewNet()
		if err != nil {
			return nil, fmt.Errorf("ksa: propagate tap %d: %w", i, err)
		}
		pOrig[i] = n
	}

	// pgos[i] is the (p, g) pair for bit i+1, still to be merged.
	pgos := make([][2]core.NetID, width-1)
	for i := range pgos {
		via, err := e.NewNet()
		if err != nil {
			return nil, fmt.Errorf("ksa: carry tap %d: %w", i, err)
		}
		pgos[i] = [2]core.NetID{via, pgs[i+1].o[1]}
	}
	{
		groupP := pOrig[1:]
		groupG := make([]core.NetID, width-1)
		groupOs := make([]core.NetID, width-1)
		for i := range groupG {
			groupG[i] = pgs[i+1].o[0]
			groupOs[i] = pgos[i][0]
		}
		if err := core.InterconnectParallel(e, groupP, groupG, groupOs); err != nil {
			return nil, fmt.Errorf("ksa: generate layer fanout: %w", err)
		}
	}

	gos := []core.NetID{pgs[0].o[1]}

	for layer := 0; layer < height; layer++ {
		halfOffset := 1 << uint(layer)
		offset := halfOffset * 2
		fullCount := width - offset

		lFull := make([]cells.PGMergeR2, fullCount)
		for i := range lFull {
			c, err := cells.NewPGMergeR2(e)
			if err != nil {
				return nil, fmt.Errorf("ksa: layer %d merge %d: %w", layer, i, err)
			}
			lFull[i] = c
		}
		lHalf := make([]cells.PGHalfMergeR2, halfOffset)
		for i := range lHalf {
			c, err := cells.NewPGHalfMergeR2(e)
			if err != nil {
				return nil, fmt.Errorf("ksa: layer %d half-merge %d: %w", layer, i, err)
			}
			lHalf[i] = c
		}
		lBuf := make([]cells.BUF1, halfOffset)
		for i := range lBuf {
			c, err := cells.NewBUF1(e)
			if err != nil {
				return nil, fmt.Errorf("ksa: layer %d buffer %d: %w", layer, i, err)
			}
			lBuf[i] = c
		}

		for i, cell := range lFull {
			cell2Index := i + halfOffset
			if cell2Index < fullCount {
				cell2 := lFull[cell2Index]
				if err := core.InterconnectParallel(e, pgos[i+halfOffset][:], cell.I0[:], cell2.I1[:]); err != nil {
					return nil, fmt.Errorf("ksa: layer %d merge wiring: %w", layer, err)
				}
			} else {
				if err := core.BindingParallel(e, pgos[i+halfOffset][:], cell.I0[:]); err != nil {
					return nil, fmt.Errorf("ksa: layer %d merge edge wiring: %w", layer, err)
				}
			}
		}

		if layer != height-1 {
			for i, cell := range lHalf {
				if err := core.InterconnectParallel(e, pgos[i][:], cell.I0[:], lFull[i].I1[:]); err != nil {
					return nil, fmt.Errorf("ksa: layer %d half-merge wiring: %w", layer, err)
				}
			}
		} else {
			for i, cell := range lHalf {
				if err := core.InterconnectParallel(e, pgos[i][:], cell.I0[:]); err != nil {
					return nil, fmt.Errorf("ksa: final layer half-merge wiring: %w", err)
				}
			}
		}

		for i, cell := range lBuf {
			if _, err := e.NewInterconnect(gos[i], cell.I, lHalf[i].I1); err != nil {
				return nil, fmt.Errorf("ksa: layer %d buffer wiring: %w", layer, err)
			}
		}

		newPgos := make([][2]core.NetID, fullCount)
		for i, c := range lFull {
			newPgos[i] = c.O
		}
		pgos = newPgos

		newGos := make([]core.NetID, 0, halfOffset*2)
		for _, c := range lBuf {
			newGos = append(newGos, c.O)
		}
		for _, c := range lHalf {
			newGos = append(newGos, c.O)
		}
		gos = newGos

		mergeLayer := make([]Node, 0, len(lBuf)+len(lHalf)+len(lFull))
		for _, c := range lBuf {
			mergeLayer = append(mergeLayer, Node{Kind: NodeBuf, Out: []core.NetID{c.O}})
		}
		for _, c := range lHalf {
			mergeLayer = append(mergeLayer, Node{Kind: NodeHalfMerge, Out: []core.NetID{c.O}})
		}
		for _, c := range lFull {
			o := c.O
			mergeLayer = append(mergeLayer, Node{Kind: NodeMerge, Out: o[:]})
		}
		layers = append(layers, mergeLayer)
	}

	cin, err := e.NewNet()
	if err != nil {
		return nil, fmt.Errorf("ksa: carry-in net: %w", err)
	}
	sumXors := make([]cells.XOR2, width)
	for i := range sumXors {
		x, err := cells.NewXOR2(e)
		if err != nil {
			return nil, fmt.Errorf("ksa: sum bit %d: %w", i, err)
		}
		sumXors[i] = x
	}
	for i, x := range sumXors {
		if _, err := e.NewBinding(x.I[0], pOrig[i]); err != nil {
			return nil, fmt.Errorf("ksa: sum bit %d propagate wiring: %w", i, err)
		}
		if i > 0 {
			if _, err := e.NewBinding(x.I[1], gos[i-1]); err != nil {
				return nil, fmt.Errorf("ksa: sum bit %d carry wiring: %w", i, err)
			}
		} else {
			if _, err := e.NewInterconnect(x.I[1], cin, pgs[0].cin); err != nil {
				return nil, fmt.Errorf("ksa: sum bit 0 carry-in wiring: %w", err)
			}
		}
	}

	sums := make([]core.NetID, width)
	sumLayer := make([]Node, width)
	for i, x := range sumXors {
		sums[i] = x.O
		sumLayer[i] = Node{Kind: NodeSum, Out: []core.NetID{x.O}}
	}
	layers = append(layers, sumLayer)
	cout := gos[len(gos)-1]

	a := make([]core.NetID, width)
	b := make([]core.NetID, width)
	for i, n := range pgs {
		a[i] = n.i[0]
		b[i] = n.i[1]
	}

	return &Adder{Width: width, A: a, B: b, Cin: cin, Sum: sums, Cout: cout, Layers: layers}, nil
}
