// Package cells composes core.Engine primitives (FETs, bridges, the rail)
// into the standard library of logic gates: NOT, NOR2, OR2, OR3, NAND2,
// AND2, XOR2, XNOR2, the buffers, the adders, and the propagate/generate
// cells used by a parallel-prefix adder.
//
// Every constructor takes the engine to build against and returns a struct
// exposing the cell's input and output nets, ready to bind into a larger
// circuit before the rail is energized.
package cells

import "github.com/silinet/transistorsim/core"

// NOT is a single p-type FET inverter: gate asserted pulls the output low,
// gate de-asserted lets the rail pull it high.
type NOT struct {
	I core.NetID
	O core.NetID
}

// NewNOT builds an inverter and registers its source with the rail.
func NewNOT(e *core.Engine) (NOT, error) {
	p0, err := e.NewFET()
	if err != nil {
		return NOT{}, err
	}
	if err := e.Register(p0.Source); err != nil {
		return NOT{}, err
	}
	return NOT{I: p0.Gate, O: p0.Drain}, nil
}
