package cells

import "github.com/silinet/transistorsim/core"

// NOR2 stacks two p-type FETs in series (drain-to-source), the classic
// pull-up network for a 2-input NOR.
type NOR2 struct {
	I [2]core.NetID
	O core.NetID
}

// NewNOR2 builds a 2-input NOR from two series FETs.
func NewNOR2(e *core.Engine) (NOR2, error) {
	p0, err := e.NewFET()
	if err != nil {
		return NOR2{}, err
	}
	p1, err := e.NewFET()
	if err != nil {
		return NOR2{}, err
	}
	if err := e.Register(p0.Source); err != nil {
		return NOR2{}, err
	}
	if _, err := e.NewBinding(p0.Drain, p1.Source); err != nil {
		return NOR2{}, err
	}
	return NOR2{I: [2]core.NetID{p0.Gate, p1.Gate}, O: p1.Drain}, nil
}

// OR2 is a NOR2 followed by an inverting third stage, wired directly at the
// transistor level rather than composed from NOT+NOR2 (matching the
// original pull-up chain: p0 and p1 in series feed p2's gate).
type OR2 struct {
	I [2]core.NetID
	O core.NetID
}

// NewOR2 builds a 2-input OR.
func NewOR2(e *core.Engine) (OR2, error) {
	p0, err := e.NewFET()
	if err != nil {
		return OR2{}, err
	}
	p1, err := e.NewFET()
	if err != nil {
		return OR2{}, err
	}
	p2, err := e.NewFET()
	if err != nil {
		return OR2{}, err
	}
	if err := e.Register(p0.Source, p2.Source); err != nil {
		return OR2{}, err
	}
	if _, err := e.NewBinding(p0.Drain, p1.Source); err != nil {
		return OR2{}, err
	}
	if _, err := e.NewBinding(p1.Drain, p2.Gate); err != nil {
		return OR2{}, err
	}
	return OR2{I: [2]core.NetID{p0.Gate, p1.Gate}, O: p2.Drain}, nil
}

// OR3 chains two OR2 cells: the first OR2's output feeds one input of the
// second.
type OR3 struct {
	I [3]core.NetID
	O core.NetID
}

// NewOR3 builds a 3-input OR from two composed OR2 cells.
func NewOR3(e *core.Engine) (OR3, error) {
	or2a, err := NewOR2(e)
	if err != nil {
		return OR3{}, err
	}
	or2b, err := NewOR2(e)
	if err != nil {
		return OR3{}, err
	}
	if _, err := e.NewBinding(or2b.I[0], or2a.O); err != nil {
		return OR3{}, err
	}
	return OR3{I: [3]core.NetID{or2a.I[0], or2a.I[1], or2b.I[1]}, O: or2b.O}, nil
}

// NAND2 wire-ORs two parallel pull-up FETs onto a shared output net.
type NAND2 struct {
	I [2]core.NetID
	O core.NetID
}

// NewNAND2 builds a 2-input NAND from two parallel FETs tied by an
// interconnect.
func NewNAND2(e *core.Engine) (NAND2, error) {
	p0, err := e.NewFET()
	if err != nil {
		return NAND2{}, err
	}
	p1, err := e.NewFET()
	if err != nil {
		return NAND2{}, err
	}
	if err := e.Register(p0.Source, p1.Source); err != nil {
		return NAND2{}, err
	}
	o, err := e.NewNet()
	if err != nil {
		return NAND2{}, err
	}
	if _, err := e.NewInterconnect(p0.Drain, p1.Drain, o); err != nil {
		return NAND2{}, err
	}
	return NAND2{I: [2]core.NetID{p0.Gate, p1.Gate}, O: o}, nil
}

// AND2 is a NAND2 pull-up network feeding a third FET's gate, so the output
// net itself is the inverted NAND term.
type AND2 struct {
	I [2]core.NetID
	O core.NetID
}

// NewAND2 builds a 2-input AND.
func NewAND2(e *core.Engine) (AND2, error) {
	p0, err := e.NewFET()
	if err != nil {
		return AND2{}, err
	}
	p1, err := e.NewFET()
	if err != nil {
		return AND2{}, err
	}
	p2, err := e.NewFET()
	if err != nil {
		return AND2{}, err
	}
	if err := e.Register(p0.Source, p1.Source, p2.Source); err != nil {
		return AND2{}, err
	}
	if _, err := e.NewInterconnect(p0.Drain, p1.Drain, p2.Gate); err != nil {
		return AND2{}, err
	}
	return AND2{I: [2]core.NetID{p0.Gate, p1.Gate}, O: p2.Drain}, nil
}
