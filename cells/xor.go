package cells

import "github.com/silinet/transistorsim/core"

// XOR2 is the five-transistor transmission-style XOR: a series pair
// (p0->p1, a NOR term) drives p4's gate and a parallel pair (p2, p3, a NAND
// term) feeds p4's source, with the two logical inputs fanned out to both
// pairs via interconnects.
type XOR2 struct {
	I [2]core.NetID
	O core.NetID
}

// NewXOR2 builds a 2-input XOR.
func NewXOR2(e *core.Engine) (XOR2, error) {
	p0, err := e.NewFET()
	if err != nil {
		return XOR2{}, err
	}
	p1, err := e.NewFET()
	if err != nil {
		return XOR2{}, err
	}
	p2, err := e.NewFET()
	if err != nil {
		return XOR2{}, err
	}
	p3, err := e.NewFET()
	if err != nil {
		return XOR2{}, err
	}
	p4, err := e.NewFET()
	if err != nil {
		return XOR2{}, err
	}
	if err := e.Register(p0.Source, p2.Source, p3.Source); err != nil {
		return XOR2{}, err
	}

	i0, err := e.NewNet()
	if err != nil {
		return XOR2{}, err
	}
	i1, err := e.NewNet()
	if err != nil {
		return XOR2{}, err
	}

	if _, err := e.NewBinding(p0.Drain, p1.Source); err != nil {
		return XOR2{}, err
	}
	if _, err := e.NewBinding(p1.Drain, p4.Gate); err != nil {
		return XOR2{}, err
	}
	if _, err := e.NewInterconnect(i0, p0.Gate, p2.Gate); err != nil {
		return XOR2{}, err
	}
	if _, err := e.NewInterconnect(i1, p1.Gate, p3.Gate); err != nil {
		return XOR2{}, err
	}
	if _, err := e.NewInterconnect(p2.Drain, p3.Drain, p4.Source); err != nil {
		return XOR2{}, err
	}

	return XOR2{I: [2]core.NetID{i0, i1}, O: p4.Drain}, nil
}

// XNOR2 swaps XOR2's pairs: a parallel pair (p0, p1, a NAND term) drives
// p4's gate, so p4's drain carries the AND term, and a series pair (p2->p3)
// carries the NOR term. Both drains are tied onto a separate output net
// rather than exposing the final FET's drain directly.
type XNOR2 struct {
	I [2]core.NetID
	O core.NetID
}

// NewXNOR2 builds a 2-input XNOR.
func NewXNOR2(e *core.Engine) (XNOR2, error) {
	p0, err := e.NewFET()
	if err != nil {
		return XNOR2{}, err
	}
	p1, err := e.NewFET()
	if err != nil {
		return XNOR2{}, err
	}
	p2, err := e.NewFET()
	if err != nil {
		return XNOR2{}, err
	}
	p3, err := e.NewFET()
	if err != nil {
		return XNOR2{}, err
	}
	p4, err := e.NewFET()
	if err != nil {
		return XNOR2{}, err
	}
	if err := e.Register(p0.Source, p1.Source, p2.Source, p4.Source); err != nil {
		return XNOR2{}, err
	}

	i0, err := e.NewNet()
	if err != nil {
		return XNOR2{}, err
	}
	i1, err := e.NewNet()
	if err != nil {
		return XNOR2{}, err
	}
	o, err := e.NewNet()
	if err != nil {
		return XNOR2{}, err
	}

	if _, err := e.NewBinding(p2.Drain, p3.Source); err != nil {
		return XNOR2{}, err
	}
	if _, err := e.NewInterconnect(p0.Drain, p1.Drain, p4.Gate); err != nil {
		return XNOR2{}, err
	}
	if _, err := e.NewInterconnect(o, p4.Drain, p3.Drain); err != nil {
		return XNOR2{}, err
	}
	if _, err := e.NewInterconnect(i0, p0.Gate, p2.Gate); err != nil {
		return XNOR2{}, err
	}
	if _, err := e.NewInterconnect(i1, p1.Gate, p3.Gate); err != nil {
		return XNOR2{}, err
	}

	return XNOR2{I: [2]core.NetID{i0, i1}, O: o}, nil
}
