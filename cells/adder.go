package cells

import "github.com/silinet/transistorsim/core"

// HalfAdder composes an XOR2 (sum) and an AND2 (carry) over a shared input
// pair, fanned out through interconnects.
type HalfAdder struct {
	I [2]core.NetID
	S core.NetID
	C core.NetID
}

// NewHalfAdder builds a half adder.
func NewHalfAdder(e *core.Engine) (HalfAdder, error) {
	x, err := NewXOR2(e)
	if err != nil {
		return HalfAdder{}, err
	}
	a, err := NewAND2(e)
	if err != nil {
		return HalfAdder{}, err
	}

	i0, err := e.NewNet()
	if err != nil {
		return HalfAdder{}, err
	}
	i1, err := e.NewNet()
	if err != nil {
		return HalfAdder{}, err
	}
	if _, err := e.NewInterconnect(i0, x.I[0], a.I[0]); err != nil {
		return HalfAdder{}, err
	}
	if _, err := e.NewInterconnect(i1, x.I[1], a.I[1]); err != nil {
		return HalfAdder{}, err
	}

	return HalfAdder{I: [2]core.NetID{i0, i1}, S: x.O, C: a.O}, nil
}

// FullAdder chains two half adders through an OR2 for the final carry: the
// first half adder's sum feeds the second's A input, its carry and the
// second half adder's carry feed the OR2.
type FullAdder struct {
	I    [2]core.NetID
	Cin  core.NetID
	S    core.NetID
	Cout core.NetID
}

// NewFullAdder builds a full adder from two half adders and an OR2.
func NewFullAdder(e *core.Engine) (FullAdder, error) {
	h0, err := NewHalfAdder(e)
	if err != nil {
		return FullAdder{}, err
	}
	h1, err := NewHalfAdder(e)
	if err != nil {
		return FullAdder{}, err
	}
	or2, err := NewOR2(e)
	if err != nil {
		return FullAdder{}, err
	}

	if _, err := e.NewBinding(h0.S, h1.I[0]); err != nil {
		return FullAdder{}, err
	}
	if _, err := e.NewBinding(h0.C, or2.I[0]); err != nil {
		return FullAdder{}, err
	}
	if _, err := e.NewBinding(h1.C, or2.I[1]); err != nil {
		return FullAdder{}, err
	}

	return FullAdder{I: h0.I, Cin: h1.I[1], S: h1.S, Cout: or2.O}, nil
}
