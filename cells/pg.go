package cells

import "github.com/silinet/transistorsim/core"

// PG computes one bit position's propagate (P = A xor B) and generate
// (G = A and B) signals, the leaf of a parallel-prefix adder's generate
// layer.
type PG struct {
	I [2]core.NetID // (A[i], B[i])
	O [2]core.NetID // (P[i], G[i])
}

// NewPG builds a propagate/generate cell.
func NewPG(e *core.Engine) (PG, error) {
	and2, err := NewAND2(e)
	if err != nil {
		return PG{}, err
	}
	xor2, err := NewXOR2(e)
	if err != nil {
		return PG{}, err
	}

	i0, err := e.NewNet()
	if err != nil {
		return PG{}, err
	}
	i1, err := e.NewNet()
	if err != nil {
		return PG{}, err
	}
	if _, err := e.NewInterconnect(i0, and2.I[0], xor2.I[0]); err != nil {
		return PG{}, err
	}
	if _, err := e.NewInterconnect(i1, and2.I[1], xor2.I[1]); err != nil {
		return PG{}, err
	}

	return PG{I: [2]core.NetID{i0, i1}, O: [2]core.NetID{xor2.O, and2.O}}, nil
}

// PGCin is PG specialized for bit 0, folding the adder's carry-in directly
// into the generate term via a three-way OR of partial generates
// (A*B + A*Cin + B*Cin). The propagate term stays A xor B.
type PGCin struct {
	I   [2]core.NetID // (A[0], B[0])
	Cin core.NetID
	O   [2]core.NetID // (P[0], G[0])
}

// NewPGCin builds the bit-0 propagate/generate cell.
func NewPGCin(e *core.Engine) (PGCin, error) {
	andGA, err := NewAND2(e)
	if err != nil {
		return PGCin{}, err
	}
	andGB, err := NewAND2(e)
	if err != nil {
		return PGCin{}, err
	}
	andGC, err := NewAND2(e)
	if err != nil {
		return PGCin{}, err
	}
	or3, err := NewOR3(e)
	if err != nil {
		return PGCin{}, err
	}
	xor2, err := NewXOR2(e)
	if err != nil {
		return PGCin{}, err
	}

	i0, err := e.NewNet()
	if err != nil {
		return PGCin{}, err
	}
	i1, err := e.NewNet()
	if err != nil {
		return PGCin{}, err
	}
	cin, err := e.NewNet()
	if err != nil {
		return PGCin{}, err
	}

	if _, err := e.NewInterconnect(i0, andGA.I[0], andGC.I[0], xor2.I[0]); err != nil {
		return PGCin{}, err
	}
	if _, err := e.NewInterconnect(i1, andGB.I[0], andGC.I[1], xor2.I[1]); err != nil {
		return PGCin{}, err
	}
	if _, err := e.NewInterconnect(cin, andGA.I[1], andGB.I[1]); err != nil {
		return PGCin{}, err
	}
	if err := core.BindingParallel(e, or3.I[:], []core.NetID{andGA.O, andGB.O, andGC.O}); err != nil {
		return PGCin{}, err
	}

	return PGCin{I: [2]core.NetID{i0, i1}, Cin: cin, O: [2]core.NetID{xor2.O, or3.O}}, nil
}
