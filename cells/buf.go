package cells

import "github.com/silinet/transistorsim/core"

// BUF1 is a single pass-through net: input and output are the same wire.
// It exists so composed cells can name a signal boundary without forcing a
// driver through it.
type BUF1 struct {
	I core.NetID
	O core.NetID
}

// NewBUF1 allocates one net and aliases it as both terminals.
func NewBUF1(e *core.Engine) (BUF1, error) {
	n, err := e.NewNet()
	if err != nil {
		return BUF1{}, err
	}
	return BUF1{I: n, O: n}, nil
}

// BUF2 is BUF1 widened to a pair of nets.
type BUF2 struct {
	I [2]core.NetID
	O [2]core.NetID
}

// NewBUF2 allocates two nets and aliases them as both terminal pairs.
func NewBUF2(e *core.Engine) (BUF2, error) {
	a, err := e.NewNet()
	if err != nil {
		return BUF2{}, err
	}
	b, err := e.NewNet()
	if err != nil {
		return BUF2{}, err
	}
	nets := [2]core.NetID{a, b}
	return BUF2{I: nets, O: nets}, nil
}
