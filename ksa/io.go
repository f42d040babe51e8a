package ksa

import "github.com/silinet/transistorsim/core"

// IO binds an Adder's operand, carry-in and result nets to signal
// interfaces for repeated simulation once the rail is energized.
type IO struct {
	a, b *core.SignalInterface
	cin  core.Load
	sum  *core.SignalInterface
	cout core.Load
}

// NewIO attaches signal interfaces to every terminal of adder. Call this
// before the engine's rail is energized.
func NewIO(e *core.Engine, adder *Adder) (*IO, error) {
	a, err := core.NewSignalInterface(e, adder.A)
	if err != nil {
		return nil, err
	}
	b, err := core.NewSignalInterface(e, adder.B)
	if err != nil {
		return nil, err
	}
	cin, err := e.NewLoad(adder.Cin)
	if err != nil {
		return nil, err
	}
	sum, err := core.NewSignalInterface(e, adder.Sum)
	if err != nil {
		return nil, err
	}
	cout, err := e.NewLoad(adder.Cout)
	if err != nil {
		return nil, err
	}
	return &IO{a: a, b: b, cin: cin, sum: sum, cout: cout}, nil
}

// SetOperands drives a, b and carry-in onto the adder's inputs.
func (io *IO) SetOperands(e *core.Engine, a, b uint64, cin bool) {
	io.a.SetSignal(e, a)
	io.b.SetSignal(e, b)
	io.cin.Set(e, cin)
}

// Result reads the adder's current sum and carry-out.
func (io *IO) Result(e *core.Engine) (sum uint64, cout bool) {
	return io.sum.GetSignal(e), io.cout.Energized(e)
}
