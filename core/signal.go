package core

// Load is a passive terminal attached to a net — a capacitive load on an
// I/O port. Its hook is a no-op; it exists so external callers have a
// driver identity to target with Set once the rail is energized. Pre-attach
// a Load to any cell-exposed net that will be read or written externally.
type Load struct {
	net   NetID
	owner Owner
}

// NewLoad attaches a passive load driver to net. Like every other driver,
// loads must be in place before the rail is energized.
func (e *Engine) NewLoad(net NetID) (Load, error) {
	if e.energized {
		return Load{}, engineErrorf("NewLoad", ErrRailEnergized)
	}
	owner := Owner{Kind: DriverLoad, ID: e.loadSeq}
	e.loadSeq++
	if err := e.attach(net, owner); err != nil {
		return Load{}, engineErrorf("NewLoad", err)
	}
	return Load{net: net, owner: owner}, nil
}

// Set sets this load's driver on its net to asserting (true or false).
func (l Load) Set(e *Engine, asserting bool) {
	e.Set(l.net, l.owner, asserting)
}

// Energized reports this load's net's current aggregate state.
func (l Load) Energized(e *Engine) bool {
	return e.NetEnergized(l.net)
}

// Net returns the net this load is attached to.
func (l Load) Net() NetID { return l.net }

// SignalInterface binds an ordered tuple of nets (LSB first) to an unsigned
// integer for bulk input/output, backed by one Load per net.
type SignalInterface struct {
	loads []Load
}

// NewSignalInterface attaches a Load to every net in nets (LSB first) and
// returns the resulting interface.
func NewSignalInterface(e *Engine, nets []NetID) (*SignalInterface, error) {
	loads := make([]Load, len(nets))
	for i, n := range nets {
		l, err := e.NewLoad(n)
		if err != nil {
			return nil, engineErrorf("NewSignalInterface", err)
		}
		loads[i] = l
	}
	return &SignalInterface{loads: loads}, nil
}

// SetSignal drives bit i of value onto net i for every bound net.
func (s *SignalInterface) SetSignal(e *Engine, value uint64) {
	for i, l := range s.loads {
		l.Set(e, (value>>uint(i))&1 != 0)
	}
}

// GetSignal reads the bound nets back into an unsigned integer, LSB first.
func (s *SignalInterface) GetSignal(e *Engine) uint64 {
	var v uint64
	for i, l := range s.loads {
		if l.Energized(e) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// Width reports how many nets this interface is bound to.
func (s *SignalInterface) Width() int { return len(s.loads) }
