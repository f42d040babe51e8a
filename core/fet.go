package core

// fetRec is the arena record for one p-type FET: three nets, three driver
// slots (source, drain, gate), no state of its own beyond the nets.
type fetRec struct {
	source, drain, gate NetID
}

// FET is a p-type field-effect transistor: when its gate is de-asserted,
// drain mirrors source; when the gate is asserted, drain is released
// (de-asserted), regardless of source.
type FET struct {
	ID     FETID
	Source NetID
	Drain  NetID
	Gate   NetID
}

// NewFET allocates a fresh p-type FET with three new nets and attaches its
// three driver slots.
func (e *Engine) NewFET() (FET, error) {
	if e.energized {
		return FET{}, engineErrorf("NewFET", ErrRailEnergized)
	}

	source, err := e.NewNet()
	if err != nil {
		return FET{}, engineErrorf("NewFET", err)
	}
	drain, err := e.NewNet()
	if err != nil {
		return FET{}, engineErrorf("NewFET", err)
	}
	gate, err := e.NewNet()
	if err != nil {
		return FET{}, engineErrorf("NewFET", err)
	}

	id := FETID(len(e.fets))
	e.fets = append(e.fets, fetRec{source: source, drain: drain, gate: gate})

	if err := e.attach(source, Owner{Kind: DriverFETSource, ID: int(id)}); err != nil {
		return FET{}, engineErrorf("NewFET", err)
	}
	if err := e.attach(drain, Owner{Kind: DriverFETDrain, ID: int(id)}); err != nil {
		return FET{}, engineErrorf("NewFET", err)
	}
	if err := e.attach(gate, Owner{Kind: DriverFETGate, ID: int(id)}); err != nil {
		return FET{}, engineErrorf("NewFET", err)
	}

	return FET{ID: id, Source: source, Drain: drain, Gate: gate}, nil
}

// fetSourceChanged mirrors source onto drain when the source net's
// aggregate just flipped and the gate is currently de-asserted. A source
// flip that left the net's total energization unchanged (its peer was
// already asserting) needs no action.
func (e *Engine) fetSourceChanged(id FETID, aggregateChanged bool) {
	if !aggregateChanged {
		return
	}
	f := &e.fets[id]
	if e.NetEnergized(f.gate) {
		return
	}
	e.Set(f.drain, Owner{Kind: DriverFETDrain, ID: int(id)}, e.NetEnergized(f.source))
}

// fetGateChanged mirrors source onto drain if the gate just de-asserted, or
// forces drain off if the gate just asserted. As with the source hook, a
// gate flip that left the net's aggregate unchanged needs no action.
func (e *Engine) fetGateChanged(id FETID, aggregateChanged bool) {
	if !aggregateChanged {
		return
	}
	f := &e.fets[id]
	drainOwner := Owner{Kind: DriverFETDrain, ID: int(id)}
	if !e.NetEnergized(f.gate) {
		e.Set(f.drain, drainOwner, e.NetEnergized(f.source))
	} else {
		e.Set(f.drain, drainOwner, false)
	}
}
