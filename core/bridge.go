package core

// bridgeRec is the arena record for one bridge: a 2-net binding or an
// N-net interconnect share this single representation, per the component
// design's "two variants, one algorithm."
type bridgeRec struct {
	nets         []NetID
	numEnergized int
}

// NewBinding ties exactly two nets together. It is NewBridge specialized to
// arity two, kept as a distinct constructor name for readability at call
// sites that are conceptually pairing two wires.
func (e *Engine) NewBinding(a, b NetID) (BridgeID, error) {
	return e.NewBridge(a, b)
}

// NewInterconnect ties an arbitrary number (>= 2) of nets together.
func (e *Engine) NewInterconnect(nets ...NetID) (BridgeID, error) {
	return e.NewBridge(nets...)
}

// NewBridge constructs a bridge over the given nets. Construction fails if
// the rail is already energized, or if any tied net already carries a
// foreign driver that is currently asserting (an energized splice — a
// bridge must never be spliced onto a live net).
func (e *Engine) NewBridge(nets ...NetID) (BridgeID, error) {
	if e.energized {
		return 0, engineErrorf("NewBridge", ErrRailEnergized)
	}
	for _, n := range nets {
		if e.nets[n].energized() {
			return 0, engineErrorf("NewBridge", ErrEnergizedSplice)
		}
	}

	id := BridgeID(len(e.bridges))
	owner := Owner{Kind: DriverBridge, ID: int(id)}
	tied := append([]NetID(nil), nets...)
	e.bridges = append(e.bridges, bridgeRec{nets: tied})

	for _, n := range tied {
		if err := e.attach(n, owner); err != nil {
			return 0, engineErrorf("NewBridge", err)
		}
	}
	return id, nil
}

// bridgePropagate recomputes how many tied nets are asserted by a driver
// other than this bridge, and asserts or releases the bridge's own drivers
// to maintain the invariant: if at least one net is asserted from the
// outside, the bridge drives every other net; if none are, it drives none.
// A net that is itself the (sole or joint) external source is never driven
// by the bridge — that would be self-drive.
//
// The triggering net is excluded from the "assert others" scans below: it
// is either the new sole source (handled directly) or already covered by
// the general k>1 / k==0 cases. This asymmetric "tell the other side"
// discipline is what prevents feedback between a bridge and its peers.
func (e *Engine) bridgePropagate(id BridgeID, triggering NetID) {
	br := &e.bridges[id]
	owner := Owner{Kind: DriverBridge, ID: int(id)}

	k := 0
	for _, n := range br.nets {
		if e.nets[n].opposing(owner) {
			k++
		}
	}
	prev := br.numEnergized

	switch {
	case k > 1:
		if prev <= 1 {
			for _, n := range br.nets {
				if n == triggering {
					continue
				}
				if e.nets[n].opposing(owner) {
					e.Set(n, owner, true)
					break
				}
			}
		}
	case k == 1:
		if prev > 1 {
			for _, n := range br.nets {
				if e.nets[n].opposing(owner) {
					e.Set(n, owner, false)
					break
				}
			}
		} else {
			for _, n := range br.nets {
				if n == triggering {
					continue
				}
				e.Set(n, owner, true)
			}
		}
	default: // k == 0
		for _, n := range br.nets {
			e.Set(n, owner, false)
		}
	}
	br.numEnergized = k
}

// InterconnectParallel zips N same-length groups of nets into N
// interconnects, one per index (group0[i], group1[i], ..., groupK[i]).
// Cell composition uses this to wire a (p,g) pair, or a wider bus, across a
// boundary with one call instead of a manual loop.
func InterconnectParallel(e *Engine, groups ...[]NetID) error {
	if len(groups) == 0 {
		return nil
	}
	n := len(groups[0])
	for _, g := range groups {
		if len(g) != n {
			return engineErrorf("InterconnectParallel", ErrGroupLengthMismatch)
		}
	}
	for i := 0; i < n; i++ {
		nets := make([]NetID, len(groups))
		for g := range groups {
			nets[g] = groups[g][i]
		}
		if _, err := e.NewInterconnect(nets...); err != nil {
			return err
		}
	}
	return nil
}

// BindingParallel pairs two same-length groups into one binding per index.
func BindingParallel(e *Engine, a, b []NetID) error {
	if len(a) != len(b) {
		return engineErrorf("BindingParallel", ErrGroupLengthMismatch)
	}
	for i := range a {
		if _, err := e.NewBinding(a[i], b[i]); err != nil {
			return err
		}
	}
	return nil
}
