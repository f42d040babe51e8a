package core

import "github.com/sirupsen/logrus"

// Register attaches the rail's driver to each net, readying it to receive
// power at Energize. Registration must complete before the rail is
// energized.
func (e *Engine) Register(nets ...NetID) error {
	if e.energized {
		return engineErrorf("Register", ErrRailEnergized)
	}
	owner := Owner{Kind: DriverRail, ID: 0}
	for _, n := range nets {
		if err := e.attach(n, owner); err != nil {
			return engineErrorf("Register", err)
		}
	}
	e.railNets = append(e.railNets, nets...)
	return nil
}

// Energize asserts the rail's driver on every registered net exactly once.
// This is the single transition from de-energized to energized; it cannot
// be undone, and no further construction is permitted afterward.
func (e *Engine) Energize() {
	if e.energized {
		return
	}
	e.energized = true
	if e.log.IsLevelEnabled(logrus.InfoLevel) {
		e.log.Info("rail energized")
	}
	owner := Owner{Kind: DriverRail, ID: 0}
	for _, n := range e.railNets {
		e.Set(n, owner, true)
	}
}
