// Package core implements the transistor-level propagation engine: nets,
// drivers, bridges, power rails and p-type FETs, all owned by a single
// per-rail arena (Engine) and addressed by stable integer indices.
//
// Errors:
//
//	ErrRailEnergized       - a net/bridge/FET/rail-registration was attempted after Energize.
//	ErrNetCapacityExceeded - a third stateful driver was attached to a net that already has two.
//	ErrDuplicateDriver     - the same owner was attached to one net twice.
//	ErrEnergizedSplice     - a bridge was constructed over a net already asserted by a foreign driver.
package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine construction. Callers branch with errors.Is;
// messages are never relied upon for control flow.
var (
	// ErrRailEnergized indicates a net, bridge, FET or rail registration was
	// attempted after the engine's rail was energized. Construction must
	// complete before Energize is called.
	ErrRailEnergized = errors.New("core: cannot construct on an energized rail")

	// ErrNetCapacityExceeded indicates a third stateful driver was attached
	// to a net that already carries two.
	ErrNetCapacityExceeded = errors.New("core: net already has two drivers")

	// ErrDuplicateDriver indicates the same owner was attached to one net
	// twice.
	ErrDuplicateDriver = errors.New("core: driver already attached to net")

	// ErrEnergizedSplice indicates a bridge was constructed tying in a net
	// whose existing driver is already asserting.
	ErrEnergizedSplice = errors.New("core: cannot splice a bridge onto an energized net")

	// ErrRailDeassert indicates an attempt to de-assert a rail driver. This
	// can only be triggered by engine-internal misuse (a rail driver is
	// only ever ever asserted, never cleared) and is reported as a panic,
	// not a returned error — see Set.
	ErrRailDeassert = errors.New("core: cannot de-assert a rail driver")

	// ErrRailNotEnergized indicates a rail driver was asserted before the
	// rail itself was energized. Reported as a panic, not a returned error
	// — see Set.
	ErrRailNotEnergized = errors.New("core: rail driver asserted before rail energized")

	// ErrGroupLengthMismatch indicates parallel bridge construction was
	// given groups of nets with differing lengths.
	ErrGroupLengthMismatch = errors.New("core: parallel net groups have mismatched lengths")
)

// engineErrorf wraps err with a "<method>: <context>" prefix while
// preserving it for errors.Is.
func engineErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
