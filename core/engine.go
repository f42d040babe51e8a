package core

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// NetID, BridgeID and FETID are stable arena indices. Per the design notes,
// nets/bridges/FETs are never referenced by pointer or object identity —
// only by these indices — which keeps the ownership graph a cycle-free
// forest and makes identity comparisons (Owner equality) a plain integer
// compare.
type (
	NetID    int
	BridgeID int
	FETID    int
)

// Engine is the arena for exactly one power rail: every net, bridge and FET
// created against it lives for the rail's lifetime. Per the design notes,
// the simulator carries no state beyond each rail's energized flag, so
// independent Engines never interact — construct as many as you like.
type Engine struct {
	energized bool
	nets      []netRec
	bridges   []bridgeRec
	fets      []fetRec
	railNets  []NetID
	loadSeq   int
	log       *logrus.Logger
}

// EngineOption configures an Engine at construction time.
type EngineOption func(*Engine)

// WithLogger injects a logrus.Logger for diagnostic tracing of propagation
// events (net flips, bridge re-drive decisions, rail energization). Passing
// nil is equivalent to omitting the option. Logging is level-gated before
// any formatting happens, so a disabled logger costs nothing on the hot
// propagation path.
func WithLogger(log *logrus.Logger) EngineOption {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// NewEngine constructs a de-energized engine with its own arena.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{log: discardLogger()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(discardWriter{})
	return log
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// Energized reports whether the rail has been energized.
func (e *Engine) Energized() bool { return e.energized }

// NewNet allocates a fresh, driverless net.
func (e *Engine) NewNet() (NetID, error) {
	if e.energized {
		return 0, engineErrorf("NewNet", ErrRailEnergized)
	}
	id := NetID(len(e.nets))
	e.nets = append(e.nets, netRec{})
	return id, nil
}

// NetEnergized reports whether net currently has any asserting driver.
func (e *Engine) NetEnergized(net NetID) bool {
	return e.nets[net].energized()
}

// attach registers owner as a new driver on net. Every owner attaches at
// most one driver per net.
func (e *Engine) attach(net NetID, owner Owner) error {
	rec := &e.nets[net]
	if rec.indexOf(owner) != -1 {
		return ErrDuplicateDriver
	}
	if rec.n >= 2 {
		return ErrNetCapacityExceeded
	}
	rec.slots[rec.n] = driverSlot{owner: owner}
	rec.n++
	return nil
}

// Set changes owner's driver state on net. If the state actually flips, the
// peer driver's hook fires with aggregateChanged reporting whether the
// net's total energization (OR of its drivers) flipped. Idempotent: setting
// a driver to its current state is a no-op and fires no hook.
//
// Set panics on the two rail-driver misuses: de-asserting a rail driver,
// and asserting one before the rail is energized. It also panics if owner
// has no driver attached to net. Construction-time misuse is reported
// through the constructors' returned errors instead; Set itself has no
// error path because Energize, Load.Set and the propagation cascade call it
// only with an already-attached owner.
func (e *Engine) Set(net NetID, owner Owner, asserting bool) {
	if owner.Kind == DriverRail {
		if !asserting {
			panic(ErrRailDeassert)
		}
		if !e.energized {
			panic(ErrRailNotEnergized)
		}
	}

	rec := &e.nets[net]
	idx := rec.indexOf(owner)
	if idx == -1 {
		panic(fmt.Sprintf("core: Set: owner %+v has no driver on net %d", owner, net))
	}
	if rec.slots[idx].asserting == asserting {
		return
	}

	otherAsserting := rec.n == 2 && rec.slots[1-idx].asserting
	rec.slots[idx].asserting = asserting
	e.trace(net, owner, asserting)

	if rec.n < 2 {
		return
	}
	aggregateChanged := !otherAsserting
	peer := rec.slots[1-idx].owner
	e.fireHook(peer, net, aggregateChanged)
}

// fireHook dispatches to the owning element's change hook based on its
// tagged kind — no dynamic dispatch, no per-driver callback pointers.
func (e *Engine) fireHook(owner Owner, net NetID, aggregateChanged bool) {
	switch owner.Kind {
	case DriverLoad, DriverRail, DriverFETDrain:
		// passive observers; the drain driver's hook never reacts.
		return
	case DriverBridge:
		e.bridgePropagate(BridgeID(owner.ID), net)
	case DriverFETSource:
		e.fetSourceChanged(FETID(owner.ID), aggregateChanged)
	case DriverFETGate:
		e.fetGateChanged(FETID(owner.ID), aggregateChanged)
	}
}

func (e *Engine) trace(net NetID, owner Owner, asserting bool) {
	if e.log == nil || !e.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	e.log.WithFields(logrus.Fields{
		"net":       net,
		"ownerKind": owner.Kind,
		"ownerID":   owner.ID,
		"asserting": asserting,
	}).Debug("net driver flipped")
}
