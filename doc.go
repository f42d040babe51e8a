// Package transistorsim is a transistor-level digital logic simulator:
// circuits are built bottom-up from p-type FET switches, conductive
// bridges, power rails and capacitive loads, then driven to a fixpoint by
// synchronous event propagation — no behavioral Boolean shortcuts.
//
// What you get:
//
//   - An electrical-network model: nets (wires), drivers, bridges and rails
//   - A library of standard cells: NOT, NAND, NOR, AND, OR, XOR, XNOR,
//     buffers, half and full adders, propagate/generate stages
//   - A radix-2 Kogge-Stone parallel-prefix adder at 16, 32 or 64 bits
//     with carry-in and carry-out
//   - Plain-text structural and state diagnostics for the adder hierarchy
//
// Under the hood, everything is organized under four subpackages plus a
// runnable command:
//
//	core/       — nets, drivers, bridges, rails, FETs; the propagation engine
//	cells/      — standard logic cells composed from core primitives
//	ksa/        — the Kogge-Stone adder and its signal-interface bindings
//	diag/       — structural walks, component counts, layer outlines
//	cmd/ksasim/ — single-shot CLI: build an adder, add two numbers, print
//
// Quick example — one inverter:
//
//	e := core.NewEngine()
//	inv, _ := cells.NewNOT(e)
//	in, _ := e.NewLoad(inv.I)
//	e.Energize()
//	in.Set(e, true)
//	// e.NetEnergized(inv.O) == false
//
// Construction happens while the rail is de-energized; Energize flips the
// rail exactly once and cascades power through the netlist. Inputs may then
// vary freely, each change settling synchronously before Set returns.
package transistorsim
