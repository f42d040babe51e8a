package cells

import (
	"testing"

	"github.com/silinet/transistorsim/core"
	"github.com/stretchr/testify/require"
)

// bitSet wires a Load to each input net and drives it to the bit pattern
// described by bits (index 0 first), returning the loads so callers can
// flip individual bits later.
func bitSet(t *testing.T, e *core.Engine, nets []core.NetID, bits []bool) []core.Load {
	t.Helper()
	loads := make([]core.Load, len(nets))
	for i, n := range nets {
		l, err := e.NewLoad(n)
		require.NoError(t, err)
		loads[i] = l
	}
	e.Energize()
	for i, l := range loads {
		l.Set(e, bits[i])
	}
	return loads
}

func TestNOT_TruthTable(t *testing.T) {
	for _, in := range []bool{false, true} {
		e := core.NewEngine()
		g, err := NewNOT(e)
		require.NoError(t, err)
		bitSet(t, e, []core.NetID{g.I}, []bool{in})
		require.Equal(t, !in, e.NetEnergized(g.O))
	}
}

func TestNOR2_TruthTable(t *testing.T) {
	cases := []struct{ a, b, want bool }{
		{false, false, true},
		{false, true, false},
		{true, false, false},
		{true, true, false},
	}
	for _, c := range cases {
		e := core.NewEngine()
		g, err := NewNOR2(e)
		require.NoError(t, err)
		bitSet(t, e, g.I[:], []bool{c.a, c.b})
		require.Equal(t, c.want, e.NetEnergized(g.O))
	}
}

func TestOR2_TruthTable(t *testing.T) {
	cases := []struct{ a, b, want bool }{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, true},
	}
	for _, c := range cases {
		e := core.NewEngine()
		g, err := NewOR2(e)
		require.NoError(t, err)
		bitSet(t, e, g.I[:], []bool{c.a, c.b})
		require.Equal(t, c.want, e.NetEnergized(g.O))
	}
}

func TestOR3_TruthTable(t *testing.T) {
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for c := 0; c < 2; c++ {
				e := core.NewEngine()
				g, err := NewOR3(e)
				require.NoError(t, err)
				bitSet(t, e, g.I[:], []bool{a != 0, b != 0, c != 0})
				want := a != 0 || b != 0 || c != 0
				require.Equal(t, want, e.NetEnergized(g.O))
			}
		}
	}
}

func TestNAND2_TruthTable(t *testing.T) {
	cases := []struct{ a, b, want bool }{
		{false, false, true},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for _, c := range cases {
		e := core.NewEngine()
		g, err := NewNAND2(e)
		require.NoError(t, err)
		bitSet(t, e, g.I[:], []bool{c.a, c.b})
		require.Equal(t, c.want, e.NetEnergized(g.O))
	}
}

func TestAND2_TruthTable(t *testing.T) {
	cases := []struct{ a, b, want bool }{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, c := range cases {
		e := core.NewEngine()
		g, err := NewAND2(e)
		require.NoError(t, err)
		bitSet(t, e, g.I[:], []bool{c.a, c.b})
		require.Equal(t, c.want, e.NetEnergized(g.O))
	}
}

func TestXOR2_TruthTable(t *testing.T) {
	cases := []struct{ a, b, want bool }{
		{false, false, false},
		{false, true, true},
		{true, false, true},
		{true, true, false},
	}
	for _, c := range cases {
		e := core.NewEngine()
		g, err := NewXOR2(e)
		require.NoError(t, err)
		bitSet(t, e, g.I[:], []bool{c.a, c.b})
		require.Equal(t, c.want, e.NetEnergized(g.O))
	}
}

func TestXNOR2_TruthTable(t *testing.T) {
	cases := []struct{ a, b, want bool }{
		{false, false, true},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, c := range cases {
		e := core.NewEngine()
		g, err := NewXNOR2(e)
		require.NoError(t, err)
		bitSet(t, e, g.I[:], []bool{c.a, c.b})
		require.Equal(t, c.want, e.NetEnergized(g.O))
	}
}

func TestXOR2_ToggleAfterEnergize(t *testing.T) {
	e := core.NewEngine()
	g, err := NewXOR2(e)
	require.NoError(t, err)
	la, err := e.NewLoad(g.I[0])
	require.NoError(t, err)
	lb, err := e.NewLoad(g.I[1])
	require.NoError(t, err)
	e.Energize()

	require.False(t, e.NetEnergized(g.O))
	la.Set(e, true)
	require.True(t, e.NetEnergized(g.O))
	lb.Set(e, true)
	require.False(t, e.NetEnergized(g.O))
	la.Set(e, false)
	require.True(t, e.NetEnergized(g.O))
}

func TestBUF1_PassThrough(t *testing.T) {
	e := core.NewEngine()
	b, err := NewBUF1(e)
	require.NoError(t, err)
	require.Equal(t, b.I, b.O)

	l, err := e.NewLoad(b.I)
	require.NoError(t, err)
	e.Energize()
	l.Set(e, true)
	require.True(t, e.NetEnergized(b.O))
}

func TestBUF2_PassThrough(t *testing.T) {
	e := core.NewEngine()
	b, err := NewBUF2(e)
	require.NoError(t, err)
	require.Equal(t, b.I, b.O)
}
