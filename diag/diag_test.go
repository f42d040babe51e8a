package diag

import (
	"strings"
	"testing"

	"github.com/silinet/transistorsim/core"
	"github.com/silinet/transistorsim/ksa"
	"github.com/stretchr/testify/require"
)

func TestOutline_OneLinePerLayer(t *testing.T) {
	e := core.NewEngine()
	a, err := ksa.New(e, ksa.Width16)
	require.NoError(t, err)

	out := Outline(a)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(a.Layers)+1, "header plus one line per layer")
}

func TestStateOutline_ReflectsLiveNets(t *testing.T) {
	e := core.NewEngine()
	a, err := ksa.New(e, ksa.Width16)
	require.NoError(t, err)
	io, err := ksa.NewIO(e, a)
	require.NoError(t, err)
	e.Energize()
	io.SetOperands(e, 0x0001, 0x0001, false)

	out := StateOutline(e, a)
	require.Contains(t, out, "Co")
	require.True(t, strings.Contains(out, "S") || strings.Contains(out, "0") || strings.Contains(out, "1"))
}

func TestWalk_CountsCellsAndNets(t *testing.T) {
	e := core.NewEngine()
	a, err := ksa.New(e, ksa.Width16)
	require.NoError(t, err)

	counts := Walk(a)
	require.Greater(t, counts.Cells, 0)
	require.Greater(t, counts.Nets, 0)

	visited := 0
	WalkOpts(a, &WalkOptions{OnCell: func(layer int, n ksa.Node) {
		visited++
	}})
	require.Equal(t, counts.Cells, visited)
}

func TestWalk_ScalesWithWidth(t *testing.T) {
	e16 := core.NewEngine()
	a16, err := ksa.New(e16, ksa.Width16)
	require.NoError(t, err)

	e32 := core.NewEngine()
	a32, err := ksa.New(e32, ksa.Width32)
	require.NoError(t, err)

	c16 := Walk(a16)
	c32 := Walk(a32)
	require.Greater(t, c32.Cells, c16.Cells)
	require.Greater(t, c32.Nets, c16.Nets)
}
