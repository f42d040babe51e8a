package ksa

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/silinet/transistorsim/core"
	"github.com/stretchr/testify/require"
)

func evalAdder(t *testing.T, width int, a, b uint64, cin bool) (sum uint64, cout bool) {
	t.Helper()
	e := core.NewEngine()
	adder, err := New(e, width)
	require.NoError(t, err)
	io, err := NewIO(e, adder)
	require.NoError(t, err)
	e.Energize()
	io.SetOperands(e, a, b, cin)
	return io.Result(e)
}

func maskFor(width int) uint64 {
	if width == 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(width)) - 1
}

func checkAdderProperty(t *testing.T, width int, a, b uint64, cin bool) {
	t.Helper()
	mask := maskFor(width)
	a &= mask
	b &= mask

	sum, cout := evalAdder(t, width, a, b, cin)

	cinBit := uint64(0)
	if cin {
		cinBit = 1
	}
	wantSum, carry := bits.Add64(a, b, cinBit)
	wantCout := carry == 1
	if width < 64 {
		wantCout = wantSum>>uint(width)&1 == 1
		wantSum &= mask
	}
	require.Equal(t, wantSum, sum, "sum width=%d a=%#x b=%#x cin=%v", width, a, b, cin)
	require.Equal(t, wantCout, cout, "cout width=%d a=%#x b=%#x cin=%v", width, a, b, cin)
}

func TestAdder_UnsupportedWidth(t *testing.T) {
	e := core.NewEngine()
	_, err := New(e, 24)
	require.Error(t, err)
}

func TestAdder_ConcreteScenarios(t *testing.T) {
	cases := []struct {
		width     int
		a, b      uint64
		cin       bool
		wantSum   uint64
		wantCarry bool
	}{
		{16, 0x0001, 0x0001, false, 0x0002, false},
		{16, 0xFFFF, 0x0001, false, 0x0000, true},
		{16, 0xFFFF, 0xFFFF, true, 0xFFFF, true},
		{32, 0x7FFFFFFF, 0x00000001, false, 0x80000000, false},
		{64, 0xFFFFFFFFFFFFFFFF, 0x0000000000000000, true, 0x0000000000000000, true},
		{64, 0xAAAAAAAAAAAAAAAA, 0x5555555555555555, false, 0xFFFFFFFFFFFFFFFF, false},
	}
	for _, c := range cases {
		sum, cout := evalAdder(t, c.width, c.a, c.b, c.cin)
		require.Equal(t, c.wantSum, sum, "sum width=%d a=%#x b=%#x cin=%v", c.width, c.a, c.b, c.cin)
		require.Equal(t, c.wantCarry, cout, "cout width=%d a=%#x b=%#x cin=%v", c.width, c.a, c.b, c.cin)
	}
}

func TestAdder_PropertyStress(t *testing.T) {
	if testing.Short() {
		t.Skip("stress test skipped in short mode")
	}
	const iterationsPerWidth = 250
	seed := int64(20260731)
	for _, width := range []int{Width16, Width32, Width64} {
		rng := rand.New(rand.NewSource(seed + int64(width)))
		for i := 0; i < iterationsPerWidth; i++ {
			a := rng.Uint64()
			b := rng.Uint64()
			cin := rng.Intn(2) == 1
			checkAdderProperty(t, width, a, b, cin)
		}
	}
}

func TestAdder_ReusesNetlistAcrossInputChanges(t *testing.T) {
	e := core.NewEngine()
	adder, err := New(e, Width16)
	require.NoError(t, err)
	io, err := NewIO(e, adder)
	require.NoError(t, err)
	e.Energize()

	cases := []struct {
		a, b uint64
		cin  bool
	}{
		{0x0001, 0x0001, false},
		{0xFFFF, 0x0001, false},
		{0x0000, 0x0000, false},
		{0x1234, 0x4321, true},
		{0xFFFF, 0xFFFF, true},
		{0x0000, 0x0000, false},
	}
	for _, c := range cases {
		io.SetOperands(e, c.a, c.b, c.cin)
		sum, cout := io.Result(e)
		want := c.a + c.b
		if c.cin {
			want++
		}
		require.EqualValues(t, want&0xFFFF, sum, "sum a=%#x b=%#x cin=%v", c.a, c.b, c.cin)
		require.Equal(t, want>>16&1 == 1, cout, "cout a=%#x b=%#x cin=%v", c.a, c.b, c.cin)
	}
}

// The settled state must be a function of the input-driver states only,
// independent of the order and path the inputs took to get there.
func TestAdder_InputOrderIndependence(t *testing.T) {
	const a, b uint64 = 0xBEEF, 0x1234

	direct := func() (uint64, bool) {
		e := core.NewEngine()
		adder, err := New(e, Width16)
		require.NoError(t, err)
		io, err := NewIO(e, adder)
		require.NoError(t, err)
		e.Energize()
		io.SetOperands(e, a, b, true)
		return io.Result(e)
	}
	staged := func() (uint64, bool) {
		e := core.NewEngine()
		adder, err := New(e, Width16)
		require.NoError(t, err)
		io, err := NewIO(e, adder)
		require.NoError(t, err)
		e.Energize()
		io.SetOperands(e, 0, b, false)
		io.SetOperands(e, a, 0, true)
		io.SetOperands(e, a, b, true)
		return io.Result(e)
	}

	sum1, cout1 := direct()
	sum2, cout2 := staged()
	require.Equal(t, sum1, sum2)
	require.Equal(t, cout1, cout2)
}

func TestAdder_EdgeBoundaries(t *testing.T) {
	for _, width := range []int{Width16, Width32, Width64} {
		mask := maskFor(width)
		checkAdderProperty(t, width, 0, 0, false)
		checkAdderProperty(t, width, mask, 0, false)
		checkAdderProperty(t, width, 0, mask, false)
		checkAdderProperty(t, width, mask, mask, true)
		checkAdderProperty(t, width, mask, 1, false)
	}
}
