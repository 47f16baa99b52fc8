package seismic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeTrace builds a live trace with the given time base and samples.
func makeTrace(t *testing.T, t0, dt float64, samples []float64) *TimeSeries {
	t.Helper()
	ts, err := NewSized(len(samples))
	require.NoError(t, err)
	ts.TimeBase.T0 = t0
	ts.TimeBase.DT = dt
	ts.TimeBase.SetLive()
	copy(ts.Samples(), samples)
	return ts
}

func TestStackIdenticalAxes(t *testing.T) {
	a := makeTrace(t, 0, 1.0, []float64{1, 2, 3})
	b := makeTrace(t, 0, 1.0, []float64{10, 20, 30})

	require.NoError(t, a.Stack(b))
	assert.Equal(t, []float64{11, 22, 33}, a.Samples())
	// other is never mutated
	assert.Equal(t, []float64{10, 20, 30}, b.Samples())
}

func TestStackPositiveOffset(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{1, 2, 3})
	b := makeTrace(t, 1.0, 1.0, []float64{10, 10, 10})

	require.NoError(t, a.Stack(b))
	// Overlap starts at a's index 1; b's last sample falls past a's window
	assert.Equal(t, []float64{1, 12, 13}, a.Samples())
	assert.Equal(t, 2.0, a.Endtime())
}

func TestStackNegativeOffset(t *testing.T) {
	a := makeTrace(t, 5.0, 1.0, []float64{1, 1, 1, 1})
	b := makeTrace(t, 3.0, 1.0, []float64{10, 20, 30, 40})

	require.NoError(t, a.Stack(b))
	// b's first two samples precede a's window and are ignored
	assert.Equal(t, []float64{31, 41, 1, 1}, a.Samples())
}

func TestStackDisjointWindows(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{1, 2, 3})
	b := makeTrace(t, 100.0, 1.0, []float64{5, 5})

	require.NoError(t, a.Stack(b))
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())
}

func TestStackExtremeOffsets(t *testing.T) {
	// Start times can be epoch-scale or worse; windows that far apart must
	// behave exactly like any other disjoint pair
	a := makeTrace(t, 0.0, 1.0, []float64{1, 2, 3})
	b := makeTrace(t, 1e30, 1.0, []float64{5, 5, 5})

	require.NoError(t, a.Stack(b))
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())

	c := makeTrace(t, -1e30, 1.0, []float64{5, 5, 5})
	require.NoError(t, a.Stack(c))
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())
}

func TestStackNeverResizesTarget(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{1, 1})
	b := makeTrace(t, -2.0, 1.0, []float64{9, 9, 9, 9, 9, 9, 9})

	require.NoError(t, a.Stack(b))
	assert.Equal(t, 2, a.Nsamp())
	assert.Equal(t, []float64{10, 10}, a.Samples())
}

func TestStackIntervalMismatch(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{1, 2, 3})
	b := makeTrace(t, 0.0, 0.5, []float64{1, 2, 3})

	err := a.Stack(b)
	require.ErrorIs(t, err, ErrIntervalMismatch)
	// Rejected stacks leave the target untouched
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())
}

func TestStackNonpositiveInterval(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{1, 2})
	a.TimeBase.DT = 0

	err := a.Stack(makeTrace(t, 0.0, 1.0, []float64{1, 1}))
	assert.ErrorIs(t, err, ErrIntervalMismatch)
}

func TestStackDeadOperands(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{1, 2, 3})
	b := makeTrace(t, 0.0, 1.0, []float64{10, 10, 10})

	// Dead target: no-op, buffer not corrupted
	a.TimeBase.Kill()
	require.NoError(t, a.Stack(b))
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())

	// Dead source: no-op as well
	a.TimeBase.SetLive()
	b.TimeBase.Kill()
	require.NoError(t, a.Stack(b))
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())
}

func TestStackEmptyOperands(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{1, 2, 3})
	empty := makeTrace(t, 0.0, 1.0, nil)

	require.NoError(t, a.Stack(empty))
	assert.Equal(t, []float64{1, 2, 3}, a.Samples())

	require.NoError(t, empty.Stack(a))
	assert.Equal(t, 0, empty.Nsamp())
}

func TestStackChained(t *testing.T) {
	a := makeTrace(t, 0.0, 1.0, []float64{0, 0, 0})
	b := makeTrace(t, 0.0, 1.0, []float64{1, 1, 1})
	c := makeTrace(t, 1.0, 1.0, []float64{2, 2})

	require.NoError(t, a.Stack(b))
	require.NoError(t, a.Stack(c))
	assert.Equal(t, []float64{1, 3, 3}, a.Samples())
}

func BenchmarkStack(b *testing.B) {
	n := 100000
	target, _ := NewSized(n)
	target.TimeBase.DT = 0.01
	target.TimeBase.SetLive()
	other, _ := NewSized(n)
	other.TimeBase.DT = 0.01
	other.TimeBase.SetLive()
	for i := range other.Samples() {
		other.Samples()[i] = float64(i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = target.Stack(other)
	}
}
