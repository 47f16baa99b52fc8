package seismic

import (
	"fmt"
	"math"
)

// dtTolerance is the relative tolerance used when deciding whether two
// traces share a sample interval.
const dtTolerance = 1e-9

// TimeSeries is a uniformly-sampled scalar waveform trace: a time base, an
// attribute store, and a contiguous float64 sample buffer. It is the unit
// of data every processing algorithm in the pipeline operates on.
//
// The type has strict value semantics: a TimeSeries exclusively owns its
// buffer, time base, metadata, error log, and history, and Clone/CopyFrom
// deep-copy all of them. Instances are not internally synchronized; sharing
// one across goroutines requires external exclusivity or a Clone per
// worker.
type TimeSeries struct {
	TimeBase TimeBase
	Metadata Metadata

	// Elog accumulates per-object processing problems as algorithms touch
	// the trace, so a damaged trace carries the story of what went wrong.
	Elog ErrorLogger
	// History records the object's identity and processing lineage.
	History ProcessingHistory

	s []float64
}

// New returns an empty trace: zero-length buffer, default time base, empty
// metadata. The trace is created dead; callers mark it live once the time
// base and samples describe real data.
func New() *TimeSeries {
	return &TimeSeries{}
}

// NewSized returns a trace whose buffer holds exactly n zero-valued
// samples, ready for in-place filling without growth. A negative n is
// rejected with ErrNegativeLength; the count is never clamped, and no
// partially-built object is returned. Like New, the trace starts dead.
func NewSized(n int) (*TimeSeries, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeLength, n)
	}
	return &TimeSeries{s: make([]float64, n)}, nil
}

// NewFromComponents returns a trace built from copies of the supplied time
// base and metadata, with an empty sample buffer. The caller is responsible
// for populating samples consistently with tb.
func NewFromComponents(tb TimeBase, md Metadata) *TimeSeries {
	return &TimeSeries{
		TimeBase: tb.Clone(),
		Metadata: md.Clone(),
	}
}

// Clone returns a deep copy: buffer, time base, metadata, error log, and
// history are all independently mutable from the receiver's.
func (ts *TimeSeries) Clone() *TimeSeries {
	out := &TimeSeries{
		TimeBase: ts.TimeBase.Clone(),
		Metadata: ts.Metadata.Clone(),
		Elog:     ts.Elog.Clone(),
		History:  ts.History.Clone(),
	}
	if ts.s != nil {
		out.s = make([]float64, len(ts.s))
		copy(out.s, ts.s)
	}
	return out
}

// CopyFrom replaces the receiver's state with a deep copy of other's.
// Copying a trace onto itself is a no-op. Returns the receiver so copies
// can be chained.
func (ts *TimeSeries) CopyFrom(other *TimeSeries) *TimeSeries {
	if ts == other {
		return ts
	}
	*ts = *other.Clone()
	return ts
}

// Nsamp returns the number of samples. The buffer length is the
// authoritative sample count for the trace.
func (ts *TimeSeries) Nsamp() int {
	return len(ts.s)
}

// Endtime returns the time of the last sample, t0 + dt*(n-1). For an empty
// buffer there is no last sample; the documented sentinel t0 - dt is
// returned instead. Never fails.
func (ts *TimeSeries) Endtime() float64 {
	return ts.TimeBase.T0 + ts.TimeBase.DT*float64(len(ts.s)-1)
}

// Time returns the time of sample i on this trace's time base.
func (ts *TimeSeries) Time(i int) float64 {
	return ts.TimeBase.Time(i)
}

// SampleNumber returns the sample index nearest to time t.
func (ts *TimeSeries) SampleNumber(t float64) int {
	return ts.TimeBase.SampleNumber(t)
}

// At returns sample i with bounds and liveness checking. It fails with an
// error matching ErrOutOfRange when i is outside [0, Nsamp()), and for any
// i when the trace is dead: stale buffer contents on a killed trace must
// never be read as if valid.
func (ts *TimeSeries) At(i int) (float64, error) {
	if !ts.TimeBase.Live() {
		return 0, fmt.Errorf("%w: trace is marked dead", ErrOutOfRange)
	}
	if i < 0 || i >= len(ts.s) {
		return 0, fmt.Errorf("%w: index %d, %d samples", ErrOutOfRange, i, len(ts.s))
	}
	return ts.s[i], nil
}

// Samples returns the underlying sample buffer without copying. This is
// the unchecked escape hatch for bulk numeric code that needs a flat
// contiguous array; it bypasses both bounds and liveness checks, and
// writes through it mutate the trace directly. Code that cannot guarantee
// its own indexing should use At instead.
func (ts *TimeSeries) Samples() []float64 {
	return ts.s
}

// SetSamples installs s as the trace's buffer, taking ownership of the
// slice. The caller must not retain its own references to s.
func (ts *TimeSeries) SetSamples(s []float64) {
	ts.s = s
}

// Stack adds other's samples into the receiver in place after aligning the
// two traces on a common time axis, approximating a simple superposition
// stack. The
// alignment offset is round((other.t0 - t0)/dt); only the overlapping
// window is summed. Receiver samples outside other's window are unchanged,
// other's samples outside the receiver's window are ignored, and the
// receiver's buffer is never resized. other is not mutated.
//
// Traces must share a sample interval (within a small relative tolerance);
// otherwise Stack rejects with ErrIntervalMismatch rather than resampling.
// If either trace is dead, or either buffer is empty, Stack is a no-op;
// dead data is never summed into valid-looking output.
func (ts *TimeSeries) Stack(other *TimeSeries) error {
	if !ts.TimeBase.Live() || !other.TimeBase.Live() {
		return nil
	}
	if len(ts.s) == 0 || len(other.s) == 0 {
		return nil
	}
	dt := ts.TimeBase.DT
	if dt <= 0 {
		return fmt.Errorf("%w: nonpositive interval %g", ErrIntervalMismatch, dt)
	}
	if math.Abs(other.TimeBase.DT-dt) > dtTolerance*dt {
		return fmt.Errorf("%w: %g vs %g", ErrIntervalMismatch, dt, other.TimeBase.DT)
	}

	// Decide overlap in float64 before narrowing to int: a huge t0
	// difference is a legitimate disjoint-window no-op, and converting it
	// straight to int would produce an implementation-specific offset.
	off := math.Round((other.TimeBase.T0 - ts.TimeBase.T0) / dt)
	if off >= float64(len(ts.s)) || -off >= float64(len(other.s)) {
		return nil
	}
	offset := int(off)
	j := 0
	if offset < 0 {
		j = -offset
	}
	for ; j < len(other.s); j++ {
		i := j + offset
		if i >= len(ts.s) {
			break
		}
		ts.s[i] += other.s[j]
	}
	return nil
}
