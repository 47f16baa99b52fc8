package seismic

import "math"

// TimeRef identifies the reference frame of a trace's time axis.
type TimeRef int

const (
	// TimeRefUTC means t0 is an absolute epoch time.
	TimeRefUTC TimeRef = iota
	// TimeRefRelative means t0 is relative to some event (e.g. shot time);
	// the accumulated shift back to absolute time is retained.
	TimeRefRelative
)

// Gap marks a time window [Start, End) in which samples are not valid data
// (telemetry dropout, hardware glitch, etc.).
type Gap struct {
	Start float64
	End   float64
}

// TimeBase defines the uniform time axis of a trace: start time, sample
// interval, a liveness flag, and any known data gaps. It deliberately does
// NOT store a sample count: the sample buffer's length is authoritative,
// which removes any chance of the two diverging.
type TimeBase struct {
	// T0 is the time of the first sample.
	T0 float64
	// DT is the sample interval. Must be > 0 for a usable trace.
	DT float64

	live  bool
	tref  TimeRef
	shift float64
	gaps  []Gap
}

// Live reports whether the trace currently represents valid, usable data.
// Every data-reading operation checks this once up front; dead data is
// never readable even if stale samples remain in the buffer.
func (tb *TimeBase) Live() bool {
	return tb.live
}

// Kill marks the trace invalid. Buffer contents are left in place but are
// no longer readable through checked accessors.
func (tb *TimeBase) Kill() {
	tb.live = false
}

// SetLive marks the trace valid.
func (tb *TimeBase) SetLive() {
	tb.live = true
}

// TimeReference returns the reference frame of the time axis.
func (tb *TimeBase) TimeReference() TimeRef {
	return tb.tref
}

// Time returns the time of sample i: t0 + dt*i. It performs no bounds
// checking; callers own the valid index range.
func (tb *TimeBase) Time(i int) float64 {
	return tb.T0 + tb.DT*float64(i)
}

// SampleNumber returns the sample index nearest to time t. A nonpositive
// interval defines no sample grid; SampleNumber returns 0 in that case
// rather than converting a NaN or infinity to int.
func (tb *TimeBase) SampleNumber(t float64) int {
	if tb.DT <= 0 {
		return 0
	}
	return int(math.Round((t - tb.T0) / tb.DT))
}

// ShiftToRelative rebases the time axis so that times are measured
// relative to tshift (t0 becomes t0-tshift). Repeated shifts accumulate so
// ShiftToAbsolute can always restore the original frame.
func (tb *TimeBase) ShiftToRelative(tshift float64) {
	tb.T0 -= tshift
	tb.shift += tshift
	tb.tref = TimeRefRelative
}

// ShiftToAbsolute undoes all accumulated relative shifts, restoring the
// absolute (UTC) time frame. A no-op if the axis is already absolute.
func (tb *TimeBase) ShiftToAbsolute() {
	tb.T0 += tb.shift
	tb.shift = 0
	tb.tref = TimeRefUTC
}

// AddGap records a window of invalid data on the time axis.
func (tb *TimeBase) AddGap(g Gap) {
	tb.gaps = append(tb.gaps, g)
}

// InGap reports whether time t falls inside any recorded gap.
func (tb *TimeBase) InGap(t float64) bool {
	for _, g := range tb.gaps {
		if t >= g.Start && t < g.End {
			return true
		}
	}
	return false
}

// Gaps returns a copy of the recorded gap windows.
func (tb *TimeBase) Gaps() []Gap {
	if len(tb.gaps) == 0 {
		return nil
	}
	out := make([]Gap, len(tb.gaps))
	copy(out, tb.gaps)
	return out
}

// Clone returns a deep copy sharing no state with the receiver.
func (tb *TimeBase) Clone() TimeBase {
	out := *tb
	out.gaps = tb.Gaps()
	return out
}
