package seismic

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/wavekit-labs/wavekit/internal/logger"
)

// Severity grades how badly a posted problem damages the trace.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInformational
	// SeverityComplaint: something went wrong but the data remain usable.
	SeverityComplaint
	// SeveritySuspect: the data may be usable but should be reviewed.
	SeveritySuspect
	// SeverityInvalid: the operation left the data unusable.
	SeverityInvalid
	// SeverityFatal: the processing run itself cannot continue.
	SeverityFatal
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInformational:
		return "informational"
	case SeverityComplaint:
		return "complaint"
	case SeveritySuspect:
		return "suspect"
	case SeverityInvalid:
		return "invalid"
	case SeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// LogEntry is one recorded processing problem.
type LogEntry struct {
	Timestamp time.Time
	Algorithm string
	Badness   Severity
	Message   string
}

// defaultElogCap bounds how many entries a trace retains. Older entries
// are overwritten once the ring is full.
const defaultElogCap = 128

// ErrorLogger is a per-trace log of processing problems. Algorithms post
// entries as they damage or reject a trace, so the object carries its own
// diagnostic record through the pipeline. Entries are held in a fixed-size
// ring and mirrored to the process log.
//
// The zero value is an empty logger with the default capacity.
type ErrorLogger struct {
	entries  []LogEntry
	writePos int
	count    int
}

// NewErrorLogger returns a logger retaining at most capacity entries.
// A nonpositive capacity falls back to the default.
func NewErrorLogger(capacity int) ErrorLogger {
	if capacity <= 0 {
		capacity = defaultElogCap
	}
	return ErrorLogger{entries: make([]LogEntry, capacity)}
}

// Post records a problem reported by algorithm and mirrors it to the
// process log. Returns the badness for convenient use in return paths.
func (el *ErrorLogger) Post(algorithm, message string, badness Severity) Severity {
	if el.entries == nil {
		el.entries = make([]LogEntry, defaultElogCap)
	}
	el.entries[el.writePos] = LogEntry{
		Timestamp: time.Now(),
		Algorithm: algorithm,
		Badness:   badness,
		Message:   message,
	}
	el.writePos = (el.writePos + 1) % len(el.entries)
	if el.count < len(el.entries) {
		el.count++
	}

	mirror := logger.Get("elog")
	mirror.WithLevel(mirrorLevel(badness)).
		Str("algorithm", algorithm).
		Str("badness", badness.String()).
		Msg(message)
	return badness
}

// mirrorLevel maps trace-damage severity onto process log levels.
func mirrorLevel(badness Severity) zerolog.Level {
	switch badness {
	case SeverityDebug:
		return zerolog.DebugLevel
	case SeverityInformational:
		return zerolog.InfoLevel
	case SeverityComplaint, SeveritySuspect:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}

// Count returns the number of retained entries.
func (el *ErrorLogger) Count() int {
	return el.count
}

// Entries returns the retained entries ordered oldest to newest.
func (el *ErrorLogger) Entries() []LogEntry {
	if el.count == 0 {
		return nil
	}
	out := make([]LogEntry, 0, el.count)
	for i := 0; i < el.count; i++ {
		idx := (el.writePos - el.count + i + len(el.entries)) % len(el.entries)
		out = append(out, el.entries[idx])
	}
	return out
}

// Worst returns the highest badness among retained entries, or
// SeverityDebug when the log is empty.
func (el *ErrorLogger) Worst() Severity {
	worst := SeverityDebug
	for _, e := range el.Entries() {
		if e.Badness > worst {
			worst = e.Badness
		}
	}
	return worst
}

// Clear discards all retained entries, keeping the capacity.
func (el *ErrorLogger) Clear() {
	el.writePos = 0
	el.count = 0
}

// Clone returns an independently mutable copy of the log.
func (el *ErrorLogger) Clone() ErrorLogger {
	out := *el
	if el.entries != nil {
		out.entries = make([]LogEntry, len(el.entries))
		copy(out.entries, el.entries)
	}
	return out
}
