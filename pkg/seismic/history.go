package seismic

import (
	"time"

	"github.com/google/uuid"
)

// Stage is one step in a trace's processing lineage.
type Stage struct {
	// ID identifies the object state this stage produced.
	ID uuid.UUID
	// Parent is the object state the stage consumed; uuid.Nil for an
	// origin stage.
	Parent    uuid.UUID
	Algorithm string
	CreatedAt time.Time
}

// ProcessingHistory tracks a trace's identity and the chain of algorithms
// that produced it. Only the in-object record lives here; persisting it to
// a provenance database is the pipeline's concern.
//
// The zero value is an undefined history with no identity.
type ProcessingHistory struct {
	id     uuid.UUID
	stages []Stage
}

// Defined reports whether the history has been given an origin.
func (h *ProcessingHistory) Defined() bool {
	return h.id != uuid.Nil
}

// ID returns the identity of the current object state, or uuid.Nil when
// the history is undefined.
func (h *ProcessingHistory) ID() uuid.UUID {
	return h.id
}

// SetOrigin stamps the trace as raw input produced by algorithm (e.g. the
// reader that created it), assigning a fresh identity and discarding any
// prior lineage. Returns the new identity.
func (h *ProcessingHistory) SetOrigin(algorithm string) uuid.UUID {
	h.id = uuid.New()
	h.stages = []Stage{{
		ID:        h.id,
		Parent:    uuid.Nil,
		Algorithm: algorithm,
		CreatedAt: time.Now(),
	}}
	return h.id
}

// NewStage records that algorithm transformed the current object state
// into a new one, and returns the new identity. Calling NewStage on an
// undefined history behaves like SetOrigin.
func (h *ProcessingHistory) NewStage(algorithm string) uuid.UUID {
	if !h.Defined() {
		return h.SetOrigin(algorithm)
	}
	parent := h.id
	h.id = uuid.New()
	h.stages = append(h.stages, Stage{
		ID:        h.id,
		Parent:    parent,
		Algorithm: algorithm,
		CreatedAt: time.Now(),
	})
	return h.id
}

// Stages returns the lineage oldest-first as a copy.
func (h *ProcessingHistory) Stages() []Stage {
	if len(h.stages) == 0 {
		return nil
	}
	out := make([]Stage, len(h.stages))
	copy(out, h.stages)
	return out
}

// Clone returns an independently mutable copy of the history.
func (h *ProcessingHistory) Clone() ProcessingHistory {
	out := *h
	out.stages = h.Stages()
	return out
}
