package seismic

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
)

// Metadata is an open-ended store of auxiliary named attributes (station
// code, channel orientation, gain, ...) that are not required to define the
// waveform itself but that some algorithms need. Values are dynamically
// typed; the Get* accessors coerce on read.
//
// The zero value is an empty, usable store.
type Metadata struct {
	m map[string]any
}

// Put sets key to value, replacing any prior entry.
func (md *Metadata) Put(key string, value any) {
	if md.m == nil {
		md.m = make(map[string]any)
	}
	md.m[key] = value
}

// Get returns the raw value for key and whether it is set.
func (md *Metadata) Get(key string) (any, bool) {
	v, ok := md.m[key]
	return v, ok
}

// Has reports whether key is set.
func (md *Metadata) Has(key string) bool {
	_, ok := md.m[key]
	return ok
}

// Delete removes key. Removing an absent key is a no-op.
func (md *Metadata) Delete(key string) {
	delete(md.m, key)
}

// Len returns the number of entries.
func (md *Metadata) Len() int {
	return len(md.m)
}

// Keys returns all set keys in sorted order.
func (md *Metadata) Keys() []string {
	if len(md.m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(md.m))
	for k := range md.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetString returns the value for key coerced to a string.
func (md *Metadata) GetString(key string) (string, error) {
	v, ok := md.m[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("metadata key %s: %w", key, err)
	}
	return s, nil
}

// GetFloat64 returns the value for key coerced to a float64.
func (md *Metadata) GetFloat64(key string) (float64, error) {
	v, ok := md.m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("metadata key %s: %w", key, err)
	}
	return f, nil
}

// GetInt returns the value for key coerced to an int.
func (md *Metadata) GetInt(key string) (int, error) {
	v, ok := md.m[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, fmt.Errorf("metadata key %s: %w", key, err)
	}
	return n, nil
}

// GetBool returns the value for key coerced to a bool.
func (md *Metadata) GetBool(key string) (bool, error) {
	v, ok := md.m[key]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("metadata key %s: %w", key, err)
	}
	return b, nil
}

// Merge copies every entry of other into the receiver, overwriting
// duplicate keys.
func (md *Metadata) Merge(other Metadata) {
	for k, v := range other.m {
		md.Put(k, v)
	}
}

// Clone returns an independently mutable copy of the store. Entry values
// are copied by assignment; attribute values are expected to be scalars.
func (md *Metadata) Clone() Metadata {
	if len(md.m) == 0 {
		return Metadata{}
	}
	out := Metadata{m: make(map[string]any, len(md.m))}
	for k, v := range md.m {
		out.m[k] = v
	}
	return out
}
