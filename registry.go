package conv

import (
	"sort"
	"sync"

	"github.com/sadashiva108/conv/visitor"
)

// ConversionFunc converts a value into the target type of the edge it is
// registered under. Implementations must be stateless; they may call back
// into the converter for nested values.
type ConversionFunc func(from interface{}, converter *Converter, options Options) (interface{}, error)

type edgeKey struct {
	source TypeKey
	target TypeKey
}

// Registry maps directed (source, target) key pairs to conversion
// functions. Reads are lock-free; every write publishes atomically, so a
// reader never observes a partially constructed edge. A Registry is seeded
// with all built-in edges on construction.
type Registry struct {
	edges     sync.Map // edgeKey -> ConversionFunc
	ancestors *visitor.SyncMap[TypeKey, []TypeKey]
	known     *visitor.SyncMap[TypeKey, bool]
}

// NewRegistry returns an isolated registry seeded with the built-in edges.
func NewRegistry() *Registry {
	registry := &Registry{
		ancestors: visitor.NewSyncMap[TypeKey, []TypeKey](),
		known:     visitor.NewSyncMap[TypeKey, bool](),
	}
	registerBuiltins(registry)
	return registry
}

var defaultRegistry = sync.OnceValue(NewRegistry)

// Default returns the process-wide registry. Custom registrations on it are
// visible to every converter built with New.
func Default() *Registry {
	return defaultRegistry()
}

// Register adds or overwrites an edge; the last registration wins and takes
// effect for all subsequent lookups, including concurrent ones.
func (r *Registry) Register(source, target TypeKey, fn ConversionFunc) {
	r.edges.Store(edgeKey{source: source, target: target}, fn)
	r.known.Put(source, true)
}

// RegisterAncestors declares is-a edges for a key, in most-specific-first
// order. The ancestor walk consults them when no direct edge exists.
func (r *Registry) RegisterAncestors(key TypeKey, ancestors ...TypeKey) {
	existing, _ := r.ancestors.Get(key)
	merged := make([]TypeKey, 0, len(existing)+len(ancestors))
	merged = append(merged, existing...)
	merged = append(merged, ancestors...)
	r.ancestors.Put(key, merged)
	r.known.Put(key, true)
}

// Lookup returns the directly registered edge for the exact pair.
func (r *Registry) Lookup(source, target TypeKey) (ConversionFunc, bool) {
	value, ok := r.edges.Load(edgeKey{source: source, target: target})
	if !ok {
		return nil, false
	}
	return value.(ConversionFunc), true
}

// resolve finds the edge for a pair, walking the source's declared
// ancestors in order when no exact registration exists. The first match is
// memoized as a direct registration, so later lookups for the same pair hit
// in O(1). Redundant concurrent resolutions settle on the same function.
func (r *Registry) resolve(source, target TypeKey) (ConversionFunc, bool) {
	if fn, ok := r.Lookup(source, target); ok {
		return fn, true
	}
	visited := map[TypeKey]bool{source: true}
	queue, _ := r.ancestors.Get(source)
	queue = append([]TypeKey(nil), queue...)
	for i := 0; i < len(queue); i++ {
		ancestor := queue[i]
		if visited[ancestor] {
			continue
		}
		visited[ancestor] = true
		if fn, ok := r.Lookup(ancestor, target); ok {
			r.edges.Store(edgeKey{source: source, target: target}, fn)
			return fn, true
		}
		more, _ := r.ancestors.Get(ancestor)
		queue = append(queue, more...)
	}
	return nil, false
}

// isKnown reports whether a key has any registration or declared ancestry.
func (r *Registry) isKnown(key TypeKey) bool {
	known, _ := r.known.Get(key)
	return known
}

// Supported returns every reachable target per source, sorted by name, for
// tooling and tests. Memoized ancestor resolutions appear once performed.
func (r *Registry) Supported() map[TypeKey][]TypeKey {
	result := map[TypeKey][]TypeKey{}
	r.edges.Range(func(key, _ interface{}) bool {
		edge := key.(edgeKey)
		result[edge.source] = append(result[edge.source], edge.target)
		return true
	})
	for _, targets := range result {
		sort.Slice(targets, func(i, j int) bool { return targets[i].name < targets[j].name })
	}
	return result
}

// registerBuiltins seeds ancestor declarations and every built-in edge.
func registerBuiltins(r *Registry) {
	for _, key := range []TypeKey{Int8, Int16, Int32, Int64, Int, Uint8, Uint16, Uint32, Uint64, Uint, Float32, Float64, Rune, BigInt, BigFloat} {
		r.RegisterAncestors(key, Number)
	}
	for _, key := range []TypeKey{Time, Duration, Date, TimeOfDay, DateTime, MonthDay, YearMonth, Year, Period, ZoneID, ZoneOffset} {
		r.RegisterAncestors(key, Temporal)
	}
	registerNumericEdges(r)
	registerTextEdges(r)
	registerTemporalEdges(r)
	registerStructuredEdges(r)
}
