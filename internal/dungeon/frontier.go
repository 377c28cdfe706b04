package dungeon

import (
	"math"
	"math/rand"
	"sort"
)

// frontier is the ordered worklist of free connectors awaiting a neighbour.
// Entries may go stale; callers recheck IsFree before use.
type frontier struct {
	entries []ConnectorRef
}

func (f *frontier) len() int {
	return len(f.entries)
}

// push appends connectors to the tail in the given order.
func (f *frontier) push(refs ...ConnectorRef) {
	f.entries = append(f.entries, refs...)
}

// pop removes and returns the first entry.
func (f *frontier) pop() (ConnectorRef, bool) {
	if len(f.entries) == 0 {
		return ConnectorRef{}, false
	}
	ref := f.entries[0]
	f.entries = f.entries[1:]
	return ref, true
}

// filter rebuilds the frontier from the entries keep accepts, preserving order.
func (f *frontier) filter(keep func(ConnectorRef) bool) {
	kept := make([]ConnectorRef, 0, len(f.entries))
	for _, ref := range f.entries {
		if keep(ref) {
			kept = append(kept, ref)
		}
	}
	f.entries = kept
}

// reset replaces the frontier contents.
func (f *frontier) reset(refs []ConnectorRef) {
	f.entries = refs
}

// snapshot returns a copy of the current entries
func (f *frontier) snapshot() []ConnectorRef {
	out := make([]ConnectorRef, len(f.entries))
	copy(out, f.entries)
	return out
}

// sortByDistance orders entries farthest-first by the distance returned for
// each entry. Equal distances keep their frontier order.
func (f *frontier) sortByDistance(distance func(ConnectorRef) float64) {
	dist := make(map[ConnectorRef]float64, len(f.entries))
	for _, ref := range f.entries {
		dist[ref] = distance(ref)
	}
	sort.SliceStable(f.entries, func(i, j int) bool {
		return dist[f.entries[i]] > dist[f.entries[j]]
	})
}

// shuffleRefs randomizes a tile's newly exposed connectors before they join the frontier.
func shuffleRefs(rng *rand.Rand, refs []ConnectorRef) {
	rng.Shuffle(len(refs), func(i, j int) {
		refs[i], refs[j] = refs[j], refs[i]
	})
}

// planarDistance is the distance between two positions on the grid plane.
func planarDistance(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}
