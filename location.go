package hako

import (
	"fmt"
	"slices"
)

// Location addresses one component value: the archetype the entity was
// migrated into when the value was written, and the value's position in its
// type's storage.
type Location struct {
	Archetype ArchetypeIndex
	Position  int
}

// LocationTable maps each entity to its ordered list of locations, one per
// entry of the entity's current layout and in the same order.
type LocationTable struct {
	locations [][]Location // indexed by entity id, nil if absent
	count     int
}

// NewLocationTable creates an empty table with room for capacity entities.
func NewLocationTable(capacity int) *LocationTable {
	return &LocationTable{locations: make([][]Location, 0, capacity)}
}

// Insert establishes the initial location list of e. It panics if e already
// has an entry.
func (t *LocationTable) Insert(e Entity, locs []Location) {
	for int(e) >= len(t.locations) {
		t.locations = append(t.locations, nil)
	}
	if t.locations[e] != nil {
		panic(fmt.Sprintf("hako: entity %d already has locations", e))
	}
	if locs == nil {
		locs = []Location{}
	}
	t.locations[e] = slices.Clip(slices.Clone(locs))
	t.count++
}

// Has reports whether e has an entry.
func (t *LocationTable) Has(e Entity) bool {
	return int(e) < len(t.locations) && t.locations[e] != nil
}

// Get returns the location list of e. The slice is owned by the table and
// must not be modified. It panics if e has no entry.
func (t *LocationTable) Get(e Entity) []Location {
	return t.mustGet(e)
}

// Append adds loc to the end of e's list. It must be paired with appending
// the matching component ID to e's layout.
func (t *LocationTable) Append(e Entity, loc Location) {
	t.locations[e] = append(t.mustGet(e), loc)
}

// InsertAt places loc at position i of e's list, for layouts that insert the
// new component ID at i instead of appending it.
func (t *LocationTable) InsertAt(e Entity, i int, loc Location) {
	t.locations[e] = slices.Insert(t.mustGet(e), i, loc)
}

// Len returns the number of entities with an entry.
func (t *LocationTable) Len() int {
	return t.count
}

func (t *LocationTable) mustGet(e Entity) []Location {
	if !t.Has(e) {
		panic(fmt.Sprintf("hako: entity %d has no locations", e))
	}
	return t.locations[e]
}
