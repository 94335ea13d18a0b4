package hako

import (
	"fmt"
	"iter"
)

// noArchetype marks an entity slot in the owner index that has no archetype.
const noArchetype = ^ArchetypeIndex(0)

// Registry owns every archetype of a World, allocates archetype indices and
// resolves archetypes by layout or by member entity.
//
// Both lookups are backed by indices kept in step with every mutation, so at
// most one archetype can exist per layout and an entity can belong to at most
// one archetype.
type Registry struct {
	archetypes []*Archetype
	byLayout   map[uint64][]ArchetypeIndex // layout hash -> archetypes in that bucket
	owner      []ArchetypeIndex            // entity id -> archetype, noArchetype if none
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		archetypes: make([]*Archetype, 0, 16),
		byLayout:   make(map[uint64][]ArchetypeIndex),
	}
}

// Create allocates the next index and stores an empty archetype for layout.
// It panics if an archetype with an equal layout already exists.
func (r *Registry) Create(layout Layout) *Archetype {
	h := layout.hash()
	for _, idx := range r.byLayout[h] {
		if r.archetypes[idx].layout.Equal(layout) {
			panic(fmt.Sprintf("hako: archetype %d already has layout %s", idx, layout))
		}
	}
	a := newArchetype(ArchetypeIndex(len(r.archetypes)), layout.Clone())
	r.archetypes = append(r.archetypes, a)
	r.byLayout[h] = append(r.byLayout[h], a.index)
	return a
}

// Get returns the archetype at index. An out of range index is a caller bug
// and panics.
func (r *Registry) Get(index ArchetypeIndex) *Archetype {
	if int(index) >= len(r.archetypes) {
		panic(fmt.Sprintf("hako: archetype index %d out of range [0, %d)", index, len(r.archetypes)))
	}
	return r.archetypes[index]
}

// Len returns the number of archetypes.
func (r *Registry) Len() int {
	return len(r.archetypes)
}

// All yields archetypes in index order.
func (r *Registry) All() iter.Seq[*Archetype] {
	return func(yield func(*Archetype) bool) {
		for _, a := range r.archetypes {
			if !yield(a) {
				return
			}
		}
	}
}

// FindByLayout returns the archetype whose layout equals layout.
func (r *Registry) FindByLayout(layout Layout) (*Archetype, bool) {
	for _, idx := range r.byLayout[layout.hash()] {
		if a := r.archetypes[idx]; a.layout.Equal(layout) {
			return a, true
		}
	}
	return nil, false
}

// FindOrCreate returns the archetype for layout, creating it when missing.
// The boolean reports whether a new archetype was created.
func (r *Registry) FindOrCreate(layout Layout) (*Archetype, bool) {
	if a, ok := r.FindByLayout(layout); ok {
		return a, false
	}
	return r.Create(layout), true
}

// FindByEntity returns the archetype e is assigned to.
func (r *Registry) FindByEntity(e Entity) (*Archetype, bool) {
	if int(e) >= len(r.owner) {
		return nil, false
	}
	idx := r.owner[e]
	if idx == noArchetype {
		return nil, false
	}
	return r.archetypes[idx], true
}

// Assign makes e a member of the archetype at index. It panics if e already
// belongs to an archetype.
func (r *Registry) Assign(index ArchetypeIndex, e Entity) {
	a := r.Get(index)
	r.grow(e)
	if cur := r.owner[e]; cur != noArchetype {
		panic(fmt.Sprintf("hako: entity %d already belongs to archetype %d", e, cur))
	}
	a.assign(e)
	r.owner[e] = index
}

// Unassign detaches e from its archetype and returns that archetype's index.
// It panics if e belongs to no archetype.
func (r *Registry) Unassign(e Entity) ArchetypeIndex {
	a, ok := r.FindByEntity(e)
	if !ok {
		panic(fmt.Sprintf("hako: entity %d has no archetype", e))
	}
	a.unassign(e)
	r.owner[e] = noArchetype
	return a.index
}

// grow extends the owner index so e is addressable.
func (r *Registry) grow(e Entity) {
	for int(e) >= len(r.owner) {
		r.owner = append(r.owner, noArchetype)
	}
}
