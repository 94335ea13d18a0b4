package hako

import (
	"fmt"
	"slices"
)

// ArchetypeIndex identifies an archetype inside its Registry. Indices are
// dense, start at zero and are never reused.
type ArchetypeIndex uint32

// Archetype groups the entities that share one exact Layout. It tracks
// membership only; component values live in the per-type storages.
type Archetype struct {
	layout   Layout
	entities []Entity      // unordered membership list
	rows     map[Entity]int // entity -> position in entities
	index    ArchetypeIndex
}

func newArchetype(index ArchetypeIndex, layout Layout) *Archetype {
	return &Archetype{
		index:  index,
		layout: layout,
		rows:   make(map[Entity]int),
	}
}

// Index returns the registry-assigned index.
func (a *Archetype) Index() ArchetypeIndex {
	return a.index
}

// Layout returns a copy of the archetype's layout.
func (a *Archetype) Layout() Layout {
	return a.layout.Clone()
}

// Len returns the number of member entities.
func (a *Archetype) Len() int {
	return len(a.entities)
}

// Entities returns a copy of the membership list.
func (a *Archetype) Entities() []Entity {
	return slices.Clone(a.entities)
}

// Has reports whether e is a member.
func (a *Archetype) Has(e Entity) bool {
	_, ok := a.rows[e]
	return ok
}

// assign adds e to the membership list. Assigning a member twice would break
// the one-archetype-per-entity rule and panics.
func (a *Archetype) assign(e Entity) {
	if _, ok := a.rows[e]; ok {
		panic(fmt.Sprintf("hako: entity %d already assigned to archetype %d", e, a.index))
	}
	a.rows[e] = len(a.entities)
	a.entities = append(a.entities, e)
}

// unassign removes e by swapping the last member into its slot. It panics if
// e is not a member.
func (a *Archetype) unassign(e Entity) {
	row, ok := a.rows[e]
	if !ok {
		panic(fmt.Sprintf("hako: entity %d is not assigned to archetype %d", e, a.index))
	}
	last := len(a.entities) - 1
	if row < last {
		moved := a.entities[last]
		a.entities[row] = moved
		a.rows[moved] = row
	}
	a.entities = a.entities[:last]
	delete(a.rows, e)
}
