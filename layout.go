package hako

import (
	"encoding/binary"
	"iter"
	"slices"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Layout is the ordered sequence of component IDs that defines the shape of an
// archetype.
//
// Two layouts are equal only when their sequences are equal element for
// element, so registering A then B gives a different layout than B then A.
// Duplicates are kept as registered.
type Layout struct {
	ids  []ComponentID
	mask bitmask256
}

// NewLayout creates a layout holding ids in the given order.
func NewLayout(ids ...ComponentID) Layout {
	var l Layout
	for _, id := range ids {
		l.Register(id)
	}
	return l
}

// Register appends id to the layout.
func (l *Layout) Register(id ComponentID) {
	l.ids = append(l.ids, id)
	l.mask.set(id)
}

// Contains reports whether id appears anywhere in the layout.
func (l Layout) Contains(id ComponentID) bool {
	return l.mask.containsBit(id)
}

// Covers reports whether every component of other is also in l, ignoring
// order and multiplicity. World.ArchetypesWith matches archetypes with it.
func (l Layout) Covers(other Layout) bool {
	return l.mask.contains(other.mask)
}

// IndexOf returns the position of the first occurrence of id, or -1.
func (l Layout) IndexOf(id ComponentID) int {
	if !l.mask.containsBit(id) {
		return -1
	}
	return slices.Index(l.ids, id)
}

// Len returns the number of entries in the layout, duplicates included.
func (l Layout) Len() int {
	return len(l.ids)
}

// IDs returns a copy of the ordered component IDs.
func (l Layout) IDs() []ComponentID {
	return slices.Clone(l.ids)
}

// All yields each position and component ID in insertion order.
func (l Layout) All() iter.Seq2[int, ComponentID] {
	return func(yield func(int, ComponentID) bool) {
		for i, id := range l.ids {
			if !yield(i, id) {
				return
			}
		}
	}
}

// Equal reports sequence equality, order included.
func (l Layout) Equal(other Layout) bool {
	return slices.Equal(l.ids, other.ids)
}

// Clone returns an independent copy, safe to extend without touching l.
func (l Layout) Clone() Layout {
	return Layout{ids: slices.Clone(l.ids), mask: l.mask}
}

// Canonical returns a copy sorted by component ID. The sort is stable, so
// duplicates keep their relative order.
func (l Layout) Canonical() Layout {
	c := l.Clone()
	slices.SortStableFunc(c.ids, func(a, b ComponentID) int {
		return int(a) - int(b)
	})
	return c
}

// insertionPoint returns where id lands in a canonical layout: after any
// entries with an ID lower than or equal to it.
func (l Layout) insertionPoint(id ComponentID) int {
	i := 0
	for i < len(l.ids) && l.ids[i] <= id {
		i++
	}
	return i
}

// insertAt places id at position i.
func (l *Layout) insertAt(i int, id ComponentID) {
	l.ids = slices.Insert(l.ids, i, id)
	l.mask.set(id)
}

// hash fingerprints the ordered sequence for the registry's layout index.
func (l Layout) hash() uint64 {
	var buf [binary.MaxVarintLen64]byte
	d := xxhash.New()
	n := binary.PutUvarint(buf[:], uint64(len(l.ids)))
	_, _ = d.Write(buf[:n])
	ids := make([]byte, len(l.ids))
	for i, id := range l.ids {
		ids[i] = byte(id)
	}
	_, _ = d.Write(ids)
	return d.Sum64()
}

func (l Layout) String() string {
	var b strings.Builder
	b.WriteString("Layout{")
	for i, id := range l.ids {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(int(id)))
	}
	b.WriteString("}")
	return b.String()
}
