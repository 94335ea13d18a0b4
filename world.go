// Package hako is an archetype-based entity/component store.
//
// Components are plain Go values attached to lightweight Entity identifiers.
// Entities sharing the exact same component layout are grouped into an
// Archetype, every component type gets one append-only storage array, and a
// location table records where each entity's values live. The World keeps
// those three indices in step whenever an entity gains a component.
//
// A World is not safe for concurrent use.
package hako

import (
	"fmt"
	"iter"
	"math"
	"reflect"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// World coordinates the archetype registry, component storages and location
// table. It is the only type that mutates more than one of them per
// operation.
type World struct {
	log        *zap.Logger
	metrics    *Metrics
	events     *EventBus
	archetypes *Registry
	locations  *LocationTable
	storages   componentStorages
	components componentRegistry
	order      LayoutOrder
	nextEntity uint64
	id         uuid.UUID
}

// NewWorld creates an empty World. It panics if the configured Config is
// invalid.
//
// Parameters:
//   - opts: Options overriding the default Config, logger, metrics or
//     component storage bindings.
//
// Returns:
//   - The newly created World.
func NewWorld(opts ...Option) *World {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		panic(err.Error())
	}
	logger := o.logger
	if logger == nil {
		l, err := o.config.NewLogger()
		if err != nil {
			panic(err.Error())
		}
		logger = l
	}
	id := uuid.New()
	return &World{
		id:         id,
		log:        logger.With(zap.Stringer("world", id)),
		metrics:    o.metrics,
		events:     &EventBus{},
		archetypes: NewRegistry(),
		locations:  NewLocationTable(o.config.InitialCapacity),
		storages:   newComponentStorages(o.factories),
		components: newComponentRegistry(),
		order:      o.config.LayoutOrder,
	}
}

// ID returns the unique identifier of this World instance.
func (w *World) ID() uuid.UUID {
	return w.id
}

// Events returns the bus the World publishes EntitySpawned, EntityExtended
// and ArchetypeCreated on.
func (w *World) Events() *EventBus {
	return w.events
}

// LayoutOrder returns how the World orders layouts.
func (w *World) LayoutOrder() LayoutOrder {
	return w.order
}

// Len returns the number of entities ever spawned.
func (w *World) Len() int {
	return int(w.nextEntity)
}

// ArchetypeCount returns the number of archetypes.
func (w *World) ArchetypeCount() int {
	return w.archetypes.Len()
}

// Archetype returns the archetype at index. It panics if index is out of
// range.
func (w *World) Archetype(index ArchetypeIndex) *Archetype {
	return w.archetypes.Get(index)
}

// Archetypes yields every archetype in index order.
func (w *World) Archetypes() iter.Seq[*Archetype] {
	return w.archetypes.All()
}

// ArchetypesWith yields, in index order, every archetype whose layout holds
// all of ids.
func (w *World) ArchetypesWith(ids ...ComponentID) iter.Seq[*Archetype] {
	required := NewLayout(ids...)
	return func(yield func(*Archetype) bool) {
		for a := range w.archetypes.All() {
			if a.layout.Covers(required) && !yield(a) {
				return
			}
		}
	}
}

// ArchetypeOf returns the archetype e belongs to. It panics if e is unknown.
func (w *World) ArchetypeOf(e Entity) *Archetype {
	return w.mustArchetype(e)
}

// Locations returns a copy of e's location list. It panics if e is unknown.
func (w *World) Locations(e Entity) []Location {
	w.mustArchetype(e)
	locs := w.locations.Get(e)
	out := make([]Location, len(locs))
	copy(out, locs)
	return out
}

// Contains reports whether e was spawned by this World.
func (w *World) Contains(e Entity) bool {
	return uint64(e) < w.nextEntity
}

// ComponentType returns the Go type registered under id, or nil.
func (w *World) ComponentType(id ComponentID) reflect.Type {
	return w.components.typeOf(id)
}

// ComponentCount returns the number of registered component types.
func (w *World) ComponentCount() int {
	return w.components.len()
}

// ComponentIDOf returns the ComponentID of T in w, registering T on first
// use.
func ComponentIDOf[T any](w *World) ComponentID {
	return w.components.id(reflect.TypeFor[T]())
}

// Spawn creates a new entity carrying comp as its only component.
//
// Parameters:
//   - w: The World to spawn into.
//   - comp: The first component of the entity.
//
// Returns:
//   - The new Entity.
func Spawn[T any](w *World, comp T) Entity {
	id := w.components.id(reflect.TypeFor[T]())
	return spawn(w, id, storageFor[T](&w.storages, id), comp)
}

// Extend adds comp to e, moving e to the archetype of its extended layout.
// The new component type is appended to e's layout, or inserted at its sorted
// position under CanonicalOrder. Extending with a type e already carries adds
// a second entry; reads keep returning the first one.
//
// It panics if e is unknown to w.
//
// Parameters:
//   - w: The World where the entity resides.
//   - e: The Entity to modify.
//   - comp: The component to add.
func Extend[T any](w *World, e Entity, comp T) {
	w.mustArchetype(e)
	id := w.components.id(reflect.TypeFor[T]())
	extend(w, e, id, storageFor[T](&w.storages, id), comp)
}

// GetComponent returns a pointer to e's component of type T, or nil when T is
// not in e's layout. The pointer is valid until the next value of type T is
// stored.
//
// It panics if e is unknown to w.
func GetComponent[T any](w *World, e Entity) *T {
	a := w.mustArchetype(e)
	id, ok := w.components.lookup(reflect.TypeFor[T]())
	if !ok {
		return nil
	}
	return getComponent(w, e, a, id, storageFor[T](&w.storages, id))
}

// HasComponent reports whether T is in e's layout. It panics if e is unknown.
func HasComponent[T any](w *World, e Entity) bool {
	a := w.mustArchetype(e)
	id, ok := w.components.lookup(reflect.TypeFor[T]())
	return ok && a.layout.Contains(id)
}

// StorageOf returns the storage backing T, creating it on first use.
func StorageOf[T any](w *World) Storage[T] {
	id := w.components.id(reflect.TypeFor[T]())
	return storageFor[T](&w.storages, id)
}

// Query returns every stored value of type T as one contiguous slice, in
// insertion order. The slice aliases the storage: writing an element updates
// the stored value, appending to it never does. It returns nil if no value of
// type T was ever stored.
func Query[T any](w *World) []T {
	id, ok := w.components.lookup(reflect.TypeFor[T]())
	if !ok || w.storages.get(id) == nil {
		return nil
	}
	return storageFor[T](&w.storages, id).All()
}

func spawn[T any](w *World, id ComponentID, s Storage[T], comp T) Entity {
	e := w.allocEntity()
	a, created := w.findOrCreate(NewLayout(id))
	w.archetypes.Assign(a.index, e)
	pos := s.Push(comp)
	w.locations.Insert(e, []Location{{Archetype: a.index, Position: pos}})

	w.metrics.entitySpawned()
	w.metrics.componentStored(w.componentName(id))
	if created {
		w.announce(a)
	}
	Publish(w.events, EntitySpawned{Entity: e, Archetype: a.index, Component: id})
	return e
}

func extend[T any](w *World, e Entity, id ComponentID, s Storage[T], comp T) {
	from, ok := w.archetypes.FindByEntity(e)
	if !ok || !w.locations.Has(e) {
		w.fault(fmt.Sprintf("entity %d has no archetype", e), zap.Stringer("entity", e))
	}

	layout := from.layout.Clone()
	slot := layout.Len()
	if w.order == CanonicalOrder {
		slot = layout.insertionPoint(id)
		layout.insertAt(slot, id)
	} else {
		layout.Register(id)
	}

	w.archetypes.Unassign(e)
	to, created := w.findOrCreate(layout)
	w.archetypes.Assign(to.index, e)

	loc := Location{Archetype: to.index, Position: s.Push(comp)}
	if slot == len(w.locations.Get(e)) {
		w.locations.Append(e, loc)
	} else {
		w.locations.InsertAt(e, slot, loc)
	}

	w.log.Debug("entity migrated",
		zap.Stringer("entity", e),
		zap.Uint32("from", uint32(from.index)),
		zap.Uint32("to", uint32(to.index)),
		zap.String("component", w.componentName(id)),
	)
	w.metrics.entityMigrated()
	w.metrics.componentStored(w.componentName(id))
	if created {
		w.announce(to)
	}
	Publish(w.events, EntityExtended{Entity: e, From: from.index, To: to.index, Component: id})
}

// getComponent follows e's archetype layout to a location and dereferences it.
func getComponent[T any](w *World, e Entity, a *Archetype, id ComponentID, s Storage[T]) *T {
	slot := a.layout.IndexOf(id)
	if slot < 0 {
		return nil
	}
	locs := w.locations.Get(e)
	if slot >= len(locs) {
		w.fault(fmt.Sprintf("entity %d has %d locations for a layout of %d", e, len(locs), a.layout.Len()),
			zap.Stringer("entity", e), zap.Uint32("archetype", uint32(a.index)))
	}
	v, ok := s.Get(locs[slot].Position)
	if !ok {
		w.fault(fmt.Sprintf("entity %d points past the end of its %s storage", e, w.componentName(id)),
			zap.Stringer("entity", e), zap.Int("position", locs[slot].Position))
	}
	return v
}

// findOrCreate resolves the archetype for layout, creating it when missing.
// The caller announces a created archetype once the store is consistent again.
func (w *World) findOrCreate(layout Layout) (*Archetype, bool) {
	a, created := w.archetypes.FindOrCreate(layout)
	if created {
		w.log.Debug("archetype created",
			zap.Uint32("archetype", uint32(a.index)),
			zap.Strings("layout", w.layoutNames(layout)),
		)
		w.metrics.archetypeCreated()
	}
	return a, created
}

// announce publishes ArchetypeCreated for a. Handlers may read the World.
func (w *World) announce(a *Archetype) {
	Publish(w.events, ArchetypeCreated{Archetype: a.index, Layout: a.Layout()})
}

func (w *World) allocEntity() Entity {
	if w.nextEntity > math.MaxUint32 {
		w.fault("entity ids exhausted", zap.Uint64("next", w.nextEntity))
	}
	e := Entity(w.nextEntity)
	w.nextEntity++
	return e
}

func (w *World) mustArchetype(e Entity) *Archetype {
	a, ok := w.archetypes.FindByEntity(e)
	if !ok {
		w.fault(fmt.Sprintf("entity %d has no archetype", e), zap.Stringer("entity", e))
	}
	return a
}

// fault logs a broken invariant and panics. It never returns.
func (w *World) fault(msg string, fields ...zap.Field) {
	w.log.Error(msg, fields...)
	panic("hako: " + msg)
}

func (w *World) componentName(id ComponentID) string {
	if t := w.components.typeOf(id); t != nil {
		return t.String()
	}
	return fmt.Sprintf("component#%d", id)
}

func (w *World) layoutNames(l Layout) []string {
	names := make([]string, 0, l.Len())
	for _, id := range l.All() {
		names = append(names, w.componentName(id))
	}
	return names
}

// DescribeLayout renders l with component type names, e.g.
// "[main.Transform main.Health]".
func (w *World) DescribeLayout(l Layout) string {
	return fmt.Sprint(w.layoutNames(l))
}
