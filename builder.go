package hako

// Builder is a typed handle for one component type. It resolves the
// component ID and storage once, so repeated spawns and extends skip the type
// lookup.
type Builder[T any] struct {
	world   *World
	storage Storage[T]
	compID  ComponentID
}

// NewBuilder creates a Builder for T in w.
func NewBuilder[T any](w *World) *Builder[T] {
	id := ComponentIDOf[T](w)
	return &Builder[T]{world: w, storage: storageFor[T](&w.storages, id), compID: id}
}

// New is a convenience method equivalent to calling NewBuilder.
func (b *Builder[T]) New(w *World) *Builder[T] {
	return NewBuilder[T](w)
}

// ID returns the component ID of T.
func (b *Builder[T]) ID() ComponentID {
	return b.compID
}

// NewEntity spawns an entity whose only component is comp.
func (b *Builder[T]) NewEntity(comp T) Entity {
	return spawn(b.world, b.compID, b.storage, comp)
}

// NewEntities spawns count entities, each carrying a copy of comp.
func (b *Builder[T]) NewEntities(count int, comp T) []Entity {
	if count <= 0 {
		return nil
	}
	ents := make([]Entity, count)
	for i := range ents {
		ents[i] = spawn(b.world, b.compID, b.storage, comp)
	}
	return ents
}

// Add extends e with comp. It panics if e is unknown.
func (b *Builder[T]) Add(e Entity, comp T) {
	extend(b.world, e, b.compID, b.storage, comp)
}

// AddBatch extends every entity in entities with comp.
func (b *Builder[T]) AddBatch(entities []Entity, comp T) {
	for _, e := range entities {
		b.Add(e, comp)
	}
}

// Get returns e's component of type T, or nil.
func (b *Builder[T]) Get(e Entity) *T {
	a := b.world.mustArchetype(e)
	return getComponent(b.world, e, a, b.compID, b.storage)
}

// Has reports whether T is in e's layout.
func (b *Builder[T]) Has(e Entity) bool {
	return b.world.mustArchetype(e).layout.Contains(b.compID)
}
