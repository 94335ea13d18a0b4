package hako

// Entry is a read accessor scoped to one entity. It resolves the entity's
// archetype on every call, so it stays correct across later migrations.
type Entry struct {
	world  *World
	entity Entity
}

// EntryMut is an Entry that can also add components.
type EntryMut struct {
	*Entry
}

// Entry opens a read accessor for e. It panics if e is unknown.
func (w *World) Entry(e Entity) *Entry {
	w.mustArchetype(e)
	return &Entry{world: w, entity: e}
}

// EntryMut opens a mutable accessor for e. It panics if e is unknown.
func (w *World) EntryMut(e Entity) *EntryMut {
	return &EntryMut{Entry: w.Entry(e)}
}

// Entity returns the entity the accessor is scoped to.
func (en *Entry) Entity() Entity {
	return en.entity
}

// Archetype returns the entity's current archetype.
func (en *Entry) Archetype() *Archetype {
	return en.world.mustArchetype(en.entity)
}

// Layout returns a copy of the entity's current layout.
func (en *Entry) Layout() Layout {
	return en.Archetype().Layout()
}

// Locations returns a copy of the entity's location list.
func (en *Entry) Locations() []Location {
	return en.world.Locations(en.entity)
}

// Component returns the entity's component of type T, or nil when T is not in
// its layout.
func Component[T any](en *Entry) *T {
	return GetComponent[T](en.world, en.entity)
}

// AddComponent adds comp to the entity, with the same migration as Extend.
func AddComponent[T any](en *EntryMut, comp T) {
	Extend(en.world, en.entity, comp)
}
