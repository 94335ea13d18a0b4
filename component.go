package hako

import (
	"fmt"
	"reflect"
)

// MaxComponentTypes defines the maximum number of unique component types that
// can be registered in a World. This value is fixed at 256.
const MaxComponentTypes = 256

// ComponentID is the world-local identity token of a component type. It is
// assigned the first time a type is seen and never changes afterwards.
type ComponentID uint8

// componentRegistry maps Go types to dense component IDs.
type componentRegistry struct {
	compIDToType   [MaxComponentTypes]reflect.Type
	compTypeMap    map[reflect.Type]ComponentID
	nextCompTypeID uint16 // counter for assigning new component type IDs
}

func newComponentRegistry() componentRegistry {
	return componentRegistry{
		compTypeMap: make(map[reflect.Type]ComponentID, 16),
	}
}

// id registers or fetches the component ID for t.
func (r *componentRegistry) id(t reflect.Type) ComponentID {
	if id, ok := r.compTypeMap[t]; ok {
		return id
	}
	if r.nextCompTypeID >= MaxComponentTypes {
		panic(fmt.Sprintf("hako: too many component types: cannot register %s", t))
	}
	id := ComponentID(r.nextCompTypeID)
	r.compTypeMap[t] = id
	r.compIDToType[id] = t
	r.nextCompTypeID++
	return id
}

// lookup returns the ID for t without registering it.
func (r *componentRegistry) lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.compTypeMap[t]
	return id, ok
}

// typeOf returns the Go type registered under id, or nil.
func (r *componentRegistry) typeOf(id ComponentID) reflect.Type {
	return r.compIDToType[id]
}

func (r *componentRegistry) len() int {
	return int(r.nextCompTypeID)
}
