package hako

import (
	"fmt"
	"reflect"
)

// Storage is an append-only array holding every value of one component type.
//
// Positions returned by Push are zero-based, increase monotonically and stay
// valid for the lifetime of the storage; nothing ever shifts or frees a slot.
type Storage[T any] interface {
	// Push appends comp and returns the position it occupies.
	Push(comp T) int
	// Get returns the value at pos, or false when pos is out of range.
	Get(pos int) (*T, bool)
	// All exposes the whole array as one contiguous view. Element writes reach
	// the storage; appends to the returned slice do not.
	All() []T
	// Len returns the number of stored values.
	Len() int
}

// VecStorage is the default Storage, a dense slice.
//
// Pointers returned by Get stay valid until the next Push, which may move the
// backing array. Positions stay valid forever.
type VecStorage[T any] struct {
	data []T
}

// NewVecStorage creates an empty VecStorage.
func NewVecStorage[T any]() *VecStorage[T] {
	return &VecStorage[T]{}
}

func (s *VecStorage[T]) Push(comp T) int {
	s.data = append(s.data, comp)
	return len(s.data) - 1
}

func (s *VecStorage[T]) Get(pos int) (*T, bool) {
	if pos < 0 || pos >= len(s.data) {
		return nil, false
	}
	return &s.data[pos], true
}

func (s *VecStorage[T]) All() []T {
	return s.data[:len(s.data):len(s.data)]
}

func (s *VecStorage[T]) Len() int {
	return len(s.data)
}

// erasedStorage is the uniform handle the World keeps for every component
// type, whatever its concrete Storage.
type erasedStorage interface {
	Len() int
	Type() reflect.Type
}

// typedStorage pins a Storage[T] to its component type. It is the only
// concrete type ever stored behind erasedStorage, so narrowing with the same
// T that created it cannot fail.
type typedStorage[T any] struct {
	Storage[T]
}

func (s *typedStorage[T]) Type() reflect.Type {
	return reflect.TypeFor[T]()
}

// storageFactory builds the erased storage for one component type.
type storageFactory func() erasedStorage

// componentStorages holds one storage per component ID, created lazily.
type componentStorages struct {
	byID      [MaxComponentTypes]erasedStorage
	factories map[reflect.Type]storageFactory
}

func newComponentStorages(factories map[reflect.Type]storageFactory) componentStorages {
	if factories == nil {
		factories = make(map[reflect.Type]storageFactory)
	}
	return componentStorages{factories: factories}
}

// get returns the erased storage for id, or nil if none was created yet.
func (s *componentStorages) get(id ComponentID) erasedStorage {
	return s.byID[id]
}

// storageFor returns the storage for T under id, creating it on first use.
func storageFor[T any](s *componentStorages, id ComponentID) Storage[T] {
	es := s.byID[id]
	if es == nil {
		if f, ok := s.factories[reflect.TypeFor[T]()]; ok {
			es = f()
		} else {
			es = &typedStorage[T]{Storage: NewVecStorage[T]()}
		}
		s.byID[id] = es
	}
	ts, ok := es.(*typedStorage[T])
	if !ok {
		panic(fmt.Sprintf("hako: unreachable: storage for component %d holds %s, not %s", id, es.Type(), reflect.TypeFor[T]()))
	}
	return ts.Storage
}

// newFactory wraps a user constructor so it yields an erased storage.
func newFactory[T any](newStorage func() Storage[T]) storageFactory {
	return func() erasedStorage {
		return &typedStorage[T]{Storage: newStorage()}
	}
}
