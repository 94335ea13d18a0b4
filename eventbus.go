package hako

import "reflect"

// MaxEventTypes defines the maximum number of unique event types that can be
// registered in the EventBus. This value is fixed at 256.
const MaxEventTypes = 256

// EntitySpawned is published after Spawn has fully recorded a new entity.
type EntitySpawned struct {
	Entity    Entity
	Archetype ArchetypeIndex
	Component ComponentID
}

// EntityExtended is published after Extend has moved an entity from one
// archetype to another.
type EntityExtended struct {
	Entity    Entity
	From      ArchetypeIndex
	To        ArchetypeIndex
	Component ComponentID
}

// ArchetypeCreated is published when the registry gains an archetype.
type ArchetypeCreated struct {
	Layout    Layout
	Archetype ArchetypeIndex
}

// EventBus is a synchronous, type-keyed event bus. Every World owns one and
// publishes the events above on it.
//
// Handlers run on the caller's goroutine, in subscription order, and must not
// mutate the World that published the event.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]any
	nextEventTypeID uint16
}

// Subscribe registers a handler function to be called when an event of type
// T is published.
//
// Parameters:
//   - bus: The EventBus instance to subscribe to.
//   - handler: A function that takes a single argument of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	t := reflect.TypeFor[T]()
	id := bus.getEventTypeID(t)
	if cap(bus.handlers[id]) == 0 {
		bus.handlers[id] = make([]any, 0, 4)
	}
	bus.handlers[id] = append(bus.handlers[id], handler)
}

// Publish broadcasts event to all handlers registered for T.
func Publish[T any](bus *EventBus, event T) {
	if bus.eventTypeMap == nil {
		return
	}
	if id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]; ok {
		for _, h := range bus.handlers[id] {
			h.(func(T))(event)
		}
	}
}

// getEventTypeID retrieves or assigns an ID for the event type.
func (bus *EventBus) getEventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if bus.nextEventTypeID >= MaxEventTypes {
		panic("hako: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
