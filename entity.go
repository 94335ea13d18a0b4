package hako

import "strconv"

// Entity is an opaque identifier for a logical object in a World. It owns no
// data; components are attached to it through the World.
//
// Entities are allocated from a monotonically increasing counter starting at
// zero and are never reused, so an Entity carries no version tag.
type Entity uint32

// ID returns the numeric value of the entity.
func (e Entity) ID() uint32 {
	return uint32(e)
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e), 10)
}
