package hako

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry(t *testing.T) {
	t.Run("Read", func(t *testing.T) {
		w := NewWorld()
		e := Spawn(w, Position{1, 2})
		en := w.Entry(e)

		require.Equal(t, e, en.Entity())
		require.Equal(t, Position{1, 2}, *Component[Position](en))
		require.Nil(t, Component[Velocity](en))
		require.Same(t, w.ArchetypeOf(e), en.Archetype())
		require.Equal(t, 1, en.Layout().Len())
		require.Len(t, en.Locations(), 1)
	})

	t.Run("ReadFollowsMigration", func(t *testing.T) {
		w := NewWorld()
		e := Spawn(w, Position{1, 2})
		en := w.Entry(e)
		Extend(w, e, Velocity{3, 4})

		require.Equal(t, Velocity{3, 4}, *Component[Velocity](en))
		require.Equal(t, 2, en.Layout().Len())
	})

	t.Run("AddComponent", func(t *testing.T) {
		w := NewWorld()
		e := Spawn(w, Health{10})
		em := w.EntryMut(e)
		before := em.Archetype().Index()

		AddComponent(em, Stamina{20})
		require.NotEqual(t, before, em.Archetype().Index())
		require.Equal(t, Health{10}, *Component[Health](em.Entry))
		require.Equal(t, Stamina{20}, *Component[Stamina](em.Entry))
		require.False(t, w.Archetype(before).Has(e))
	})

	t.Run("UnknownEntityPanics", func(t *testing.T) {
		w := NewWorld()
		require.PanicsWithValue(t, "hako: entity 1 has no archetype", func() { w.Entry(1) })
		require.Panics(t, func() { w.EntryMut(1) })
	})
}
