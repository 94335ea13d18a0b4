package hako

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocationTable(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		lt := NewLocationTable(0)
		lt.Insert(3, []Location{{Archetype: 1, Position: 4}})
		require.True(t, lt.Has(3))
		require.False(t, lt.Has(2))
		require.Equal(t, []Location{{Archetype: 1, Position: 4}}, lt.Get(3))
		require.Equal(t, 1, lt.Len())
	})

	t.Run("InsertTwicePanics", func(t *testing.T) {
		lt := NewLocationTable(4)
		lt.Insert(0, []Location{{}})
		require.PanicsWithValue(t, "hako: entity 0 already has locations", func() {
			lt.Insert(0, []Location{{}})
		})
	})

	t.Run("GetMissingPanics", func(t *testing.T) {
		lt := NewLocationTable(4)
		require.PanicsWithValue(t, "hako: entity 9 has no locations", func() { lt.Get(9) })
		require.Panics(t, func() { lt.Append(9, Location{}) })
	})

	t.Run("AppendAndInsertAt", func(t *testing.T) {
		lt := NewLocationTable(4)
		lt.Insert(0, []Location{{Archetype: 0, Position: 0}})
		lt.Append(0, Location{Archetype: 1, Position: 0})
		lt.InsertAt(0, 1, Location{Archetype: 2, Position: 5})
		require.Equal(t, []Location{
			{Archetype: 0, Position: 0},
			{Archetype: 2, Position: 5},
			{Archetype: 1, Position: 0},
		}, lt.Get(0))
	})

	t.Run("InsertCopiesInput", func(t *testing.T) {
		lt := NewLocationTable(4)
		in := []Location{{Archetype: 0, Position: 1}}
		lt.Insert(0, in)
		in[0].Position = 99
		require.Equal(t, 1, lt.Get(0)[0].Position)
	})

	t.Run("EmptyListStillCounts", func(t *testing.T) {
		lt := NewLocationTable(4)
		lt.Insert(1, nil)
		require.True(t, lt.Has(1))
		require.Empty(t, lt.Get(1))
	})
}
