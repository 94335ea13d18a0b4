package hako

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayout(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var l Layout
		require.Equal(t, 0, l.Len())
		require.False(t, l.Contains(0))
		require.Equal(t, -1, l.IndexOf(0))
		require.True(t, l.Equal(NewLayout()))
	})

	t.Run("RegisterKeepsOrderAndDuplicates", func(t *testing.T) {
		l := NewLayout(3, 1)
		l.Register(3)
		require.Equal(t, []ComponentID{3, 1, 3}, l.IDs())
		require.Equal(t, 3, l.Len())
		require.Equal(t, 0, l.IndexOf(3))
		require.Equal(t, 1, l.IndexOf(1))
		require.True(t, l.Contains(1))
		require.False(t, l.Contains(2))
	})

	t.Run("EqualityIsOrderSensitive", func(t *testing.T) {
		require.True(t, NewLayout(1, 2).Equal(NewLayout(1, 2)))
		require.False(t, NewLayout(1, 2).Equal(NewLayout(2, 1)))
		require.False(t, NewLayout(1).Equal(NewLayout(1, 1)))
		require.NotEqual(t, NewLayout(1, 2).hash(), NewLayout(2, 1).hash())
		require.Equal(t, NewLayout(1, 2).hash(), NewLayout(1, 2).hash())
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		l := NewLayout(1)
		c := l.Clone()
		c.Register(2)
		require.Equal(t, 1, l.Len())
		require.False(t, l.Contains(2))
		require.Equal(t, 2, c.Len())

		ids := l.IDs()
		ids[0] = 200
		require.Equal(t, ComponentID(1), l.IDs()[0])
	})

	t.Run("Canonical", func(t *testing.T) {
		l := NewLayout(5, 2, 9, 2)
		require.Equal(t, []ComponentID{2, 2, 5, 9}, l.Canonical().IDs())
		require.Equal(t, []ComponentID{5, 2, 9, 2}, l.IDs())

		c := NewLayout(2, 5, 9)
		require.Equal(t, 0, c.insertionPoint(1))
		require.Equal(t, 2, c.insertionPoint(5))
		require.Equal(t, 3, c.insertionPoint(200))
		c.insertAt(c.insertionPoint(7), 7)
		require.Equal(t, []ComponentID{2, 5, 7, 9}, c.IDs())
		require.True(t, c.Contains(7))
	})

	t.Run("Covers", func(t *testing.T) {
		require.True(t, NewLayout(1, 2, 3).Covers(NewLayout(3, 1)))
		require.False(t, NewLayout(1, 2).Covers(NewLayout(4)))
		require.True(t, NewLayout(1).Covers(NewLayout()))
	})

	t.Run("All", func(t *testing.T) {
		l := NewLayout(4, 7)
		var got []ComponentID
		for i, id := range l.All() {
			require.Len(t, got, i)
			got = append(got, id)
		}
		require.Equal(t, []ComponentID{4, 7}, got)
	})

	t.Run("HighIDs", func(t *testing.T) {
		l := NewLayout(255, 64, 63)
		require.True(t, l.Contains(255))
		require.True(t, l.Contains(64))
		require.True(t, l.Contains(63))
		require.False(t, l.Contains(65))
	})

	t.Run("String", func(t *testing.T) {
		require.Equal(t, "Layout{1, 2}", NewLayout(1, 2).String())
		require.Equal(t, "Layout{}", NewLayout().String())
	})
}
