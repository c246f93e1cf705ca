package nav

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	t.Run("starts empty with root displayed", func(t *testing.T) {
		vp := NewViewport[Screen]()
		root, calls := rootFactory()
		s := NewStack(vp, root)

		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Depth())
		assert.Equal(t, 1, *calls)
		assert.Equal(t, "root-1", s.Current().View())
		assert.Same(t, s.Current(), vp.Current())
	})

	t.Run("LIFO", func(t *testing.T) {
		for _, n := range []int{1, 2, 5, 20} {
			t.Run(fmt.Sprintf("depth %d", n), func(t *testing.T) {
				vp := NewViewport[Screen]()
				root, _ := rootFactory()
				s := NewStack(vp, root)

				pushed := make([]Screen, n)
				for i := range n {
					pushed[i] = &page{name: fmt.Sprintf("s%d", i+1)}
					s.Push(pushed[i])
					require.Same(t, pushed[i], vp.Current())
				}
				require.Same(t, pushed[n-1], s.Current())
				require.Equal(t, n, s.Depth())

				for i := n - 1; i >= 0; i-- {
					got, ok := s.Pop()
					require.True(t, ok)
					require.Same(t, pushed[i], got)
					require.Same(t, s.Current(), vp.Current())
				}
				assert.True(t, s.IsEmpty())
			})
		}
	})

	t.Run("Pop on empty returns a fresh root", func(t *testing.T) {
		vp := NewViewport[Screen]()
		root, calls := rootFactory()
		s := NewStack(vp, root)

		first, ok := s.Pop()
		assert.False(t, ok)
		assert.Equal(t, "root-2", first.View())

		second, ok := s.Pop()
		assert.False(t, ok)
		assert.Equal(t, "root-3", second.View())
		assert.NotSame(t, first, second)

		assert.Equal(t, 0, s.Depth())
		assert.Equal(t, 3, *calls)
		assert.Same(t, second, vp.Current())
	})

	t.Run("Pop of the last screen falls back to root", func(t *testing.T) {
		vp := NewViewport[Screen]()
		root, _ := rootFactory()
		s := NewStack(vp, root)
		a := &page{name: "a"}

		s.Push(a)
		got, ok := s.Pop()

		assert.True(t, ok)
		assert.Same(t, a, got)
		assert.Equal(t, "root-2", s.Current().View())
		assert.Same(t, s.Current(), vp.Current())
	})

	t.Run("Clear always yields root", func(t *testing.T) {
		for _, depth := range []int{0, 1, 3} {
			vp := NewViewport[Screen]()
			root, _ := rootFactory()
			s := NewStack(vp, root)
			for i := range depth {
				s.Push(&page{name: fmt.Sprintf("p%d", i)})
			}

			s.Clear()

			assert.Equal(t, 0, s.Depth())
			assert.Contains(t, s.Current().View(), "root-")
			assert.Same(t, s.Current(), vp.Current())
		}
	})

	t.Run("Set keeps depth", func(t *testing.T) {
		vp := NewViewport[Screen]()
		root, _ := rootFactory()
		s := NewStack(vp, root)

		lobby := &page{name: "lobby"}
		s.Set(lobby)
		assert.Equal(t, 0, s.Depth())
		assert.Same(t, lobby, s.Current())
		assert.Same(t, lobby, vp.Current())

		s.Push(&page{name: "a"})
		s.Push(&page{name: "b"})
		c := &page{name: "c"}
		s.Set(c)
		assert.Equal(t, 2, s.Depth())
		assert.Same(t, c, s.Current())

		got, _ := s.Pop()
		assert.Same(t, c, got)
		assert.Equal(t, "a", s.Current().View())
	})

	t.Run("activation hook fires on the exposed screen only", func(t *testing.T) {
		vp := NewViewport[Screen]()
		root, _ := rootFactory()
		s := NewStack(vp, root)

		list := &refreshingPage{page: page{name: "list"}}
		s.Push(list)
		assert.Equal(t, 0, list.activations)

		s.Push(&page{name: "form"})
		s.Pop()
		assert.Equal(t, 1, list.activations)

		s.Set(&page{name: "other"})
		s.Clear()
		assert.Equal(t, 1, list.activations)
	})

	t.Run("nil screens panic", func(t *testing.T) {
		vp := NewViewport[Screen]()
		root, _ := rootFactory()
		s := NewStack(vp, root)

		var typedNil *page
		assert.PanicsWithValue(t, ErrNilScreen, func() { s.Push(nil) })
		assert.PanicsWithValue(t, ErrNilScreen, func() { s.Push(typedNil) })
		assert.PanicsWithValue(t, ErrNilScreen, func() { s.Set(nil) })
		assert.Equal(t, 0, s.Depth())
	})
}
