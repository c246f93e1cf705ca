package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewport(t *testing.T) {
	t.Run("Display replaces the current screen", func(t *testing.T) {
		vp := NewViewport[Screen]()
		a, b := &page{name: "a"}, &page{name: "b"}

		vp.Display(a)
		assert.Same(t, a, vp.Current())
		vp.Display(b)
		assert.Same(t, b, vp.Current())
	})

	t.Run("Display rejects nil", func(t *testing.T) {
		vp := NewViewport[Screen]()
		vp.Display(&page{name: "a"})

		assert.PanicsWithValue(t, ErrNilScreen, func() { vp.Display(nil) })
		assert.Equal(t, "a", vp.Current().View())
	})

	t.Run("binds to a single controller", func(t *testing.T) {
		vp := NewViewport[Screen]()
		root, _ := rootFactory()

		_, err := New(vp, root, Options{})
		require.NoError(t, err)

		_, err = New(vp, root, Options{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrAlreadyBound))

		assert.Panics(t, func() { MustNew(vp, root, Options{}) })
	})

	t.Run("controllers on separate viewports", func(t *testing.T) {
		root, _ := rootFactory()

		_, err := New(NewViewport[Screen](), root, Options{})
		require.NoError(t, err)
		_, err = New(NewViewport[Screen](), root, Options{})
		require.NoError(t, err)
	})
}
