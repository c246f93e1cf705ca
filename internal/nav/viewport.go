package nav

import "go.uber.org/atomic"

// Viewport is the single slot that shows exactly one screen at a time.
type Viewport[S Screen] struct {
	current S
	bound   atomic.Bool
}

// NewViewport creates an empty, unbound viewport.
func NewViewport[S Screen]() *Viewport[S] {
	return &Viewport[S]{}
}

// Display swaps the visible screen for s in a single assignment.
func (v *Viewport[S]) Display(s S) {
	if isNil(s) {
		panic(ErrNilScreen)
	}
	v.current = s
}

// Current returns the displayed screen.
func (v *Viewport[S]) Current() S {
	return v.current
}

// bind claims the viewport for a controller.
func (v *Viewport[S]) bind() error {
	if !v.bound.CompareAndSwap(false, true) {
		return ErrAlreadyBound
	}
	return nil
}
