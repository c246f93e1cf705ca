package nav

// Stack is the navigation history. Index 0 is the bottom, the last entry is the visible top.
//
// Every mutation leaves the viewport showing [Stack.Current].
type Stack[S Screen] struct {
	entries  []S
	fallback S
	root     RootFunc[S]
	viewport *Viewport[S]
}

// NewStack creates an empty stack and displays a fresh root screen.
func NewStack[S Screen](vp *Viewport[S], root RootFunc[S]) *Stack[S] {
	s := &Stack[S]{
		entries:  make([]S, 0),
		root:     root,
		viewport: vp,
	}
	s.showRoot()
	return s
}

// Push places screen on top of the stack. The previous top stays underneath.
func (s *Stack[S]) Push(screen S) {
	if isNil(screen) {
		panic(ErrNilScreen)
	}
	s.entries = append(s.entries, screen)
	s.viewport.Display(screen)
}

// Pop removes and returns the top screen.
//
// On an empty stack it re-displays a fresh root screen and returns it with false. When the pop
// exposes a screen that was already on the stack, that screen's [Activator] hook runs once.
func (s *Stack[S]) Pop() (S, bool) {
	if len(s.entries) == 0 {
		return s.showRoot(), false
	}

	top := s.entries[len(s.entries)-1]
	var zero S
	s.entries[len(s.entries)-1] = zero
	s.entries = s.entries[:len(s.entries)-1]

	if len(s.entries) == 0 {
		s.showRoot()
		return top, true
	}

	exposed := s.entries[len(s.entries)-1]
	s.viewport.Display(exposed)
	activate(exposed)
	return top, true
}

// Set replaces the top screen without changing the depth.
// On an empty stack screen is displayed in place of the root until the next fallback.
func (s *Stack[S]) Set(screen S) {
	if isNil(screen) {
		panic(ErrNilScreen)
	}
	if len(s.entries) == 0 {
		s.fallback = screen
	} else {
		s.entries[len(s.entries)-1] = screen
	}
	s.viewport.Display(screen)
}

// Clear drops the whole history and displays a fresh root screen.
func (s *Stack[S]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
	s.showRoot()
}

// Current returns the top screen, or the screen shown for the empty stack.
func (s *Stack[S]) Current() S {
	if len(s.entries) == 0 {
		return s.fallback
	}
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of screens on the stack.
func (s *Stack[S]) Depth() int {
	return len(s.entries)
}

// IsEmpty reports whether the stack has no entries.
func (s *Stack[S]) IsEmpty() bool {
	return len(s.entries) == 0
}

func (s *Stack[S]) showRoot() S {
	s.fallback = s.root()
	s.viewport.Display(s.fallback)
	return s.fallback
}
