package nav

import "reflect"

// Screen is anything the viewport can display.
type Screen interface {
	View() string
}

// Activator is implemented by screens that reload their data when they become visible again
// after the screen above them was popped.
type Activator interface {
	OnActivate()
}

// RootFunc builds the screen shown when the stack is empty.
type RootFunc[S Screen] func() S

// activate runs the [Activator] hook of s, if it has one.
func activate[S Screen](s S) bool {
	if a, ok := any(s).(Activator); ok {
		a.OnActivate()
		return true
	}
	return false
}

// isNil reports whether s is a nil interface or a typed nil pointer.
func isNil[S Screen](s S) bool {
	v := any(s)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
