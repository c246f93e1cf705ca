package nav

import "fmt"

var (
	// ErrAlreadyBound is returned when a second controller is created over a viewport that
	// already has one. Two controllers on one viewport would keep independent back-stacks.
	ErrAlreadyBound = fmt.Errorf("nav: viewport already bound to a controller")

	// ErrNilScreen is the panic value for pushing or setting a nil screen.
	ErrNilScreen = fmt.Errorf("nav: nil screen")

	// ErrNoRoot is returned by [New] when no root function is given.
	ErrNoRoot = fmt.Errorf("nav: root function is required")
)
