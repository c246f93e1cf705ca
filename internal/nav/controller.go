package nav

import (
	"io"

	"github.com/charmbracelet/log"
)

// Listener receives the screen that became visible.
type Listener[S Screen] func(S)

// Unsubscribe removes the subscription it was returned for. Calling it again is a no-op.
type Unsubscribe func()

type subscription[S Screen] struct {
	id     uint64
	fn     Listener[S]
	active bool
}

// Options configures a [Controller].
type Options struct {
	Logger *log.Logger
}

// Controller is the single navigation authority for one viewport.
//
// It is created once at start-up and passed to every screen that navigates.
type Controller[S Screen] struct {
	stack       *Stack[S]
	viewport    *Viewport[S]
	subs        []*subscription[S]
	nextID      uint64
	dispatching bool
	pending     []pendingOp
	logger      *log.Logger
}

type pendingOp struct {
	op string
	fn func()
}

// New binds a controller to vp and displays a fresh root screen.
//
// It returns [ErrAlreadyBound] if vp already belongs to another controller.
func New[S Screen](vp *Viewport[S], root RootFunc[S], opts Options) (*Controller[S], error) {
	if root == nil {
		return nil, ErrNoRoot
	}
	if err := vp.bind(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	return &Controller[S]{
		stack:    NewStack(vp, root),
		viewport: vp,
		logger:   opts.Logger,
	}, nil
}

// MustNew is like [New] but panics on a configuration error.
func MustNew[S Screen](vp *Viewport[S], root RootFunc[S], opts Options) *Controller[S] {
	c, err := New(vp, root, opts)
	if err != nil {
		panic(err)
	}
	return c
}

// Push shows screen on top of the current one.
func (c *Controller[S]) Push(screen S) {
	if isNil(screen) {
		panic(ErrNilScreen)
	}
	c.navigate("push", func() { c.stack.Push(screen) })
}

// Pop goes back one screen and returns the removed screen.
//
// On an empty stack it returns the freshly displayed root screen and false.
// When called from a listener or an activation hook the pop is deferred until the
// running notification completes, and Pop returns the zero screen and false.
func (c *Controller[S]) Pop() (S, bool) {
	var (
		popped S
		ok     bool
	)
	if !c.navigate("pop", func() { popped, ok = c.stack.Pop() }) {
		var zero S
		return zero, false
	}
	return popped, ok
}

// Set replaces the visible screen without changing the depth.
func (c *Controller[S]) Set(screen S) {
	if isNil(screen) {
		panic(ErrNilScreen)
	}
	c.navigate("set", func() { c.stack.Set(screen) })
}

// Clear drops the history and returns to the root screen.
func (c *Controller[S]) Clear() {
	c.navigate("clear", c.stack.Clear)
}

// Current returns the visible screen.
func (c *Controller[S]) Current() S {
	return c.stack.Current()
}

// Depth returns the number of screens above the root.
func (c *Controller[S]) Depth() int {
	return c.stack.Depth()
}

// CanGoBack reports whether [Controller.Pop] would leave the current screen for a previous one.
func (c *Controller[S]) CanGoBack() bool {
	return c.stack.Depth() > 0
}

// Subscribe registers fn for change notifications.
//
// Subscribing the same function twice creates two subscriptions, each notified once per event.
func (c *Controller[S]) Subscribe(fn Listener[S]) Unsubscribe {
	c.nextID++
	sub := &subscription[S]{id: c.nextID, fn: fn, active: true}
	c.subs = append(c.subs, sub)

	return func() {
		if !sub.active {
			return
		}
		sub.active = false
		for i, s := range c.subs {
			if s.id == sub.id {
				c.subs = append(c.subs[:i:i], c.subs[i+1:]...)
				break
			}
		}
	}
}

// Listeners returns the number of active subscriptions.
func (c *Controller[S]) Listeners() int {
	return len(c.subs)
}

// navigate applies fn, or queues it when a notification is in flight.
// It reports whether fn ran before returning.
func (c *Controller[S]) navigate(op string, fn func()) bool {
	if c.dispatching {
		c.logger.Debug("navigation deferred", "op", op, "queued", len(c.pending)+1)
		c.pending = append(c.pending, pendingOp{op: op, fn: fn})
		return false
	}

	c.apply(op, fn)
	for len(c.pending) > 0 {
		next := c.pending[0]
		c.pending = c.pending[1:]
		c.apply(next.op, next.fn)
	}
	return true
}

func (c *Controller[S]) apply(op string, fn func()) {
	c.dispatching = true
	defer func() { c.dispatching = false }()

	fn()

	current := c.stack.Current()
	c.logger.Debug("navigated", "op", op, "depth", c.stack.Depth(), "listeners", len(c.subs))

	subs := make([]*subscription[S], len(c.subs))
	copy(subs, c.subs)
	for _, sub := range subs {
		if sub.active {
			sub.fn(current)
		}
	}
}
