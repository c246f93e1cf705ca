package nav

import "fmt"

// page is a minimal screen used across the package tests.
type page struct {
	name string
}

func (p *page) View() string { return p.name }

// refreshingPage counts activation hooks.
type refreshingPage struct {
	page
	activations int
	onActivate  func()
}

func (p *refreshingPage) OnActivate() {
	p.activations++
	if p.onActivate != nil {
		p.onActivate()
	}
}

// rootFactory returns a RootFunc that builds numbered root pages and a counter of calls.
func rootFactory() (RootFunc[Screen], *int) {
	calls := 0
	return func() Screen {
		calls++
		return &page{name: fmt.Sprintf("root-%d", calls)}
	}, &calls
}

func newTestController() (*Controller[Screen], *int) {
	root, calls := rootFactory()
	return MustNew(NewViewport[Screen](), root, Options{}), calls
}

func names(screens []Screen) []string {
	out := make([]string, len(screens))
	for i, s := range screens {
		out[i] = s.View()
	}
	return out
}
