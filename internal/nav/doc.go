// Package nav implements stack-based screen navigation for the terminal UI.
//
// A [Controller] owns a [Stack] of screens and the [Viewport] that displays its top. Screens
// never hold a reference to the viewport: they receive the controller through their constructor
// and call [Controller.Push], [Controller.Pop], [Controller.Set] or [Controller.Clear].
//
// Navigation states are "empty" and "non-empty(depth=n)":
//   - Push: n -> n+1
//   - Pop: n -> max(n-1, 0); popping an empty stack re-displays the root screen
//   - Set: n -> n (replaces the top, or the displayed screen when empty)
//   - Clear: n -> 0
//
// When the stack is empty the viewport shows a screen produced by the [RootFunc] given to
// [New]. The function runs every time the stack falls back to empty, so the root screen never
// carries state across visits.
//
// After every transition each subscription registered with [Controller.Subscribe] is notified
// synchronously with the new visible screen. Navigation requested while a notification (or an
// [Activator] hook) is running is queued and applied once the in-flight notification completes,
// so listeners always observe a settled stack.
//
// All methods must be called from the UI goroutine (bubbletea's Update loop).
package nav
