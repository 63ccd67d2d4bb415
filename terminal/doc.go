// @focus: #sys { term }
// Package terminal implements platform.Window and platform.Surface on a tcell screen.
//
// Features:
//   - One input goroutine translating tcell events into raw platform events
//   - Coalesced redraw requests posted through the tcell event queue
//   - Synthesized key releases and repeat detection (terminals report presses only)
//   - Mouse button diffing, wheel lines and bracketed paste
//   - Ctrl+C, SIGTERM and SIGHUP delivered as close requests
//   - Clean terminal restoration on exit/panic
//
// One character cell is one physical unit; the scale factor is always 1.
package terminal
