// Package terminal adapts a tcell screen to the runtime's platform contract.
//
// Features:
//   - Fixed character grid presented cell by cell with a 16-color palette
//   - Key-down polling emulated from press and auto-repeat events
//   - Mouse button, motion and focus records queued between frames
//   - Shutdown signal on Ctrl-C or when the screen closes
//
// Terminals do not report key releases. A key counts as down until no event
// for it has arrived within the hold window (first press) or the repeat
// window (once auto-repeat has started).
package terminal
