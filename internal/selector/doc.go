// Package selector implements the numbered terminal menu every screen of the
// gradebook is built from.
//
// Session flow:
//   - Show clears the screen (unless ClearOnSwitch is off), lets
//     UpdateEntries refresh the list, prints the title and one "[n] label"
//     row per entry, the optional zero and exit rows, then the prompt.
//   - Keys are read one at a time. Each digit is offered to WouldAccept,
//     which answers from the rendered entry count alone: Accept keeps the
//     digit and redraws with the list filtered to matching numbers, Commit
//     resolves the entry and calls the commit handler, Reject flashes the
//     invalid-input notice and keeps the buffer as it was.
//   - A handler returning true ends the session; false redraws and keeps
//     reading.
//
// Rendering:
//   - The unfiltered list is cut to the viewport height minus ReservedRows and
//     ends in a "[...] +n" marker where n is the total entry count. Typing the
//     leading digits of a hidden entry filters the list down to it.
//   - The notice only needs Write, MoveCursor and the cursor row, so any
//     Screen implementation can host a menu.
package selector
