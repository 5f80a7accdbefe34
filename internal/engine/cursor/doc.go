// Package cursor provides the Selection value type used by the editor's
// visual-mode anchor/head tracking.
//
// Selection Model:
//
// A selection is an anchor/head pair where:
//   - Anchor: the position where the selection started
//   - Head: the current cursor position (where typing would occur)
//
// When Anchor == Head, the selection represents just a cursor with no
// selected text. Start/End always return the lower/upper bound regardless
// of which direction the selection runs.
//
// Basic usage:
//
//	sel := cursor.NewSelection(10, 20) // anchored at 10, head at 20
//	start, end := sel.Start(), sel.End()
//
// Thread Safety:
//
// Selection is an immutable value type and safe for concurrent use on its
// own; the Editor that holds it serializes access per its own contract.
package cursor
