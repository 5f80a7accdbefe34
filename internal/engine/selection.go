package engine

import (
	"github.com/AASoftIR/wasm-editor/internal/engine/buffer"
	"github.com/AASoftIR/wasm-editor/internal/engine/cursor"
)

// HasSelection reports whether a visual-mode selection is active.
func (e *Editor) HasSelection() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hasSelection
}

// SelectionStart returns the lower bound of the active selection, or the
// cursor position if there is none.
func (e *Editor) SelectionStart() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.hasSelection {
		return e.cursor.position
	}
	return cursor.NewSelection(e.anchor, e.cursor.position).Start()
}

// SelectionEnd returns the upper bound of the active selection, or the
// cursor position if there is none. Anchor == position yields a zero-length
// selection; callers render that as a one-cell cursor, not an empty
// highlight.
func (e *Editor) SelectionEnd() int64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.hasSelection {
		return e.cursor.position
	}
	return cursor.NewSelection(e.anchor, e.cursor.position).End()
}

// SelectionPointRange returns the active selection as a line/column range, for
// a host that renders highlights in terms of rows and columns rather than raw
// byte offsets. With no active selection, it is a zero-width range at the
// cursor's own line/column.
func (e *Editor) SelectionPointRange() buffer.PointRange {
	e.mu.RLock()
	defer e.mu.RUnlock()
	start, end := e.cursor.position, e.cursor.position
	if e.hasSelection {
		sel := cursor.NewSelection(e.anchor, e.cursor.position)
		start, end = sel.Start(), sel.End()
	}
	return buffer.NewPointRange(e.buf.PosToLineCol(start), e.buf.PosToLineCol(end))
}
