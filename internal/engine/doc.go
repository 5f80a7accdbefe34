// Package engine implements the modal, vi-style editor state machine that
// sits on top of a piece-table buffer.
//
// # Architecture
//
//   - buffer: piece-table text storage, line index, literal search
//   - cursor: the Selection value type used for visual-mode selections
//   - Editor (this package): mode, cursor, selection anchor, search
//     register, and the vi motion/edit/search operations
//
// # Basic usage
//
//	e := engine.New(engine.WithContent("hello world"))
//	e.MotionW()           // cursor at 6
//	e.InsertString("the ") // "hello the world"
//	e.SetMode(engine.ModeVisual)
//	start, end := e.SelectionStart(), e.SelectionEnd()
//
// # Concurrency
//
// An Editor is intended for a single caller issuing operations in strict
// program order, matching its byte-oriented, non-reentrant contract; the
// internal mutex only protects against a concurrent Length()/GetAll()-style
// read racing a write, it does not serialize logically overlapping edits.
//
// # Handles, not singletons
//
// Each Editor is an independent value: multiple editors may be created in
// the same process, each with its own buffer, cursor, and mode. A host
// embedding this package as a single-document-per-page editor can still
// keep exactly one live Editor and get the same behavior a process-wide
// singleton would have provided.
package engine
