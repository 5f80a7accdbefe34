// Package buffer implements the piece-table text buffer: an immutable
// original byte sequence, an append-only add sequence, and an ordered
// sequence of pieces describing the document as a concatenation of ranges
// over the two storages.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - O(pieces) insert/delete via piece splitting, never shifting storage
//   - A lazily rebuilt line index for line-oriented queries
//   - Literal (non-regex) substring search, forward and backward
//   - Read-only snapshots for concurrent access
//
// Basic usage:
//
//	buf := buffer.NewBuffer(buffer.WithContent("Hello, World!"))
//	buf.Insert(7, "Beautiful ")  // "Hello, Beautiful World!"
//	buf.Delete(0, 7)             // "Beautiful World!"
//
// Position Types:
//
//   - ByteOffset: raw byte position in the document
//   - Point: line and column, both measured in bytes
//
// All positions are byte offsets, never rune or grapheme indices; a motion
// or edit may split a multi-byte UTF-8 sequence, by design.
package buffer
