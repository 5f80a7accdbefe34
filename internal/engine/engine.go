package engine

import (
	"sync"

	"github.com/google/uuid"

	"github.com/AASoftIR/wasm-editor/internal/config"
	"github.com/AASoftIR/wasm-editor/internal/engine/buffer"
	"github.com/AASoftIR/wasm-editor/internal/engine/cursor"
	"github.com/AASoftIR/wasm-editor/internal/logging"
)

// Mode is the editor's modal state. Values are stable and externally
// visible: 0=NORMAL, 1=INSERT, 2=VISUAL, 3=COMMAND, 4=SEARCH.
type Mode uint8

const (
	ModeNormal Mode = iota
	ModeInsert
	ModeVisual
	ModeCommand
	ModeSearch
)

// String returns the mode's display name.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	case ModeVisual:
		return "VISUAL"
	case ModeCommand:
		return "COMMAND"
	case ModeSearch:
		return "SEARCH"
	default:
		return "UNKNOWN"
	}
}

// cursorState is the editor's (position, line, column, preferred_column)
// tuple. It carries the derived line/column coordinates the editor needs
// for vertical motions, alongside the raw byte position.
type cursorState struct {
	position        buffer.ByteOffset
	line            uint32
	column          uint32
	preferredColumn uint32
}

// Editor is the modal, vi-style state machine layered on top of a Buffer.
// It owns exactly one buffer, one cursor, one selection anchor, and one
// bounded search register — at most one of each, per its lifecycle
// contract. It is not safe for concurrent callers to issue overlapping
// operations; the mutex exists so Snapshot-style reads never race a writer,
// matching the buffer's own concurrency model.
type Editor struct {
	mu sync.RWMutex

	id  uuid.UUID
	cfg config.Config
	log *logging.Logger

	initContent string

	buf *buffer.Buffer

	cursor cursorState
	mode   Mode

	anchor       buffer.ByteOffset
	hasSelection bool

	searchPattern string
}

// New creates an editor. Without WithContent, it starts with an empty
// document, matching init(); WithContent behaves like load_text(bytes).
func New(opts ...Option) *Editor {
	e := &Editor{
		id:  uuid.New(),
		cfg: config.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = logging.Discard()
	}
	e.buf = e.newBuffer(e.initContent)
	e.log.Info("editor initialized", logging.F("session", e.id), logging.F("bytes", len(e.initContent)))
	return e
}

func (e *Editor) newBuffer(content string) *buffer.Buffer {
	opts := []buffer.Option{
		buffer.WithCapacities(e.cfg.Buffer.InitialAddCapacity, e.cfg.Buffer.InitialPieceCapacity, e.cfg.Buffer.InitialLineCapacity),
		buffer.WithLogger(e.log.With("buffer")),
	}
	if content != "" {
		opts = append(opts, buffer.WithContent(content))
	}
	return buffer.NewBuffer(opts...)
}

// ID returns the editor's session identifier, used only for log
// correlation; it has no bearing on document semantics.
func (e *Editor) ID() uuid.UUID {
	return e.id
}

// LoadText destroys the current buffer and creates a new one from text,
// resetting the cursor to the start of the document.
func (e *Editor) LoadText(text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.buf = e.newBuffer(text)
	e.cursor = cursorState{}
	e.mode = ModeNormal
	e.hasSelection = false
	e.log.Debug("text loaded", logging.F("bytes", len(text)))
	return true
}

// Length returns the document's total byte length.
func (e *Editor) Length() buffer.ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.Length()
}

// LineCount returns the document's line count.
func (e *Editor) LineCount() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.LineCount()
}

// GetAll returns a copy of the entire document.
func (e *Editor) GetAll() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.GetAll()
}

// GetLine returns the content of line i, excluding its trailing newline.
func (e *Editor) GetLine(i uint32) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.buf.GetLine(i)
}

// InsertText inserts text at an arbitrary position, independent of the
// cursor. This is the position-addressed edit operation; InsertString
// inserts at the cursor instead.
func (e *Editor) InsertText(pos buffer.ByteOffset, text string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Insert(pos, text)
}

// DeleteText deletes n bytes at an arbitrary position, independent of the
// cursor.
func (e *Editor) DeleteText(pos, n buffer.ByteOffset) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Delete(pos, n)
}

// updateCursorLineColLocked recomputes line/column from position. Caller
// must hold the write lock.
func (e *Editor) updateCursorLineColLocked() {
	p := e.buf.PosToLineCol(e.cursor.position)
	e.cursor.line = p.Line
	e.cursor.column = p.Column
}

// clampCursorLocked clamps position to the document length and refreshes
// line/column. Caller must hold the write lock.
func (e *Editor) clampCursorLocked() {
	length := e.buf.Length()
	if e.cursor.position > length {
		e.cursor.position = length
	}
	if e.cursor.position < 0 {
		e.cursor.position = 0
	}
	e.updateCursorLineColLocked()
}

// Position returns the cursor's byte offset.
func (e *Editor) Position() buffer.ByteOffset {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursor.position
}

// Line returns the cursor's current line.
func (e *Editor) Line() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursor.line
}

// Column returns the cursor's current column.
func (e *Editor) Column() uint32 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursor.column
}

// SetPosition moves the cursor to pos, clamped to the document length, and
// resets preferred_column to match.
func (e *Editor) SetPosition(pos buffer.ByteOffset) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor.position = pos
	e.clampCursorLocked()
	e.cursor.preferredColumn = e.cursor.column
}

// ModeValue returns the current mode.
func (e *Editor) ModeValue() Mode {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode
}

// ModeName returns the current mode's display name.
func (e *Editor) ModeName() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.mode.String()
}

// SetMode transitions to m. Entering VISUAL anchors the selection at the
// current position; entering NORMAL clears it. All other transitions leave
// the selection untouched.
func (e *Editor) SetMode(m Mode) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.mode = m
	switch m {
	case ModeVisual:
		e.anchor = e.cursor.position
		e.hasSelection = true
	case ModeNormal:
		e.hasSelection = false
	}
	e.log.Debug("mode set", logging.F("mode", m.String()))
}
