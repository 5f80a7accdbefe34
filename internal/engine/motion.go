package engine

import "github.com/AASoftIR/wasm-editor/internal/engine/buffer"

func isWhitespaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n'
}

// MotionH moves the cursor left by one byte, crossing line boundaries.
func (e *Editor) MotionH() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor.position > 0 {
		e.cursor.position--
		e.updateCursorLineColLocked()
		e.cursor.preferredColumn = e.cursor.column
	}
}

// MotionL moves the cursor right by one byte, crossing line boundaries.
func (e *Editor) MotionL() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor.position < e.buf.Length() {
		e.cursor.position++
		e.updateCursorLineColLocked()
		e.cursor.preferredColumn = e.cursor.column
	}
}

// MotionJ moves the cursor down one line, preserving preferred_column
// (clamped to the column of the target line's last character, see
// lastColumn) rather than updating it.
func (e *Editor) MotionJ() {
	e.mu.Lock()
	defer e.mu.Unlock()

	lineCount := e.buf.LineCount()
	if e.cursor.line+1 >= lineCount {
		return
	}

	target := e.cursor.line + 1
	nextStart := e.buf.LineStart(target)
	maxCol := lastColumn(contentLength(e.buf, target))

	col := e.cursor.preferredColumn
	if buffer.ByteOffset(col) > maxCol {
		col = uint32(maxCol)
	}

	e.cursor.position = nextStart + buffer.ByteOffset(col)
	e.updateCursorLineColLocked()
}

// MotionK moves the cursor up one line, symmetric to MotionJ.
func (e *Editor) MotionK() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cursor.line == 0 {
		return
	}

	target := e.cursor.line - 1
	prevStart := e.buf.LineStart(target)
	maxCol := lastColumn(contentLength(e.buf, target))

	col := e.cursor.preferredColumn
	if buffer.ByteOffset(col) > maxCol {
		col = uint32(maxCol)
	}

	e.cursor.position = prevStart + buffer.ByteOffset(col)
	e.updateCursorLineColLocked()
}

// lastColumn returns the highest column a vertical motion may land on
// within a line of the given content length: the last real character's
// column, not one past it (unlike line_end, which lands at the position
// right after the last character).
func lastColumn(contentLen buffer.ByteOffset) buffer.ByteOffset {
	if contentLen <= 0 {
		return 0
	}
	return contentLen - 1
}

// contentLength returns line i's length excluding any trailing newline.
func contentLength(buf *buffer.Buffer, i uint32) buffer.ByteOffset {
	start := buf.LineStart(i)
	length := buf.LineLength(i)
	if length > 0 && buf.CharAt(start+length-1) == '\n' {
		length--
	}
	return length
}

// MotionW skips the current word, then any following whitespace, where
// whitespace is {space, tab, newline}.
func (e *Editor) MotionW() {
	e.mu.Lock()
	defer e.mu.Unlock()

	length := e.buf.Length()
	pos := e.cursor.position

	for pos < length && !isWhitespaceByte(e.buf.CharAt(pos)) {
		pos++
	}
	for pos < length && isWhitespaceByte(e.buf.CharAt(pos)) {
		pos++
	}

	e.cursor.position = pos
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
}

// MotionB skips backward over whitespace, then backward while the previous
// byte is non-whitespace.
func (e *Editor) MotionB() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cursor.position == 0 {
		return
	}
	pos := e.cursor.position - 1

	for pos > 0 && isWhitespaceByte(e.buf.CharAt(pos)) {
		pos--
	}
	for pos > 0 && !isWhitespaceByte(e.buf.CharAt(pos-1)) {
		pos--
	}

	e.cursor.position = pos
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
}

// MotionE advances at least one byte, skips whitespace forward, then
// advances while the next byte is non-whitespace. An empty document is a
// no-op rather than underflowing, per the buffer's byte-bounds contract.
func (e *Editor) MotionE() {
	e.mu.Lock()
	defer e.mu.Unlock()

	length := e.buf.Length()
	if length == 0 {
		return
	}
	pos := e.cursor.position
	if pos < length {
		pos++
	}
	for pos < length && isWhitespaceByte(e.buf.CharAt(pos)) {
		pos++
	}
	for pos < length-1 && !isWhitespaceByte(e.buf.CharAt(pos+1)) {
		pos++
	}

	e.cursor.position = pos
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
}

// LineStart moves the cursor to the start of the current line and resets
// preferred_column to 0.
func (e *Editor) LineStart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor.position = e.buf.LineStart(e.cursor.line)
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = 0
}

// LineEnd moves the cursor to the end of the current line, excluding its
// trailing newline, and updates preferred_column to match.
func (e *Editor) LineEnd() {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := e.buf.LineStart(e.cursor.line)
	length := contentLength(e.buf, e.cursor.line)
	e.cursor.position = start + length
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
}

// FileStart moves the cursor to byte offset 0.
func (e *Editor) FileStart() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cursor.position = 0
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = 0
}

// FileEnd moves the cursor to the start of the last line.
func (e *Editor) FileEnd() {
	e.mu.Lock()
	defer e.mu.Unlock()
	lineCount := e.buf.LineCount()
	if lineCount > 0 {
		e.cursor.position = e.buf.LineStart(lineCount - 1)
	}
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
}
