package engine

// InsertChar inserts a single byte at the cursor and advances past it.
func (e *Editor) InsertChar(c byte) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.buf.Insert(e.cursor.position, string(c)) {
		return false
	}
	e.cursor.position++
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
	return true
}

// InsertString inserts s at the cursor and advances past it.
func (e *Editor) InsertString(s string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.buf.Insert(e.cursor.position, s) {
		return false
	}
	e.cursor.position += int64(len(s))
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
	return true
}

// DeleteCharBefore deletes the byte before the cursor and moves the cursor
// back over it. A no-op at the start of the document.
func (e *Editor) DeleteCharBefore() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor.position == 0 {
		return false
	}
	if !e.buf.Delete(e.cursor.position-1, 1) {
		return false
	}
	e.cursor.position--
	e.updateCursorLineColLocked()
	return true
}

// DeleteCharAfter deletes the byte at the cursor without moving it. A
// no-op at the end of the document.
func (e *Editor) DeleteCharAfter() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cursor.position >= e.buf.Length() {
		return false
	}
	return e.buf.Delete(e.cursor.position, 1)
}

// DeleteLine deletes the entire current line, including its trailing
// newline, and moves the cursor to the start of what was that line,
// clamped to the new document length.
func (e *Editor) DeleteLine() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	start := e.buf.LineStart(e.cursor.line)
	length := e.buf.LineLength(e.cursor.line)
	if !e.buf.Delete(start, length) {
		return false
	}
	e.cursor.position = start
	e.clampCursorLocked()
	return true
}
