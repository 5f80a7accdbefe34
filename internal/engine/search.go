package engine

// SetSearchPattern stores s as the literal search pattern, truncated to the
// configured maximum (255 bytes by default).
func (e *Editor) SetSearchPattern(s string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	max := e.cfg.Search.MaxPatternLen
	if max > 0 && len(s) > max {
		s = s[:max]
	}
	e.searchPattern = s
}

// SearchNext moves the cursor to the next literal match at or after
// position+1, wrapping to the start of the document if none is found. An
// empty pattern always fails.
func (e *Editor) SearchNext() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.searchPattern == "" {
		return false
	}

	found := e.buf.FindNext(e.cursor.position+1, e.searchPattern)
	if found < 0 {
		found = e.buf.FindNext(0, e.searchPattern)
	}
	if found < 0 {
		return false
	}

	e.cursor.position = found
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
	return true
}

// SearchPrev moves the cursor to the last literal match before position,
// wrapping to the end of the document if none is found. An empty pattern
// always fails.
func (e *Editor) SearchPrev() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.searchPattern == "" {
		return false
	}

	found := e.buf.FindPrev(e.cursor.position, e.searchPattern)
	if found < 0 {
		found = e.buf.FindPrev(e.buf.Length(), e.searchPattern)
	}
	if found < 0 {
		return false
	}

	e.cursor.position = found
	e.updateCursorLineColLocked()
	e.cursor.preferredColumn = e.cursor.column
	return true
}
