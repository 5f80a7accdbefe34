package buffer

// Snapshot is a read-only, point-in-time view of a buffer's content. It is
// an immutable copy, safe for concurrent use from a different goroutine
// than the one mutating the live Buffer.
type Snapshot struct {
	text       string
	revisionID RevisionID
	lineStarts []int64
}

// Snapshot captures the buffer's current content and line index.
func (b *Buffer) Snapshot() *Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureLineIndexLocked()

	lineStarts := make([]int64, len(b.lineStarts))
	copy(lineStarts, b.lineStarts)

	return &Snapshot{
		text:       b.sliceLocked(Range{Start: 0, End: b.length}),
		revisionID: b.revision,
		lineStarts: lineStarts,
	}
}

// Text returns the full snapshot content.
func (s *Snapshot) Text() string {
	return s.text
}

// TextRange returns the snapshot's text in [start, end).
func (s *Snapshot) TextRange(start, end ByteOffset) string {
	if start < 0 {
		start = 0
	}
	if end > int64(len(s.text)) {
		end = int64(len(s.text))
	}
	if start >= end {
		return ""
	}
	return s.text[start:end]
}

// Len returns the total byte length of the snapshot.
func (s *Snapshot) Len() ByteOffset {
	return int64(len(s.text))
}

// LineCount returns the number of lines captured in the snapshot.
func (s *Snapshot) LineCount() uint32 {
	return uint32(len(s.lineStarts))
}

// LineText returns the text of line i, excluding its trailing newline.
func (s *Snapshot) LineText(line uint32) string {
	if int(line) >= len(s.lineStarts) {
		return ""
	}
	start := s.lineStarts[line]
	end := int64(len(s.text))
	if int(line)+1 < len(s.lineStarts) {
		end = s.lineStarts[line+1] - 1
	}
	return s.TextRange(start, end)
}

// RevisionID returns the revision the snapshot was taken at.
func (s *Snapshot) RevisionID() RevisionID {
	return s.revisionID
}

// IsEmpty reports whether the snapshot is empty.
func (s *Snapshot) IsEmpty() bool {
	return len(s.text) == 0
}
