package buffer

import (
	"sort"
	"strings"
	"sync"

	"github.com/AASoftIR/wasm-editor/internal/logging"
)

// pieceSource names which storage a piece's bytes live in.
type pieceSource uint8

const (
	sourceOriginal pieceSource = iota
	sourceAdd
)

// piece is a contiguous byte range within one of the two storages.
type piece struct {
	source pieceSource
	start  int64
	length int64
}

// Growth-policy defaults, matching the suggested capacities: small enough to
// stay cheap for empty documents, large enough to amortize for real ones.
const (
	DefaultAddCapacity   = 4096
	DefaultPieceCapacity = 64
	DefaultLineCapacity  = 1024
)

// Buffer is a piece-table text buffer: an immutable original byte sequence,
// an append-only add sequence holding everything inserted since
// construction, and an ordered sequence of pieces describing the document
// as a concatenation of ranges in one or the other.
//
// Buffer is safe for concurrent use: reads take a read lock, writes take an
// exclusive lock. The type itself assumes a single caller at a time issues
// logically ordered operations; the lock exists for safe concurrent
// Snapshot() reads, not for interleaving writers.
type Buffer struct {
	mu sync.RWMutex

	original []byte
	add      []byte
	pieces   []piece
	length   int64

	lineStarts []int64
	lineDirty  bool

	revision RevisionID
	log      *logging.Logger
}

// Option configures a Buffer at construction time.
type Option func(*Buffer)

// WithContent seeds the buffer with initial text, placed entirely in
// original storage as a single piece.
func WithContent(text string) Option {
	return func(b *Buffer) {
		if text == "" {
			return
		}
		b.original = []byte(text)
		b.pieces = append(b.pieces, piece{source: sourceOriginal, start: 0, length: int64(len(text))})
		b.length = int64(len(text))
	}
}

// WithCapacities overrides the initial capacities reserved for add storage,
// the piece sequence, and the line index. Values <= 0 keep the default.
func WithCapacities(addCap, pieceCap, lineCap int) Option {
	return func(b *Buffer) {
		if addCap > 0 {
			b.add = make([]byte, 0, addCap)
		}
		if pieceCap > 0 {
			newPieces := make([]piece, len(b.pieces), pieceCap)
			copy(newPieces, b.pieces)
			b.pieces = newPieces
		}
		if lineCap > 0 {
			b.lineStarts = make([]int64, 0, lineCap)
		}
	}
}

// WithLogger attaches a logger used for mutation diagnostics (applied and
// rejected inserts and deletes). Storage growth is not logged.
func WithLogger(l *logging.Logger) Option {
	return func(b *Buffer) {
		b.log = l
	}
}

// NewBuffer creates a fresh buffer, empty unless WithContent is given.
func NewBuffer(opts ...Option) *Buffer {
	b := &Buffer{
		add:        make([]byte, 0, DefaultAddCapacity),
		pieces:     make([]piece, 0, DefaultPieceCapacity),
		lineStarts: make([]int64, 0, DefaultLineCapacity),
		lineDirty:  true,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.revision = NewRevisionID()
	if b.log == nil {
		b.log = logging.Discard()
	}
	return b
}

// Length returns the total byte length of the document.
func (b *Buffer) Length() ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.length
}

// RevisionID returns the buffer's current revision.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

func (b *Buffer) storage(source pieceSource) []byte {
	if source == sourceOriginal {
		return b.original
	}
	return b.add
}

// locate finds the piece containing pos and the offset within it. A pos
// equal to the buffer's total length is legal and yields (len(pieces), 0),
// representing "after the last piece".
func (b *Buffer) locate(pos int64) (idx int, offset int64) {
	if pos <= 0 {
		return 0, 0
	}
	var accum int64
	for i, p := range b.pieces {
		if pos < accum+p.length {
			return i, pos - accum
		}
		accum += p.length
	}
	return len(b.pieces), 0
}

// sliceLocked returns the document bytes within target as a freshly built
// string. Caller must hold at least a read lock.
func (b *Buffer) sliceLocked(target Range) string {
	if target.IsEmpty() {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(target.Len()))

	var accum int64
	for _, p := range b.pieces {
		pieceRange := Range{Start: accum, End: accum + p.length}
		accum = pieceRange.End

		if !pieceRange.Overlaps(target) {
			if pieceRange.Start >= target.End {
				break
			}
			continue
		}

		seg := pieceRange.Intersect(target)
		segStart := p.start + (seg.Start - pieceRange.Start)
		src := b.storage(p.source)
		sb.Write(src[segStart : segStart+seg.Len()])
	}
	return sb.String()
}

// CharAt returns the byte at pos, or 0 if pos is out of range.
func (b *Buffer) CharAt(pos ByteOffset) byte {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !(Range{Start: 0, End: b.length}).Contains(pos) {
		return 0
	}
	s := b.sliceLocked(Range{Start: pos, End: pos + 1})
	if s == "" {
		return 0
	}
	return s[0]
}

// GetText returns a copy of the bytes in [start, start+length). ok is false
// if the range is out of bounds.
func (b *Buffer) GetText(start, length ByteOffset) (text string, ok bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if length < 0 {
		return "", false
	}
	target := Range{Start: start, End: start + length}
	if !(Range{Start: 0, End: b.length}).ContainsRange(target) {
		return "", false
	}
	return b.sliceLocked(target), true
}

// GetAll returns a copy of the entire document.
func (b *Buffer) GetAll() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sliceLocked(Range{Start: 0, End: b.length})
}

// IsEmpty reports whether the document is empty.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.length == 0
}

// ensureLineIndexLocked rebuilds the line index if it is dirty. Caller must
// hold the write lock.
func (b *Buffer) ensureLineIndexLocked() {
	if !b.lineDirty {
		return
	}
	text := b.sliceLocked(Range{Start: 0, End: b.length})
	b.lineStarts = b.lineStarts[:0]
	b.lineStarts = append(b.lineStarts, 0)
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			b.lineStarts = append(b.lineStarts, int64(i+1))
		}
	}
	b.lineDirty = false
}

// LineCount returns the number of lines, rebuilding the line index first if
// it is dirty. Always >= 1, even for an empty document.
func (b *Buffer) LineCount() uint32 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureLineIndexLocked()
	return uint32(len(b.lineStarts))
}

// GetLine returns the content of line i, excluding its trailing newline.
func (b *Buffer) GetLine(i uint32) (string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureLineIndexLocked()
	if int(i) >= len(b.lineStarts) {
		return "", false
	}
	start := b.lineStarts[i]
	end := b.length
	if int(i)+1 < len(b.lineStarts) {
		end = b.lineStarts[i+1] - 1
	}
	return b.sliceLocked(Range{Start: start, End: end}), true
}

// LineStart returns the byte offset of the start of line i, or the total
// length if i is out of range.
func (b *Buffer) LineStart(i uint32) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureLineIndexLocked()
	if int(i) >= len(b.lineStarts) {
		return b.length
	}
	return b.lineStarts[i]
}

// LineLength returns the byte length of line i, including its trailing
// newline if one is present.
func (b *Buffer) LineLength(i uint32) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureLineIndexLocked()
	if int(i) >= len(b.lineStarts) {
		return 0
	}
	start := b.lineStarts[i]
	if int(i)+1 < len(b.lineStarts) {
		return b.lineStarts[i+1] - start
	}
	return b.length - start
}

// PosToLineCol converts a byte offset to a line/column pair. pos is clamped
// to [0, length].
func (b *Buffer) PosToLineCol(pos ByteOffset) Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureLineIndexLocked()

	if pos < 0 {
		pos = 0
	}
	if pos > b.length {
		pos = b.length
	}

	line := sort.Search(len(b.lineStarts), func(i int) bool {
		return b.lineStarts[i] > pos
	}) - 1
	if line < 0 {
		line = 0
	}
	return Point{Line: uint32(line), Column: uint32(pos - b.lineStarts[line])}
}

// LineColToPos converts a line/column pair to a byte offset. The line is
// clamped to the last line, and the column to that line's content length
// (excluding any trailing newline).
func (b *Buffer) LineColToPos(p Point) ByteOffset {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ensureLineIndexLocked()

	line := int(p.Line)
	if line >= len(b.lineStarts) {
		line = len(b.lineStarts) - 1
	}
	if line < 0 {
		line = 0
	}

	lineStart := b.lineStarts[line]
	var contentLen int64
	if line+1 < len(b.lineStarts) {
		contentLen = b.lineStarts[line+1] - 1 - lineStart
	} else {
		contentLen = b.length - lineStart
	}

	col := int64(p.Column)
	if col < 0 {
		col = 0
	}
	if col > contentLen {
		col = contentLen
	}
	return lineStart + col
}

func (b *Buffer) appendAdd(text string) int64 {
	start := int64(len(b.add))
	b.add = append(b.add, text...)
	return start
}

// insertLocked splices text into the piece sequence at pos. Caller must
// hold the write lock and have already validated pos and text.
func (b *Buffer) insertLocked(pos int64, text string) {
	n := int64(len(text))
	addStart := b.appendAdd(text)
	newPiece := piece{source: sourceAdd, start: addStart, length: n}

	switch {
	case pos == b.length:
		b.pieces = append(b.pieces, newPiece)
	default:
		idx, offset := b.locate(pos)
		switch {
		case offset == 0:
			b.pieces = append(b.pieces, piece{})
			copy(b.pieces[idx+1:], b.pieces[idx:])
			b.pieces[idx] = newPiece
		default:
			p := b.pieces[idx]
			left := piece{source: p.source, start: p.start, length: offset}
			right := piece{source: p.source, start: p.start + offset, length: p.length - offset}
			replacement := []piece{left, newPiece, right}
			tail := append([]piece{}, b.pieces[idx+1:]...)
			b.pieces = append(b.pieces[:idx], replacement...)
			b.pieces = append(b.pieces, tail...)
		}
	}

	b.length += n
	b.lineDirty = true
	b.revision = NewRevisionID()
}

// Insert inserts text at pos. Returns false if pos is out of range or text
// is empty.
func (b *Buffer) Insert(pos ByteOffset, text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pos < 0 || pos > b.length || len(text) == 0 {
		b.log.Debug("insert rejected", logging.F("pos", pos), logging.F("len", len(text)))
		return false
	}
	edit := NewInsert(pos, text)
	b.insertLocked(pos, text)
	b.log.Debug("edit applied", logging.F("edit", edit.String()), logging.F("delta", edit.Delta()))
	return true
}

// deleteLocked removes [pos, pos+n) from the piece sequence by rewriting it:
// pieces entirely outside the range pass through unchanged, pieces
// overlapping it are trimmed on one or both sides, and pieces wholly inside
// it are dropped. This covers every case buffer.c's delete_range handles
// (same-piece trim, whole-piece drop, cross-piece trim) as one linear pass,
// collapsing zero-length results by simply not appending them.
func (b *Buffer) deleteLocked(pos, n int64) {
	target := Range{Start: pos, End: pos + n}
	newPieces := make([]piece, 0, len(b.pieces))

	var accum int64
	for _, p := range b.pieces {
		pieceRange := Range{Start: accum, End: accum + p.length}
		accum = pieceRange.End

		if !pieceRange.Overlaps(target) {
			newPieces = append(newPieces, p)
			continue
		}
		if pieceRange.Start < target.Start {
			left := piece{source: p.source, start: p.start, length: target.Start - pieceRange.Start}
			if left.length > 0 {
				newPieces = append(newPieces, left)
			}
		}
		if pieceRange.End > target.End {
			right := piece{source: p.source, start: p.start + (target.End - pieceRange.Start), length: pieceRange.End - target.End}
			if right.length > 0 {
				newPieces = append(newPieces, right)
			}
		}
	}

	b.pieces = newPieces
	b.length -= n
	b.lineDirty = true
	b.revision = NewRevisionID()
}

// Delete removes n bytes starting at pos. Returns false if the range is out
// of bounds or n <= 0.
func (b *Buffer) Delete(pos, n ByteOffset) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n <= 0 || !(Range{Start: 0, End: b.length}).ContainsRange(Range{Start: pos, End: pos + n}) {
		b.log.Debug("delete rejected", logging.F("pos", pos), logging.F("n", n))
		return false
	}
	edit := NewDelete(pos, pos+n)
	b.deleteLocked(pos, n)
	b.log.Debug("edit applied", logging.F("edit", edit.String()), logging.F("delta", edit.Delta()))
	return true
}

// Replace deletes oldLen bytes at pos and inserts text in their place, as a
// single caller-visible operation: either both sub-steps happen or neither
// does. oldLen or len(text) may be zero, reducing Replace to a pure insert
// or pure delete.
func (b *Buffer) Replace(pos, oldLen ByteOffset, text string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if oldLen < 0 || !(Range{Start: 0, End: b.length}).ContainsRange(Range{Start: pos, End: pos + oldLen}) {
		return false
	}
	if oldLen > 0 {
		b.deleteLocked(pos, oldLen)
	}
	if len(text) > 0 {
		b.insertLocked(pos, text)
	}
	return true
}

// FindNext returns the smallest offset >= from of a literal match of
// needle, or -1 if there is none. An empty needle never matches.
func (b *Buffer) FindNext(from ByteOffset, needle string) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if needle == "" {
		return -1
	}
	if from < 0 {
		from = 0
	}
	if from > b.length {
		return -1
	}
	text := b.sliceLocked(Range{Start: 0, End: b.length})
	idx := strings.Index(text[from:], needle)
	if idx < 0 {
		return -1
	}
	return from + int64(idx)
}

// FindPrev returns the largest offset < from of a literal match of needle
// that fits entirely before from, or -1 if there is none.
func (b *Buffer) FindPrev(from ByteOffset, needle string) ByteOffset {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if needle == "" {
		return -1
	}
	if from > b.length {
		from = b.length
	}
	if from <= 0 {
		return -1
	}
	text := b.sliceLocked(Range{Start: 0, End: b.length})
	idx := strings.LastIndex(text[:from], needle)
	if idx < 0 {
		return -1
	}
	return int64(idx)
}
