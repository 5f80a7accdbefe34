package buffer

import "testing"

func TestNewBufferEmpty(t *testing.T) {
	b := NewBuffer()
	if b.Length() != 0 {
		t.Errorf("Length() = %d, want 0", b.Length())
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
	if got := b.GetAll(); got != "" {
		t.Errorf("GetAll() = %q, want empty", got)
	}
}

func TestInsertGrowsPieces(t *testing.T) {
	b := NewBuffer()
	if !b.Insert(0, "Hello World") {
		t.Fatal("Insert at 0 failed")
	}
	if !b.Insert(6, "Beautiful ") {
		t.Fatal("Insert at 6 failed")
	}
	if got, want := b.GetAll(), "Hello Beautiful World"; got != want {
		t.Errorf("GetAll() = %q, want %q", got, want)
	}
	if len(b.pieces) != 3 {
		t.Errorf("len(pieces) = %d, want 3", len(b.pieces))
	}
	if b.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", b.LineCount())
	}
}

func TestInsertOutOfRangeFails(t *testing.T) {
	b := NewBuffer(WithContent("abc"))
	if b.Insert(10, "x") {
		t.Error("Insert past length should fail")
	}
	if b.Insert(0, "") {
		t.Error("Insert of empty text should fail")
	}
}

func TestLineQueries(t *testing.T) {
	b := NewBuffer(WithContent("ab\ncd\nef"))
	if got, want := b.LineCount(), uint32(3); got != want {
		t.Fatalf("LineCount() = %d, want %d", got, want)
	}
	if line, ok := b.GetLine(1); !ok || line != "cd" {
		t.Errorf("GetLine(1) = %q,%v, want \"cd\",true", line, ok)
	}
	if got, want := b.LineStart(2), ByteOffset(6); got != want {
		t.Errorf("LineStart(2) = %d, want %d", got, want)
	}
}

func TestTrailingNewlineAddsEmptyLine(t *testing.T) {
	b := NewBuffer(WithContent("a\nb\n"))
	if got, want := b.LineCount(), uint32(3); got != want {
		t.Errorf("LineCount() = %d, want %d", got, want)
	}
	if line, ok := b.GetLine(2); !ok || line != "" {
		t.Errorf("GetLine(2) = %q,%v, want \"\",true", line, ok)
	}
}

func TestDeleteWholeInsertedPiece(t *testing.T) {
	b := NewBuffer(WithContent("Hello World"))
	b.Insert(5, ", Dear")
	// "Hello, Dear World"
	if !b.Delete(5, 6) {
		t.Fatal("Delete failed")
	}
	if got, want := b.GetAll(), "Hello World"; got != want {
		t.Errorf("GetAll() = %q, want %q", got, want)
	}
}

func TestDeleteOutOfRangeFails(t *testing.T) {
	b := NewBuffer(WithContent("abc"))
	if b.Delete(2, 5) {
		t.Error("Delete past length should fail")
	}
	if b.Delete(0, 0) {
		t.Error("Delete of zero bytes should fail")
	}
}

func TestReplace(t *testing.T) {
	b := NewBuffer(WithContent("Hello, World!"))
	if !b.Replace(7, 5, "Go") {
		t.Fatal("Replace failed")
	}
	if got, want := b.GetAll(), "Hello, Go!"; got != want {
		t.Errorf("GetAll() = %q, want %q", got, want)
	}
}

func TestFindNextDoesNotWrap(t *testing.T) {
	b := NewBuffer(WithContent("find the needle in the haystack"))
	if got := b.FindNext(0, "the"); got != 5 {
		t.Errorf("FindNext(0) = %d, want 5", got)
	}
	if got := b.FindNext(6, "the"); got != 19 {
		t.Errorf("FindNext(6) = %d, want 19", got)
	}
	if got := b.FindNext(20, "the"); got != -1 {
		t.Errorf("FindNext(20) = %d, want -1", got)
	}
}

func TestFindPrev(t *testing.T) {
	b := NewBuffer(WithContent("the cat sat on the mat"))
	if got := b.FindPrev(22, "the"); got != 15 {
		t.Errorf("FindPrev(22) = %d, want 15", got)
	}
	if got := b.FindPrev(15, "the"); got != 0 {
		t.Errorf("FindPrev(15) = %d, want 0", got)
	}
}

func TestFindEmptyNeedleFails(t *testing.T) {
	b := NewBuffer(WithContent("abc"))
	if b.FindNext(0, "") != -1 {
		t.Error("FindNext with empty needle should return -1")
	}
	if b.FindPrev(3, "") != -1 {
		t.Error("FindPrev with empty needle should return -1")
	}
}

func TestPosToLineColRoundTrip(t *testing.T) {
	b := NewBuffer(WithContent("aaa\nbb\ncccc"))
	for pos := int64(0); pos <= b.Length(); pos++ {
		p := b.PosToLineCol(pos)
		if got := b.LineColToPos(p); got != pos {
			t.Errorf("round trip at pos %d: got %d via %v", pos, got, p)
		}
	}
}

func TestLineStartLengthInvariant(t *testing.T) {
	b := NewBuffer(WithContent("aaa\nbb\ncccc"))
	n := b.LineCount()
	for i := uint32(0); i+1 < n; i++ {
		if got, want := b.LineStart(i)+b.LineLength(i), b.LineStart(i+1); got != want {
			t.Errorf("line %d: start+length = %d, want %d", i, got, want)
		}
	}
}

func TestCharAtOutOfRange(t *testing.T) {
	b := NewBuffer(WithContent("abc"))
	if got := b.CharAt(10); got != 0 {
		t.Errorf("CharAt(10) = %v, want 0", got)
	}
}

func TestGetLineNeverContainsNewline(t *testing.T) {
	b := NewBuffer(WithContent("a\nb\nc"))
	for i := uint32(0); i < b.LineCount(); i++ {
		line, ok := b.GetLine(i)
		if !ok {
			t.Fatalf("GetLine(%d) not ok", i)
		}
		for _, c := range []byte(line) {
			if c == '\n' {
				t.Errorf("line %d contains newline: %q", i, line)
			}
		}
	}
}

func TestSnapshotIsIndependentOfLiveEdits(t *testing.T) {
	b := NewBuffer(WithContent("original"))
	snap := b.Snapshot()
	b.Insert(0, "not-")
	if snap.Text() != "original" {
		t.Errorf("snapshot mutated: %q", snap.Text())
	}
	if got := b.GetAll(); got != "not-original" {
		t.Errorf("GetAll() = %q, want %q", got, "not-original")
	}
}
