package engine

import "testing"

func TestInsertConcatenation(t *testing.T) {
	e := New()
	e.InsertText(0, "Hello World")
	e.InsertText(6, "Beautiful ")
	if got, want := e.GetAll(), "Hello Beautiful World"; got != want {
		t.Errorf("GetAll() = %q, want %q", got, want)
	}
	if e.LineCount() != 1 {
		t.Errorf("LineCount() = %d, want 1", e.LineCount())
	}
}

func TestLoadTextLineQueries(t *testing.T) {
	e := New(WithContent("ab\ncd\nef"))
	if got, want := e.LineCount(), uint32(3); got != want {
		t.Errorf("LineCount() = %d, want %d", got, want)
	}
	if line, ok := e.GetLine(1); !ok || line != "cd" {
		t.Errorf("GetLine(1) = %q,%v, want cd,true", line, ok)
	}
}

func TestMotionWAndB(t *testing.T) {
	e := New(WithContent("hello world"))
	e.SetPosition(0)

	e.MotionW()
	if got := e.Position(); got != 6 {
		t.Fatalf("after w: Position() = %d, want 6", got)
	}
	e.MotionW()
	if got := e.Position(); got != 11 {
		t.Fatalf("after w: Position() = %d, want 11", got)
	}
	e.MotionB()
	if got := e.Position(); got != 6 {
		t.Fatalf("after b: Position() = %d, want 6", got)
	}
}

func TestMotionJPreservesPreferredColumn(t *testing.T) {
	e := New(WithContent("aaa\nbb\ncccc"))
	e.SetPosition(2) // line 0, column 2

	e.MotionJ()
	if line, col := e.Line(), e.Column(); line != 1 || col != 1 {
		t.Fatalf("after j: line=%d col=%d, want 1/1 (clamped)", line, col)
	}

	e.MotionJ()
	if line, col := e.Line(), e.Column(); line != 2 || col != 2 {
		t.Fatalf("after second j: line=%d col=%d, want 2/2", line, col)
	}
}

func TestSearchNextWraps(t *testing.T) {
	e := New(WithContent("find the needle in the haystack"))
	e.SetSearchPattern("the")

	if !e.SearchNext() || e.Position() != 5 {
		t.Fatalf("first SearchNext: pos=%d, want 5", e.Position())
	}
	if !e.SearchNext() || e.Position() != 19 {
		t.Fatalf("second SearchNext: pos=%d, want 19", e.Position())
	}
	if !e.SearchNext() || e.Position() != 5 {
		t.Fatalf("wrapped SearchNext: pos=%d, want 5", e.Position())
	}
}

func TestDeleteLine(t *testing.T) {
	e := New(WithContent("line1\nline2\nline3"))
	e.SetPosition(6) // start of "line2"

	if !e.DeleteLine() {
		t.Fatal("DeleteLine failed")
	}
	if got, want := e.GetAll(), "line1\nline3"; got != want {
		t.Errorf("GetAll() = %q, want %q", got, want)
	}
	if e.LineCount() != 2 {
		t.Errorf("LineCount() = %d, want 2", e.LineCount())
	}
	if e.Position() != 6 {
		t.Errorf("Position() = %d, want 6", e.Position())
	}
}

func TestModeVisualSideEffects(t *testing.T) {
	e := New(WithContent("hello world"))
	e.SetPosition(3)

	e.SetMode(ModeVisual)
	if !e.HasSelection() {
		t.Fatal("entering VISUAL should start a selection")
	}
	e.SetPosition(8)
	if got, want := e.SelectionStart(), int64(3); got != want {
		t.Errorf("SelectionStart() = %d, want %d", got, want)
	}
	if got, want := e.SelectionEnd(), int64(8); got != want {
		t.Errorf("SelectionEnd() = %d, want %d", got, want)
	}

	e.SetMode(ModeNormal)
	if e.HasSelection() {
		t.Error("entering NORMAL should clear the selection")
	}
}

func TestSelectionPointRange(t *testing.T) {
	e := New(WithContent("aaa\nbb\ncccc"))
	e.SetPosition(1)
	e.SetMode(ModeVisual)
	e.SetPosition(5) // line 1, column 1 ("bb")

	pr := e.SelectionPointRange()
	if pr.Start.Line != 0 || pr.Start.Column != 1 {
		t.Errorf("Start = %s, want (0:1)", pr.Start)
	}
	if pr.End.Line != 1 || pr.End.Column != 1 {
		t.Errorf("End = %s, want (1:1)", pr.End)
	}
}

func TestSelectionWithoutSelectionReturnsPosition(t *testing.T) {
	e := New(WithContent("hello"))
	e.SetPosition(2)
	if e.SelectionStart() != 2 || e.SelectionEnd() != 2 {
		t.Error("without a selection, start/end should equal the cursor position")
	}
}

func TestInsertCharAdvancesCursor(t *testing.T) {
	e := New(WithContent("ac"))
	e.SetPosition(1)
	if !e.InsertChar('b') {
		t.Fatal("InsertChar failed")
	}
	if got, want := e.GetAll(), "abc"; got != want {
		t.Errorf("GetAll() = %q, want %q", got, want)
	}
	if e.Position() != 2 {
		t.Errorf("Position() = %d, want 2", e.Position())
	}
}

func TestDeleteCharBeforeAndAfter(t *testing.T) {
	e := New(WithContent("abc"))
	e.SetPosition(0)
	if e.DeleteCharBefore() {
		t.Error("DeleteCharBefore at position 0 should fail")
	}
	if !e.DeleteCharAfter() {
		t.Fatal("DeleteCharAfter failed")
	}
	if got, want := e.GetAll(), "bc"; got != want {
		t.Errorf("GetAll() = %q, want %q", got, want)
	}
}

func TestModeName(t *testing.T) {
	e := New()
	if got, want := e.ModeName(), "NORMAL"; got != want {
		t.Errorf("ModeName() = %q, want %q", got, want)
	}
	e.SetMode(ModeInsert)
	if got, want := e.ModeName(), "INSERT"; got != want {
		t.Errorf("ModeName() = %q, want %q", got, want)
	}
}

func TestMotionEOnEmptyBufferIsNoOp(t *testing.T) {
	e := New()
	e.MotionE()
	if e.Position() != 0 {
		t.Errorf("Position() = %d, want 0", e.Position())
	}
}
