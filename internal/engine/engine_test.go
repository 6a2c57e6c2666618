package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/dshills/codearea/internal/logging"
)

func assertState(t *testing.T, e *Engine, content string, col, line int) {
	t.Helper()
	if got := e.Content(); got != content {
		t.Errorf("Content() = %q, want %q", got, content)
	}
	if c, l := e.CursorPosition(); c != col || l != line {
		t.Errorf("CursorPosition() = (%d, %d), want (%d, %d)", c, l, col, line)
	}
	if err := e.Validate(); err != nil {
		t.Errorf("Validate(): %v", err)
	}
}

func typeString(e *Engine, s string) {
	for _, r := range s {
		e.Insert(r)
	}
}

// ============================================================================
// Construction
// ============================================================================

func TestNew(t *testing.T) {
	e := New()
	assertState(t, e, "", 0, 0)

	if !e.IsEmpty() || e.Len() != 0 {
		t.Error("expected empty engine")
	}
	if !e.IsEnabled() {
		t.Error("new engine should be enabled")
	}
	if e.TabWidth() != DefaultTabWidth {
		t.Errorf("expected tab width %d, got %d", DefaultTabWidth, e.TabWidth())
	}
	if e.ID() == uuid.Nil {
		t.Error("engine should have an id")
	}
}

func TestNewWithContent(t *testing.T) {
	e := New(WithContent("ab\n\tc"))

	assertState(t, e, "ab\n\tc", 5, 1)
	if e.CanUndo() {
		t.Error("initial content should not be undoable")
	}
}

func TestNewWithOptions(t *testing.T) {
	id := uuid.New()
	e := New(WithTabWidth(8), WithMaxUndoEntries(2), WithID(id), WithDisabled())

	if e.TabWidth() != 8 {
		t.Errorf("expected tab width 8, got %d", e.TabWidth())
	}
	if e.MaxUndoEntries() != 2 {
		t.Errorf("expected undo bound 2, got %d", e.MaxUndoEntries())
	}
	if e.ID() != id {
		t.Errorf("expected id %v, got %v", id, e.ID())
	}
	if e.IsEnabled() || e.Mode() != ModeDisabled {
		t.Error("engine should start disabled")
	}

	e.Enable()
	e.Tab()
	assertState(t, e, "\t", 8, 0)
}

func TestInvalidOptionsIgnored(t *testing.T) {
	e := New(WithTabWidth(0), WithMaxUndoEntries(-3), WithLogger(nil))
	if e.TabWidth() != DefaultTabWidth {
		t.Errorf("invalid tab width should be ignored, got %d", e.TabWidth())
	}
	if e.MaxUndoEntries() != DefaultMaxUndoEntries {
		t.Errorf("invalid undo bound should be ignored, got %d", e.MaxUndoEntries())
	}
	// Must not panic with a nil logger option.
	e.Disable()
	e.Insert('x')
}

// ============================================================================
// Scenarios
// ============================================================================

func TestScenarioTypeNewlineTab(t *testing.T) {
	e := New()
	e.Insert('a')
	e.Insert('b')
	e.Newline()
	e.Tab()

	assertState(t, e, "ab\n\t", 4, 1)
}

func TestScenarioUpClampsColumn(t *testing.T) {
	e := New()
	typeString(e, "abc")
	e.Newline()
	typeString(e, "de")

	if !e.Up() {
		t.Fatal("Up should move")
	}
	e.Insert('f')

	assertState(t, e, "abfc\nde", 3, 0)
}

func TestScenarioEraseLine(t *testing.T) {
	e := New()
	typeString(e, "ab")
	e.Newline()

	if n := e.EraseLine(); n != 1 {
		t.Errorf("EraseLine() = %d, want 1", n)
	}
	assertState(t, e, "ab", 2, 0)
}

func TestScenarioDownOnSingleLine(t *testing.T) {
	e := New()
	typeString(e, "hello")
	e.MoveLeft()
	e.MoveLeft()

	if e.Down() {
		t.Error("Down on single line should not move")
	}
	assertState(t, e, "hello", 3, 0)
}

func TestScenarioUndoErase(t *testing.T) {
	e := New()
	e.Insert('a')
	e.Insert('b')
	e.EraseSymbol()

	if !e.Undo() {
		t.Fatal("Undo should apply")
	}
	assertState(t, e, "ab", 2, 0)
}

func TestScenarioDisabledInsert(t *testing.T) {
	e := New()
	typeString(e, "hi")
	e.Disable()

	if e.Insert('x') {
		t.Error("Insert while disabled should report false")
	}
	assertState(t, e, "hi", 2, 0)
}

// ============================================================================
// Insertion and Erasure
// ============================================================================

func TestInsertRoutesTabAndNewline(t *testing.T) {
	e := New()
	e.Insert('\t')
	e.Insert('\n')
	e.Insert('x')

	assertState(t, e, "\t\nx", 1, 1)
}

func TestInsertString(t *testing.T) {
	e := New()
	if n := e.InsertString("héllo\n世界"); n != 8 {
		t.Errorf("InsertString() = %d, want 8", n)
	}
	assertState(t, e, "héllo\n世界", 2, 1)
	if e.UndoCount() != 1 {
		t.Errorf("pasted text should coalesce into one record, got %d", e.UndoCount())
	}
}

func TestInsertInMiddle(t *testing.T) {
	e := New()
	typeString(e, "ac")
	e.MoveLeft()
	e.Insert('b')

	assertState(t, e, "abc", 2, 0)
}

func TestEraseSymbol(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		content string
		col     int
		line    int
	}{
		{"plain", "abc", "ab", 2, 0},
		{"tab", "a\t", "a", 1, 0},
		{"newline", "ab\n", "ab", 2, 0},
		{"newline after tab line", "\tx\n", "\tx", 5, 0},
		{"second line", "a\nbc", "a\nb", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			typeString(e, tt.text)
			if !e.EraseSymbol() {
				t.Fatal("EraseSymbol should erase")
			}
			assertState(t, e, tt.content, tt.col, tt.line)
		})
	}
}

func TestEraseSymbolAtStart(t *testing.T) {
	e := New()
	if e.EraseSymbol() {
		t.Error("EraseSymbol on empty document should report false")
	}

	typeString(e, "ab")
	e.BeginningOfDocument()
	if e.EraseSymbol() {
		t.Error("EraseSymbol at document start should report false")
	}
	assertState(t, e, "ab", 0, 0)
	if e.UndoCount() != 1 {
		t.Errorf("no-op erase should not record history, got %d records", e.UndoCount())
	}
}

func TestEraseLineWholeDocument(t *testing.T) {
	e := New()
	typeString(e, "hello")

	if n := e.EraseLine(); n != 5 {
		t.Errorf("EraseLine() = %d, want 5", n)
	}
	assertState(t, e, "", 0, 0)

	if n := e.EraseLine(); n != 0 {
		t.Errorf("EraseLine() on empty = %d, want 0", n)
	}
}

func TestEraseLineStopsAfterNewline(t *testing.T) {
	e := New()
	typeString(e, "one\ntwo")

	if n := e.EraseLine(); n != 4 {
		t.Errorf("EraseLine() = %d, want 4", n)
	}
	assertState(t, e, "one", 3, 0)
}

func TestEraseKeepsTextAfterCursor(t *testing.T) {
	e := New()
	typeString(e, "abc\ndef")
	e.JumpToLineStart()
	e.EraseSymbol()

	assertState(t, e, "abcdef", 3, 0)
}

// ============================================================================
// Navigation
// ============================================================================

func TestMoveLeftRight(t *testing.T) {
	e := New()
	typeString(e, "a\tb\nc")

	steps := []struct {
		col, line int
	}{
		{0, 1}, // before 'c'
		{6, 0}, // end of "a\tb"
		{5, 0}, // before 'b'
		{1, 0}, // before tab
		{0, 0}, // before 'a'
	}
	for i, s := range steps {
		if !e.MoveLeft() {
			t.Fatalf("MoveLeft %d failed", i)
		}
		if c, l := e.CursorPosition(); c != s.col || l != s.line {
			t.Errorf("step %d: (%d, %d), want (%d, %d)", i, c, l, s.col, s.line)
		}
	}

	if e.MoveLeft() {
		t.Error("MoveLeft at start should report false")
	}

	for i := len(steps) - 2; i >= 0; i-- {
		e.MoveRight()
		if c, l := e.CursorPosition(); c != steps[i].col || l != steps[i].line {
			t.Errorf("right step %d: (%d, %d), want (%d, %d)", i, c, l, steps[i].col, steps[i].line)
		}
	}
	e.MoveRight()
	if e.MoveRight() {
		t.Error("MoveRight at end should report false")
	}
	assertState(t, e, "a\tb\nc", 1, 1)
}

func TestMoveLeftThenRightRestores(t *testing.T) {
	e := New()
	typeString(e, "ab\n\tcd\nef")

	for i := e.Len(); i > 0; i-- {
		content := e.Content()
		col, line := e.CursorPosition()

		e.MoveLeft()
		e.MoveRight()

		if e.Content() != content {
			t.Fatalf("offset %d: content changed: %q vs %q", i, e.Content(), content)
		}
		if c, l := e.CursorPosition(); c != col || l != line {
			t.Fatalf("offset %d: position changed: (%d, %d) vs (%d, %d)", i, c, l, col, line)
		}
		e.MoveLeft()
	}
}

func TestJumpToLineStartEnd(t *testing.T) {
	e := New()
	typeString(e, "first\nse\tcond\nthird")
	e.Up()

	// Up clamped column 5 to 2: the tab at column 2 would overshoot.
	if n := e.JumpToLineStart(); n != 2 {
		t.Errorf("JumpToLineStart() = %d, want 2", n)
	}
	assertState(t, e, "first\nse\tcond\nthird", 0, 1)

	if n := e.JumpToLineStart(); n != 0 {
		t.Errorf("JumpToLineStart() at line start = %d, want 0", n)
	}

	if n := e.JumpToLineEnd(); n != 7 {
		t.Errorf("JumpToLineEnd() = %d, want 7", n)
	}
	assertState(t, e, "first\nse\tcond\nthird", 10, 1)

	if n := e.JumpToLineEnd(); n != 0 {
		t.Errorf("JumpToLineEnd() at line end = %d, want 0", n)
	}
}

func TestUpKeepsColumn(t *testing.T) {
	e := New()
	typeString(e, "abcdef\nxyz")
	e.MoveLeft()

	if !e.Up() {
		t.Fatal("Up should move")
	}
	assertState(t, e, "abcdef\nxyz", 2, 0)
	if e.Offset() != 2 {
		t.Errorf("Offset() = %d, want 2", e.Offset())
	}
}

func TestUpOnFirstLine(t *testing.T) {
	e := New()
	typeString(e, "abc")
	if e.Up() {
		t.Error("Up on first line should not move")
	}
	assertState(t, e, "abc", 3, 0)
}

func TestUpIntoEmptyLine(t *testing.T) {
	e := New()
	typeString(e, "\nabc")

	e.Up()
	assertState(t, e, "\nabc", 0, 0)
	if e.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", e.Offset())
	}
}

func TestUpDoesNotSplitTab(t *testing.T) {
	e := New()
	typeString(e, "\tx\nab")

	e.Up()
	// Column 2 falls inside the tab; the cursor stays before it.
	assertState(t, e, "\tx\nab", 0, 0)
}

func TestDown(t *testing.T) {
	e := New()
	typeString(e, "abcdef\nxy\nlonger line")
	e.BeginningOfDocument()
	for i := 0; i < 4; i++ {
		e.MoveRight()
	}

	if !e.Down() {
		t.Fatal("Down should move")
	}
	// "xy" is shorter: clamp to its width.
	assertState(t, e, "abcdef\nxy\nlonger line", 2, 1)

	if !e.Down() {
		t.Fatal("Down should move")
	}
	assertState(t, e, "abcdef\nxy\nlonger line", 2, 2)

	if e.Down() {
		t.Error("Down on last line should not move")
	}
	assertState(t, e, "abcdef\nxy\nlonger line", 2, 2)
}

func TestDownAcrossTabs(t *testing.T) {
	e := New()
	typeString(e, "abcde\n\t\tz")
	e.BeginningOfDocument()
	for i := 0; i < 5; i++ {
		e.MoveRight()
	}

	e.Down()
	// Column 5 lands after the first tab (4); the second would overshoot.
	assertState(t, e, "abcde\n\t\tz", 4, 1)
}

func TestDownIntoTrailingEmptyLine(t *testing.T) {
	e := New()
	typeString(e, "abc\n")
	e.Up()
	e.JumpToLineEnd()

	if !e.Down() {
		t.Fatal("Down should move onto the empty last line")
	}
	assertState(t, e, "abc\n", 0, 1)
}

func TestUpDownRoundTrip(t *testing.T) {
	e := New()
	typeString(e, "hello\nworld")
	e.MoveLeft()
	e.MoveLeft()

	e.Up()
	e.Down()
	assertState(t, e, "hello\nworld", 3, 1)
}

func TestDocumentBoundaries(t *testing.T) {
	e := New()
	typeString(e, "ab\ncd")

	if n := e.BeginningOfDocument(); n != 5 {
		t.Errorf("BeginningOfDocument() = %d, want 5", n)
	}
	assertState(t, e, "ab\ncd", 0, 0)
	if n := e.BeginningOfDocument(); n != 0 {
		t.Errorf("second BeginningOfDocument() = %d, want 0", n)
	}

	if n := e.EndOfDocument(); n != 5 {
		t.Errorf("EndOfDocument() = %d, want 5", n)
	}
	assertState(t, e, "ab\ncd", 2, 1)
	if n := e.EndOfDocument(); n != 0 {
		t.Errorf("second EndOfDocument() = %d, want 0", n)
	}
}

// ============================================================================
// Undo
// ============================================================================

func TestUndoTypedRun(t *testing.T) {
	e := New()
	typeString(e, "hello")

	if !e.Undo() {
		t.Fatal("Undo should apply")
	}
	assertState(t, e, "", 0, 0)
	if e.Undo() {
		t.Error("Undo with empty history should report false")
	}
}

func TestUndoSequence(t *testing.T) {
	e := New()
	e.InsertString("hello")
	e.EraseSymbol()
	e.EraseSymbol()

	if e.UndoCount() != 2 {
		t.Fatalf("expected 2 records, got %d", e.UndoCount())
	}

	e.Undo()
	assertState(t, e, "hello", 5, 0)
	e.Undo()
	assertState(t, e, "", 0, 0)
}

func TestUndoEraseLineAcrossNewline(t *testing.T) {
	e := New()
	typeString(e, "ab\n\tc")
	e.EraseLine()
	e.EraseLine()
	assertState(t, e, "", 0, 0)

	// Both EraseLine calls coalesce into one erased run.
	if e.UndoCount() != 2 {
		t.Errorf("expected 2 records, got %d", e.UndoCount())
	}
	e.Undo()
	assertState(t, e, "ab\n\tc", 5, 1)
}

func TestUndoTypedAcrossNewline(t *testing.T) {
	e := New()
	typeString(e, "x\ty\nz")
	e.Undo()
	assertState(t, e, "", 0, 0)
}

func TestEditAfterUndoStartsFreshRecord(t *testing.T) {
	e := New()
	typeString(e, "ab")
	e.EraseSymbol()
	typeString(e, "cd")
	e.Undo() // removes "cd"
	assertState(t, e, "a", 1, 0)

	// Head is now Erased("b"); this erase must not merge into it.
	e.EraseSymbol()
	if e.UndoCount() != 3 {
		t.Fatalf("expected 3 records, got %d", e.UndoCount())
	}

	e.Undo() // restores 'a'
	assertState(t, e, "a", 1, 0)
	e.Undo() // restores 'b'
	assertState(t, e, "ab", 2, 0)
	e.Undo() // removes "ab"
	assertState(t, e, "", 0, 0)
}

func TestUndoAtMovedCursor(t *testing.T) {
	e := New()
	typeString(e, "abc")
	e.EraseSymbol()
	e.BeginningOfDocument()

	e.Undo()
	// The erased run is reinserted where the cursor is.
	assertState(t, e, "cab", 1, 0)
}

func TestUndoTypedRunLongerThanPrefix(t *testing.T) {
	e := New()
	typeString(e, "abcd")
	e.MoveLeft()
	e.MoveLeft()

	e.Undo()
	assertState(t, e, "cd", 0, 0)
}

func TestUndoLimit(t *testing.T) {
	e := New(WithMaxUndoEntries(2))
	typeString(e, "ab")
	e.EraseSymbol()
	typeString(e, "c")
	e.EraseSymbol()

	if e.UndoCount() != 2 {
		t.Fatalf("expected 2 records, got %d", e.UndoCount())
	}
	e.Undo()
	e.Undo()
	if e.Undo() {
		t.Error("pruned records should not be undoable")
	}
	assertState(t, e, "a", 1, 0)
}

func TestSetMaxUndoEntries(t *testing.T) {
	e := New()
	typeString(e, "ab")
	e.EraseSymbol()
	typeString(e, "c")
	e.EraseSymbol()
	if e.UndoCount() != 4 {
		t.Fatalf("expected 4 records, got %d", e.UndoCount())
	}

	e.SetMaxUndoEntries(2)
	if e.MaxUndoEntries() != 2 || e.UndoCount() != 2 {
		t.Fatalf("expected 2 of at most 2 records, got %d of %d", e.UndoCount(), e.MaxUndoEntries())
	}
	e.Undo()
	e.Undo()
	if e.Undo() {
		t.Error("records dropped by the new bound should not be undoable")
	}
	assertState(t, e, "a", 1, 0)

	e.SetMaxUndoEntries(0)
	if e.MaxUndoEntries() != DefaultMaxUndoEntries {
		t.Errorf("non-positive bound should restore the default, got %d", e.MaxUndoEntries())
	}
}

func TestUndoInfoAndClear(t *testing.T) {
	e := New()
	typeString(e, "ab")
	e.EraseSymbol()

	info := e.UndoInfo()
	if len(info) != 2 {
		t.Fatalf("expected 2 records, got %d", len(info))
	}
	if info[0].Description != `Type "ab"` || info[1].Description != `Erase "b"` {
		t.Errorf("unexpected info %+v", info)
	}

	e.ClearHistory()
	if e.CanUndo() {
		t.Error("ClearHistory should empty the log")
	}
}

// ============================================================================
// Mode
// ============================================================================

func TestDisabledRejectsEveryMutation(t *testing.T) {
	e := New()
	typeString(e, "ab\ncd")
	e.MoveLeft()
	e.Disable()

	ops := map[string]func() bool{
		"Insert":              func() bool { return e.Insert('x') },
		"Tab":                 e.Tab,
		"Newline":             e.Newline,
		"InsertString":        func() bool { return e.InsertString("xyz") > 0 },
		"EraseSymbol":         e.EraseSymbol,
		"EraseLine":           func() bool { return e.EraseLine() > 0 },
		"MoveLeft":            e.MoveLeft,
		"MoveRight":           e.MoveRight,
		"JumpToLineStart":     func() bool { return e.JumpToLineStart() > 0 },
		"JumpToLineEnd":       func() bool { return e.JumpToLineEnd() > 0 },
		"Up":                  e.Up,
		"Down":                e.Down,
		"BeginningOfDocument": func() bool { return e.BeginningOfDocument() > 0 },
		"EndOfDocument":       func() bool { return e.EndOfDocument() > 0 },
		"Undo":                e.Undo,
	}

	for name, op := range ops {
		if op() {
			t.Errorf("%s while disabled reported a change", name)
		}
		assertState(t, e, "ab\ncd", 1, 1)
	}
	if e.UndoCount() != 1 {
		t.Errorf("disabled engine recorded history: %d records", e.UndoCount())
	}

	e.Enable()
	if !e.Insert('x') {
		t.Error("Insert after Enable should apply")
	}
	assertState(t, e, "ab\ncxd", 2, 1)
}

func TestModeString(t *testing.T) {
	if ModeEnabled.String() != "enabled" || ModeDisabled.String() != "disabled" {
		t.Error("unexpected mode names")
	}
	if Mode(7).String() != "unknown" {
		t.Error("unknown mode should report unknown")
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(logging.Config{Level: logging.LevelDebug, Output: &buf})
	e := New(WithLogger(logger), WithMaxUndoEntries(1))

	e.Insert('a')
	e.EraseSymbol()
	e.Undo()
	e.Disable()
	e.Insert('b')

	out := buf.String()
	for _, want := range []string{
		"component=engine",
		"engine=" + e.ID().String(),
		"history pruned",
		"undo applied",
		"mode changed",
		"operation rejected",
		"op=insert",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

// ============================================================================
// Queries
// ============================================================================

func TestRowsAndLineCount(t *testing.T) {
	e := New(WithContent("ab\n\ncde"))

	rows := e.Rows()
	want := []Row{{Start: 0, End: 2}, {Start: 3, End: 3}, {Start: 4, End: 7}}
	if len(rows) != len(want) {
		t.Fatalf("Rows() = %v, want %v", rows, want)
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %v, want %v", i, rows[i], want[i])
		}
	}
	if e.LineCount() != 3 {
		t.Errorf("LineCount() = %d, want 3", e.LineCount())
	}
}

func TestValidateReportsDrift(t *testing.T) {
	e := New()
	typeString(e, "abc")
	e.pos.Column = 7

	err := e.Validate()
	if !errors.Is(err, ErrCursorDrift) {
		t.Errorf("expected ErrCursorDrift, got %v", err)
	}
}
