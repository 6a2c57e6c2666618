package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/dshills/codearea/internal/engine/buffer"
	"github.com/dshills/codearea/internal/engine/cursor"
	"github.com/dshills/codearea/internal/engine/history"
	"github.com/dshills/codearea/internal/logging"
)

// Re-export commonly used types for convenience.
type (
	// Position is the cursor's visual column and line.
	Position = cursor.Position

	// Row is the extent of one line in the document.
	Row = buffer.Row

	// HistoryInfo summarizes an undo record.
	HistoryInfo = history.Info
)

// Mode gates mutating operations.
type Mode uint8

const (
	// ModeEnabled accepts every operation.
	ModeEnabled Mode = iota
	// ModeDisabled rejects every mutating operation as a no-op.
	ModeDisabled
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeEnabled:
		return "enabled"
	case ModeDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Engine owns the document text, the cursor and the undo log of a single
// multiline text widget.
//
// Engine is not safe for concurrent use; the host serializes calls.
type Engine struct {
	// Core components
	buf     *buffer.Buffer
	pos     cursor.Position
	history *history.Log

	mode Mode

	// Configuration
	id             uuid.UUID
	tabWidth       int
	maxUndoEntries int
	log            *logging.Logger

	// Initialization
	initContent string
}

// New creates a new Engine with the given options.
func New(opts ...Option) *Engine {
	e := &Engine{
		mode:           ModeEnabled,
		tabWidth:       DefaultTabWidth,
		maxUndoEntries: DefaultMaxUndoEntries,
		log:            logging.Discard(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.id == uuid.Nil {
		e.id = uuid.New()
	}
	e.log = e.log.WithComponent("engine").WithField("engine", e.id.String())

	e.buf = buffer.NewFromString(e.initContent,
		buffer.WithCapacity(utf8.RuneCountInString(e.initContent)))
	e.pos = cursor.Recompute(e.buf.Before(), e.tabWidth)
	e.history = history.New(e.maxUndoEntries)
	e.initContent = ""

	return e
}

// ============================================================================
// Queries
// ============================================================================

// ID returns the engine's identifier.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// Content returns the full document text.
func (e *Engine) Content() string {
	return e.buf.Text()
}

// CursorPosition returns the cursor's column and line.
func (e *Engine) CursorPosition() (column, line int) {
	return e.pos.Column, e.pos.Line
}

// Position returns the cursor position as a value.
func (e *Engine) Position() Position {
	return e.pos
}

// Offset returns the cursor as a character offset into Content.
func (e *Engine) Offset() int {
	return e.buf.Offset()
}

// Len returns the number of characters in the document.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// IsEmpty returns true if the document has no characters.
func (e *Engine) IsEmpty() bool {
	return e.buf.IsEmpty()
}

// Rows returns the extent of every line as character offsets into Content.
func (e *Engine) Rows() []Row {
	return e.buf.Rows()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// TabWidth returns the number of columns a tab occupies.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// Validate recomputes the cursor position from the text before the cursor
// and reports ErrCursorDrift if the cached position disagrees.
func (e *Engine) Validate() error {
	want := cursor.Recompute(e.buf.Before(), e.tabWidth)
	if want != e.pos {
		return fmt.Errorf("%w: cached %v, derived %v", ErrCursorDrift, e.pos, want)
	}
	return nil
}

// ============================================================================
// Mode
// ============================================================================

// Enable accepts mutating operations again.
func (e *Engine) Enable() {
	e.setMode(ModeEnabled)
}

// Disable turns every mutating operation into a no-op.
func (e *Engine) Disable() {
	e.setMode(ModeDisabled)
}

// IsEnabled returns true if mutating operations are accepted.
func (e *Engine) IsEnabled() bool {
	return e.mode == ModeEnabled
}

// Mode returns the current mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

func (e *Engine) setMode(m Mode) {
	if e.mode == m {
		return
	}
	e.mode = m
	e.log.Debug("mode changed", "mode", m.String())
}

// mutable is checked once at the top of every mutating entry point.
func (e *Engine) mutable(op string) bool {
	if e.mode == ModeEnabled {
		return true
	}
	e.log.Debug("operation rejected", "op", op, "mode", e.mode.String())
	return false
}

// ============================================================================
// Undo History
// ============================================================================

// CanUndo returns true if undo is available.
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// UndoCount returns the number of undo records.
func (e *Engine) UndoCount() int {
	return e.history.Len()
}

// UndoInfo returns a summary of every undo record, oldest first.
func (e *Engine) UndoInfo() []HistoryInfo {
	return e.history.Info()
}

// ClearHistory removes all undo records.
func (e *Engine) ClearHistory() {
	e.history.Clear()
}

// MaxUndoEntries returns the undo record bound.
func (e *Engine) MaxUndoEntries() int {
	return e.history.MaxEntries()
}

// SetMaxUndoEntries changes the undo record bound. Non-positive values
// restore the default. Records beyond the new bound are dropped oldest
// first.
func (e *Engine) SetMaxUndoEntries(max int) {
	e.history.SetMaxEntries(max)
	e.maxUndoEntries = e.history.MaxEntries()
	e.log.Debug("undo bound changed", "max", e.maxUndoEntries, "records", e.history.Len())
}
