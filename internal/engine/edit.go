package engine

import (
	"github.com/dshills/codearea/internal/engine/cursor"
	"github.com/dshills/codearea/internal/engine/history"
)

// Insert types r at the cursor. Tabs and newlines are routed through Tab
// and Newline. Returns false if the engine is disabled.
func (e *Engine) Insert(r rune) bool {
	if !e.mutable("insert") {
		return false
	}
	e.typeRune(r)
	return true
}

// Tab types a tab character, advancing the column by the tab width.
func (e *Engine) Tab() bool {
	if !e.mutable("tab") {
		return false
	}
	e.typeRune('\t')
	return true
}

// Newline types a line break, moving the cursor to column 0 of a new line.
func (e *Engine) Newline() bool {
	if !e.mutable("newline") {
		return false
	}
	e.typeRune('\n')
	return true
}

// InsertString types each character of s in order and returns how many were
// inserted.
func (e *Engine) InsertString(s string) int {
	if !e.mutable("insert_string") {
		return 0
	}
	n := 0
	for _, r := range s {
		e.typeRune(r)
		n++
	}
	return n
}

func (e *Engine) typeRune(r rune) {
	e.buf.Push(r)
	e.pos = e.pos.Advance(r, e.tabWidth)
	e.record(history.Typed, r)
}

// EraseSymbol removes the character before the cursor.
// Returns false if there was nothing to erase.
func (e *Engine) EraseSymbol() bool {
	if !e.mutable("erase_symbol") {
		return false
	}
	_, ok := e.erase()
	return ok
}

// EraseLine erases characters before the cursor until a newline has been
// erased or the document start is reached. Returns the number erased.
func (e *Engine) EraseLine() int {
	if !e.mutable("erase_line") {
		return 0
	}
	n := 0
	for {
		r, ok := e.erase()
		if !ok {
			break
		}
		n++
		if r == '\n' {
			break
		}
	}
	return n
}

func (e *Engine) erase() (rune, bool) {
	r, ok := e.buf.Pop()
	if !ok {
		return 0, false
	}
	e.pos = e.pos.Retreat(r, e.tabWidth, e.lineWidth)
	e.record(history.Erased, r)
	return r, true
}

// lineWidth measures the line the cursor sits on, from its start to the
// cursor.
func (e *Engine) lineWidth() int {
	return cursor.Width(e.buf.CurrentLine(), e.tabWidth)
}

func (e *Engine) record(kind history.Kind, r rune) {
	pruned := e.history.Pruned()
	switch kind {
	case history.Typed:
		e.history.Typed(r)
	case history.Erased:
		e.history.Erased(r)
	}
	if dropped := e.history.Pruned() - pruned; dropped > 0 {
		e.log.Debug("history pruned", "dropped", dropped, "max", e.history.MaxEntries())
	}
}

// Undo reverts the most recent history record.
//
// An erased run is reinserted at the cursor in its original reading order
// with the cursor left after it. A typed run removes that many characters
// before the cursor. Undo records nothing itself, and the next edit starts
// a fresh record. Returns false if there was nothing to undo.
func (e *Engine) Undo() bool {
	if !e.mutable("undo") {
		return false
	}

	rec, ok := e.history.Pop()
	if !ok {
		return false
	}

	switch rec.Kind {
	case history.Erased:
		for _, r := range rec.Restored() {
			e.buf.Push(r)
			e.pos = e.pos.Advance(r, e.tabWidth)
		}
	case history.Typed:
		for i := 0; i < rec.Len(); i++ {
			r, ok := e.buf.Pop()
			if !ok {
				break
			}
			e.pos = e.pos.Retreat(r, e.tabWidth, e.lineWidth)
		}
	}

	e.log.Debug("undo applied", "kind", rec.Kind.String(), "length", rec.Len())
	return true
}
