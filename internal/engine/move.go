package engine

import "github.com/dshills/codearea/internal/engine/cursor"

// MoveLeft moves the cursor one character to the left.
// Returns false at the start of the document.
func (e *Engine) MoveLeft() bool {
	if !e.mutable("move_left") {
		return false
	}
	return e.moveLeft()
}

// MoveRight moves the cursor one character to the right.
// Returns false at the end of the document.
func (e *Engine) MoveRight() bool {
	if !e.mutable("move_right") {
		return false
	}
	return e.moveRight()
}

func (e *Engine) moveLeft() bool {
	r, ok := e.buf.ShiftLeft()
	if !ok {
		return false
	}
	e.pos = e.pos.Retreat(r, e.tabWidth, e.lineWidth)
	return true
}

func (e *Engine) moveRight() bool {
	r, ok := e.buf.ShiftRight()
	if !ok {
		return false
	}
	e.pos = e.pos.Advance(r, e.tabWidth)
	return true
}

// JumpToLineStart moves the cursor to the start of its line and returns the
// number of characters crossed.
func (e *Engine) JumpToLineStart() int {
	if !e.mutable("jump_to_line_start") {
		return 0
	}
	return e.jumpToLineStart()
}

// JumpToLineEnd moves the cursor to the end of its line, before the newline,
// and returns the number of characters crossed.
func (e *Engine) JumpToLineEnd() int {
	if !e.mutable("jump_to_line_end") {
		return 0
	}
	return e.jumpToLineEnd()
}

func (e *Engine) jumpToLineStart() int {
	n := 0
	for {
		r, ok := e.buf.PeekBefore()
		if !ok || r == '\n' {
			return n
		}
		e.moveLeft()
		n++
	}
}

func (e *Engine) jumpToLineEnd() int {
	n := 0
	for {
		r, ok := e.buf.PeekAfter()
		if !ok || r == '\n' {
			return n
		}
		e.moveRight()
		n++
	}
}

// Up moves the cursor to the previous line, keeping its column when the
// line is long enough and otherwise clamping to the line's width. A tab
// that would straddle the column is not crossed. Returns false on the first
// line.
func (e *Engine) Up() bool {
	if !e.mutable("up") {
		return false
	}
	if e.pos.Line == 0 {
		return false
	}

	col := e.pos.Column
	e.jumpToLineStart()
	e.moveLeft()

	// Now at the end of the previous line; back off to the column.
	for e.pos.Column > col {
		e.moveLeft()
	}
	return true
}

// Down moves the cursor to the next line, keeping its column when the line
// is long enough and otherwise clamping to the line's width. Returns false
// on the last line.
func (e *Engine) Down() bool {
	if !e.mutable("down") {
		return false
	}
	if e.buf.IndexAfter('\n') < 0 {
		return false
	}

	col := e.pos.Column
	e.jumpToLineEnd()
	e.moveRight()

	// Now at the start of the next line; advance up to the column.
	for {
		r, ok := e.buf.PeekAfter()
		if !ok || r == '\n' || e.pos.Column+cursor.RuneWidth(r, e.tabWidth) > col {
			break
		}
		e.moveRight()
	}
	return true
}

// BeginningOfDocument moves the cursor to the start of the document and
// returns the number of characters crossed.
func (e *Engine) BeginningOfDocument() int {
	if !e.mutable("beginning_of_document") {
		return 0
	}
	n := 0
	for e.moveLeft() {
		n++
	}
	return n
}

// EndOfDocument moves the cursor to the end of the document and returns the
// number of characters crossed.
func (e *Engine) EndOfDocument() int {
	if !e.mutable("end_of_document") {
		return 0
	}
	n := 0
	for e.moveRight() {
		n++
	}
	return n
}
