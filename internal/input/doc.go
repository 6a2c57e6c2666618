// Package input translates terminal key events into engine operations.
//
// Each recognised key press maps to exactly one engine call:
//
//	Char            Insert
//	Tab             Tab
//	Enter           Newline
//	Backspace       EraseSymbol
//	Ctrl+Backspace  EraseLine
//	Home, Ctrl+Left       JumpToLineStart
//	End, Ctrl+Right       JumpToLineEnd
//	Ctrl+Up, Ctrl+Home    BeginningOfDocument
//	Ctrl+Down, Ctrl+End   EndOfDocument
//	Left, Right, Up, Down MoveLeft, MoveRight, Up, Down
//	Ctrl+Z          Undo
//
// A recognised key is reported as Consumed even when the engine rejects it,
// for example because it is disabled or the cursor is already at a
// boundary. Anything else is Ignored and left for the caller.
//
// # Usage
//
//	h := input.NewHandler(eng)
//	if ev, ok := tev.(*tcell.EventKey); ok {
//	    if h.HandleTcell(ev) == input.Consumed {
//	        redraw()
//	    }
//	}
package input
