// Package engine provides the editable-text engine behind a multiline code
// widget.
//
// The engine owns the document characters, the edit cursor and a bounded
// undo log. A presentation layer translates each input event into one engine
// call and then re-renders from Content, CursorPosition and Rows. The engine
// never calls back into the presentation layer.
//
// # Architecture
//
// The engine is built on several sub-packages:
//
//   - buffer: dual-partition gap buffer split at the cursor
//   - cursor: visual column/line arithmetic with fixed-width tabs
//   - history: coalesced undo records (typed and erased runs)
//
// # Basic Usage
//
//	e := engine.New()
//
//	e.Insert('a')
//	e.Insert('b')
//	e.Newline()
//	e.Tab()
//
//	e.Content()        // "ab\n\t"
//	e.CursorPosition() // 4, 1
//
// # Totality
//
// Every operation returns a result instead of failing. Boundary conditions
// such as erasing at the document start, moving past the end, undoing with
// an empty history, or calling any mutating operation while disabled are
// no-ops that report that nothing happened:
//
//	e := engine.New()
//	e.MoveLeft()    // false
//	e.EraseSymbol() // false
//	e.Undo()        // false
//
// # Undo
//
// Consecutive edits of the same kind coalesce into one record, so a burst of
// typing or a burst of backspacing undoes in one step:
//
//	e.InsertString("hello")
//	e.EraseSymbol()
//	e.EraseSymbol()
//	e.Undo() // restores "lo"
//	e.Undo() // removes "hello"
//
// There is no redo. An edit made after an undo always starts a new record.
//
// # Vertical Movement
//
// Up and Down keep the cursor's column when the target line is long enough
// and clamp to the target line's width otherwise. They do not remember a
// preferred column across calls.
//
// # Enabled Mode
//
// Disable turns every mutating operation, including navigation and undo,
// into a no-op. Queries keep working. Enable restores normal operation.
//
// # Thread Safety
//
// Engine is not safe for concurrent use. Operations run to completion
// synchronously and a host embedding the engine in an event loop must
// serialize calls.
package engine
