// Package history provides the undo log for the text editor engine.
//
// The log is a stack of coalesced edit records. Each Record is tagged with
// a Kind:
//
//   - Typed: characters inserted at the cursor, in the order typed
//   - Erased: characters removed before the cursor, in removal order
//     (that is, the reverse of their on-screen order)
//
// # Coalescing
//
// Consecutive edits of the same kind extend the head record instead of
// pushing a new one:
//
//	log := history.New(1000)
//	log.Typed('a')
//	log.Typed('b')  // head is Typed("ab")
//	log.Erased('b') // new head Erased("b")
//
// Popping a record seals the log. The next edit always starts a fresh record,
// even when the new head has the same kind, so an undo is never followed by
// an edit that silently merges into older history.
//
// # Bounds
//
// The log keeps at most MaxEntries records. Pushing past the bound drops the
// oldest record. Extending the head never drops anything.
//
// There is no redo stack: popped records are handed to the caller and
// forgotten.
package history
