// Package buffer provides the dual-partition text store used by the editor
// engine.
//
// The document is split at the edit cursor. Characters before the cursor are
// held in reading order; characters after the cursor are held in reverse
// reading order, so that the character nearest the cursor is always at the
// tail of its slice:
//
//	text:   h e l l o | w o r l d
//	before: [h e l l o]
//	after:  [d l r o w]
//
// Inserting, erasing and moving by one character are tail push/pop
// operations on one or both slices and run in amortized O(1). Reading the
// full text concatenates before with the reversed after partition.
//
// Basic usage:
//
//	buf := buffer.New()
//	buf.Push('a')
//	buf.Push('b')
//	buf.ShiftLeft()  // cursor between 'a' and 'b'
//	buf.Text()       // "ab"
//
// The buffer knows nothing about columns, lines or tabs; cursor arithmetic
// lives in the cursor package and history in the history package.
//
// Buffer is not safe for concurrent use. The owning engine serializes access.
package buffer
