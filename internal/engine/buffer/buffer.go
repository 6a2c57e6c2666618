package buffer

import (
	"strings"
)

// Buffer holds the document as two partitions split at the cursor.
type Buffer struct {
	before []rune // reading order
	after  []rune // reverse reading order
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer holding text with the cursor at the end.
func NewFromString(text string, opts ...Option) *Buffer {
	return New(append(opts, WithText(text))...)
}

// Push appends r immediately before the cursor.
func (b *Buffer) Push(r rune) {
	b.before = append(b.before, r)
}

// Pop removes and returns the character immediately before the cursor.
// Returns false if the cursor is at the start of the document.
func (b *Buffer) Pop() (rune, bool) {
	n := len(b.before)
	if n == 0 {
		return 0, false
	}
	r := b.before[n-1]
	b.before = b.before[:n-1]
	return r, true
}

// ShiftLeft moves the cursor one character to the left and returns the
// character it crossed. Returns false at the start of the document.
func (b *Buffer) ShiftLeft() (rune, bool) {
	r, ok := b.Pop()
	if !ok {
		return 0, false
	}
	b.after = append(b.after, r)
	return r, true
}

// ShiftRight moves the cursor one character to the right and returns the
// character it crossed. Returns false at the end of the document.
func (b *Buffer) ShiftRight() (rune, bool) {
	n := len(b.after)
	if n == 0 {
		return 0, false
	}
	r := b.after[n-1]
	b.after = b.after[:n-1]
	b.before = append(b.before, r)
	return r, true
}

// PeekBefore returns the character immediately before the cursor.
func (b *Buffer) PeekBefore() (rune, bool) {
	if len(b.before) == 0 {
		return 0, false
	}
	return b.before[len(b.before)-1], true
}

// PeekAfter returns the character immediately after the cursor.
func (b *Buffer) PeekAfter() (rune, bool) {
	if len(b.after) == 0 {
		return 0, false
	}
	return b.after[len(b.after)-1], true
}

// Before returns a copy of the characters before the cursor in reading order.
func (b *Buffer) Before() []rune {
	out := make([]rune, len(b.before))
	copy(out, b.before)
	return out
}

// After returns a copy of the characters after the cursor in reading order.
func (b *Buffer) After() []rune {
	out := make([]rune, len(b.after))
	for i, r := range b.after {
		out[len(b.after)-1-i] = r
	}
	return out
}

// Len returns the total number of characters in the document.
func (b *Buffer) Len() int { return len(b.before) + len(b.after) }

// IsEmpty returns true if the document has no characters.
func (b *Buffer) IsEmpty() bool { return b.Len() == 0 }

// Offset returns the cursor position as a character offset from the start.
func (b *Buffer) Offset() int { return len(b.before) }

// Text returns the full document: before followed by the reversed after
// partition.
func (b *Buffer) Text() string {
	var sb strings.Builder
	sb.Grow(b.Len())
	for _, r := range b.before {
		sb.WriteRune(r)
	}
	for i := len(b.after) - 1; i >= 0; i-- {
		sb.WriteRune(b.after[i])
	}
	return sb.String()
}

// RuneAt returns the character at document offset i.
func (b *Buffer) RuneAt(i int) (rune, bool) {
	if i < 0 || i >= b.Len() {
		return 0, false
	}
	if i < len(b.before) {
		return b.before[i], true
	}
	return b.after[len(b.after)-1-(i-len(b.before))], true
}

// Clear removes all characters.
func (b *Buffer) Clear() {
	b.before = b.before[:0]
	b.after = b.after[:0]
}

// CurrentLine returns a copy of the characters between the last newline
// before the cursor (or the document start) and the cursor.
func (b *Buffer) CurrentLine() []rune {
	start := len(b.before)
	for start > 0 && b.before[start-1] != '\n' {
		start--
	}
	out := make([]rune, len(b.before)-start)
	copy(out, b.before[start:])
	return out
}

// IndexAfter returns the distance from the cursor to the first occurrence of
// r after it, or -1 if r does not occur after the cursor.
func (b *Buffer) IndexAfter(r rune) int {
	for i := len(b.after) - 1; i >= 0; i-- {
		if b.after[i] == r {
			return len(b.after) - 1 - i
		}
	}
	return -1
}
