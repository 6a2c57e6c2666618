package history

import (
	"fmt"
	"time"
)

// Kind tags a history record.
type Kind uint8

const (
	// Typed records characters inserted at the cursor.
	Typed Kind = iota
	// Erased records characters removed before the cursor.
	Erased
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Typed:
		return "typed"
	case Erased:
		return "erased"
	default:
		return "unknown"
	}
}

// Record is one coalesced run of same-kind edits.
type Record struct {
	Kind Kind

	// Text holds the characters in the order they were produced.
	// For Erased records that is removal order, the reverse of on-screen order.
	Text []rune

	// Timestamp is when the run started.
	Timestamp time.Time
}

// Len returns the number of characters in the run.
func (r Record) Len() int { return len(r.Text) }

// Restored returns the text an undo reinserts for an Erased record, in
// reading order. For Typed records it returns the text unchanged.
func (r Record) Restored() []rune {
	out := make([]rune, len(r.Text))
	if r.Kind != Erased {
		copy(out, r.Text)
		return out
	}
	for i, c := range r.Text {
		out[len(r.Text)-1-i] = c
	}
	return out
}

// Description returns a human-readable description of the record.
func (r Record) Description() string {
	switch r.Kind {
	case Typed:
		return fmt.Sprintf("Type %q", string(r.Text))
	case Erased:
		return fmt.Sprintf("Erase %q", string(r.Restored()))
	default:
		return "Unknown"
	}
}

// Info summarizes a record for display.
type Info struct {
	Kind        Kind
	Length      int
	Description string
	Timestamp   time.Time
}

func (r Record) info() Info {
	return Info{
		Kind:        r.Kind,
		Length:      len(r.Text),
		Description: r.Description(),
		Timestamp:   r.Timestamp,
	}
}
