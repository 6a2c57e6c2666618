package history

import (
	"time"
)

// DefaultMaxEntries is the record bound used when none is given.
const DefaultMaxEntries = 1000

// Log is a bounded stack of coalesced edit records.
// The head (most recent record) is the last element.
type Log struct {
	entries []*Record

	// sealed blocks coalescing into the head until the next push.
	sealed bool

	maxEntries int
	pruned     int
}

// New creates an empty log holding at most maxEntries records.
func New(maxEntries int) *Log {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Log{maxEntries: maxEntries}
}

// Typed records an inserted character.
// Returns true if a new record was started.
func (l *Log) Typed(r rune) bool {
	return l.record(Typed, r)
}

// Erased records a removed character.
// Returns true if a new record was started.
func (l *Log) Erased(r rune) bool {
	return l.record(Erased, r)
}

func (l *Log) record(kind Kind, r rune) bool {
	if head := l.head(); head != nil && head.Kind == kind && !l.sealed {
		head.Text = append(head.Text, r)
		return false
	}

	l.entries = append(l.entries, &Record{
		Kind:      kind,
		Text:      []rune{r},
		Timestamp: time.Now(),
	})
	l.sealed = false
	l.enforceLimit()
	return true
}

func (l *Log) enforceLimit() {
	if len(l.entries) <= l.maxEntries {
		return
	}
	excess := len(l.entries) - l.maxEntries
	for i := 0; i < excess; i++ {
		l.entries[i] = nil
	}
	l.entries = l.entries[excess:]
	l.pruned += excess
}

func (l *Log) head() *Record {
	if len(l.entries) == 0 {
		return nil
	}
	return l.entries[len(l.entries)-1]
}

// Pop removes and returns the head record and seals the log.
// Returns false if the log is empty.
func (l *Log) Pop() (Record, bool) {
	n := len(l.entries)
	if n == 0 {
		return Record{}, false
	}
	rec := l.entries[n-1]
	l.entries[n-1] = nil
	l.entries = l.entries[:n-1]
	l.Seal()
	return *rec, true
}

// Peek returns info about the head record without removing it.
func (l *Log) Peek() (Info, bool) {
	head := l.head()
	if head == nil {
		return Info{}, false
	}
	return head.info(), true
}

// Seal stops the next edit from coalescing into the current head.
func (l *Log) Seal() {
	l.sealed = true
}

// IsSealed returns true if the next edit will start a new record.
func (l *Log) IsSealed() bool {
	return l.sealed
}

// CanUndo returns true if there is a record to pop.
func (l *Log) CanUndo() bool {
	return len(l.entries) > 0
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.entries)
}

// Info returns a summary of every record, oldest first.
func (l *Log) Info() []Info {
	result := make([]Info, len(l.entries))
	for i, rec := range l.entries {
		result[i] = rec.info()
	}
	return result
}

// Clear removes all records.
func (l *Log) Clear() {
	l.entries = nil
	l.sealed = false
}

// Pruned returns how many records have been dropped to honor the bound.
func (l *Log) Pruned() int {
	return l.pruned
}

// SetMaxEntries changes the record bound.
// If the log is larger, the oldest records are dropped.
func (l *Log) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	l.maxEntries = max
	l.enforceLimit()
}

// MaxEntries returns the record bound.
func (l *Log) MaxEntries() int {
	return l.maxEntries
}
