package cursor

import "fmt"

// DefaultTabWidth is the number of columns a tab occupies.
const DefaultTabWidth = 4

// Position is the cursor's visual column and line.
// Both are 0-indexed.
type Position struct {
	Column int
	Line   int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Column, p.Line)
}

// RuneWidth returns the number of columns r occupies.
// Newlines occupy none: they end the line instead.
func RuneWidth(r rune, tabWidth int) int {
	switch r {
	case '\n':
		return 0
	case '\t':
		return tabWidth
	default:
		return 1
	}
}

// Width returns the visual width of a run of characters that contains no
// newline.
func Width(line []rune, tabWidth int) int {
	w := 0
	for _, r := range line {
		w += RuneWidth(r, tabWidth)
	}
	return w
}

// Advance returns the position after crossing r to the right.
func (p Position) Advance(r rune, tabWidth int) Position {
	if r == '\n' {
		return Position{Column: 0, Line: p.Line + 1}
	}
	return Position{Column: p.Column + RuneWidth(r, tabWidth), Line: p.Line}
}

// Retreat returns the position after crossing r to the left.
// lineWidth is called only when r is a newline and must report the width of
// the line the cursor re-enters, measured from its start to the cursor.
func (p Position) Retreat(r rune, tabWidth int, lineWidth func() int) Position {
	if r == '\n' {
		line := p.Line - 1
		if line < 0 {
			line = 0
		}
		return Position{Column: lineWidth(), Line: line}
	}
	col := p.Column - RuneWidth(r, tabWidth)
	if col < 0 {
		col = 0
	}
	return Position{Column: col, Line: p.Line}
}

// Recompute derives the position at the end of before by scanning backward
// to the previous newline and counting the newlines ahead of it.
func Recompute(before []rune, tabWidth int) Position {
	start := len(before)
	for start > 0 && before[start-1] != '\n' {
		start--
	}
	line := 0
	for _, r := range before[:start] {
		if r == '\n' {
			line++
		}
	}
	return Position{Column: Width(before[start:], tabWidth), Line: line}
}
