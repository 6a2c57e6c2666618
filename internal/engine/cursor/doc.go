// Package cursor provides the visual line/column arithmetic for the edit
// cursor.
//
// A Position is an immutable value. Column counts visual cells since the
// last newline, where a tab occupies a fixed number of cells (the tab width)
// regardless of where it sits on the line, and every other character
// occupies one. Line counts the newlines before the cursor.
//
// Positions are maintained incrementally as the cursor crosses characters:
//
//	p := cursor.Position{}
//	p = p.Advance('a', 4)  // (1:0)
//	p = p.Advance('\t', 4) // (5:0)
//	p = p.Advance('\n', 4) // (0:1)
//
// Crossing a newline backwards needs the width of the line being re-entered,
// which the caller supplies lazily through Retreat. Recompute derives a
// Position from scratch and is the reference the incremental form must
// always agree with.
package cursor
