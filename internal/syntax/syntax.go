// Package syntax describes how a code widget colors its text.
//
// A Syntax maps single characters (symbols such as '+' or '[') and whole
// words (such as "for" or "return") to terminal colors. It is built once
// with chained Add calls and is immutable afterwards: every Add returns a
// new Syntax and leaves the receiver untouched, so a descriptor can be
// shared freely with a renderer.
//
//	s := syntax.New().
//		AddOneColorSymbols([]rune{'+', '-'}, tcell.ColorRed).
//		AddWord("loop", tcell.ColorBlue)
//
// Adding a key that already exists replaces its color.
package syntax

import (
	"maps"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Syntax is an immutable set of symbol and word colors.
type Syntax struct {
	symbols map[rune]tcell.Color
	words   map[string]tcell.Color
}

// New returns an empty Syntax.
func New() Syntax {
	return Syntax{}
}

// AddSymbol returns a copy of s that colors symbol with color.
func (s Syntax) AddSymbol(symbol rune, color tcell.Color) Syntax {
	return s.AddOneColorSymbols([]rune{symbol}, color)
}

// AddWord returns a copy of s that colors word with color.
func (s Syntax) AddWord(word string, color tcell.Color) Syntax {
	return s.AddOneColorWords([]string{word}, color)
}

// AddOneColorSymbols returns a copy of s that colors every symbol with color.
func (s Syntax) AddOneColorSymbols(symbols []rune, color tcell.Color) Syntax {
	next := s.clone()
	for _, r := range symbols {
		next.symbols[r] = color
	}
	return next
}

// AddOneColorWords returns a copy of s that colors every word with color.
func (s Syntax) AddOneColorWords(words []string, color tcell.Color) Syntax {
	next := s.clone()
	for _, w := range words {
		next.words[w] = color
	}
	return next
}

func (s Syntax) clone() Syntax {
	next := Syntax{
		symbols: make(map[rune]tcell.Color, len(s.symbols)+1),
		words:   make(map[string]tcell.Color, len(s.words)+1),
	}
	maps.Copy(next.symbols, s.symbols)
	maps.Copy(next.words, s.words)
	return next
}

// SymbolColor returns the color for symbol.
func (s Syntax) SymbolColor(symbol rune) (tcell.Color, bool) {
	c, ok := s.symbols[symbol]
	return c, ok
}

// WordColor returns the color for word.
func (s Syntax) WordColor(word string) (tcell.Color, bool) {
	c, ok := s.words[word]
	return c, ok
}

// Symbols returns a copy of the symbol colors.
func (s Syntax) Symbols() map[rune]tcell.Color {
	return maps.Clone(s.symbols)
}

// Words returns a copy of the word colors.
func (s Syntax) Words() map[string]tcell.Color {
	return maps.Clone(s.words)
}

// IsEmpty returns true if s colors nothing.
func (s Syntax) IsEmpty() bool {
	return len(s.symbols) == 0 && len(s.words) == 0
}

// Span is a colored run of characters within a line. End is exclusive.
type Span struct {
	Start int
	End   int
	Color tcell.Color
}

// Spans splits line into tokens and returns the colored ones in order.
// Words are maximal runs of letters, digits and underscores; any other
// non-space character is a one-character symbol.
func (s Syntax) Spans(line []rune) []Span {
	var spans []Span
	for i := 0; i < len(line); {
		r := line[i]
		switch {
		case isWordRune(r):
			j := i + 1
			for j < len(line) && isWordRune(line[j]) {
				j++
			}
			if c, ok := s.words[string(line[i:j])]; ok {
				spans = append(spans, Span{Start: i, End: j, Color: c})
			}
			i = j
		default:
			if c, ok := s.symbols[r]; ok {
				spans = append(spans, Span{Start: i, End: i + 1, Color: c})
			}
			i++
		}
	}
	return spans
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
