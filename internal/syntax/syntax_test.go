package syntax

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderChains(t *testing.T) {
	s := New().
		AddSymbol('+', tcell.ColorRed).
		AddOneColorSymbols([]rune{'[', ']'}, tcell.ColorGreen).
		AddWord("for", tcell.ColorBlue).
		AddOneColorWords([]string{"if", "else"}, tcell.ColorYellow)

	c, ok := s.SymbolColor('[')
	require.True(t, ok)
	assert.Equal(t, tcell.ColorGreen, c)

	c, ok = s.WordColor("else")
	require.True(t, ok)
	assert.Equal(t, tcell.ColorYellow, c)

	_, ok = s.SymbolColor('-')
	assert.False(t, ok)
	_, ok = s.WordColor("while")
	assert.False(t, ok)

	assert.Len(t, s.Symbols(), 3)
	assert.Len(t, s.Words(), 3)
	assert.False(t, s.IsEmpty())
	assert.True(t, New().IsEmpty())
}

func TestLastWriteWins(t *testing.T) {
	s := New().
		AddSymbol('+', tcell.ColorRed).
		AddSymbol('+', tcell.ColorBlue).
		AddWord("x", tcell.ColorRed).
		AddOneColorWords([]string{"x"}, tcell.ColorGreen)

	c, _ := s.SymbolColor('+')
	assert.Equal(t, tcell.ColorBlue, c)
	c, _ = s.WordColor("x")
	assert.Equal(t, tcell.ColorGreen, c)
}

func TestAddDoesNotMutateReceiver(t *testing.T) {
	base := New().AddSymbol('+', tcell.ColorRed)
	derived := base.AddSymbol('-', tcell.ColorBlue).AddSymbol('+', tcell.ColorGreen)

	_, ok := base.SymbolColor('-')
	assert.False(t, ok, "base must not see symbols added to a derived syntax")

	c, _ := base.SymbolColor('+')
	assert.Equal(t, tcell.ColorRed, c)
	c, _ = derived.SymbolColor('+')
	assert.Equal(t, tcell.ColorGreen, c)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := New().AddWord("fn", tcell.ColorRed)
	words := s.Words()
	words["fn"] = tcell.ColorBlue
	delete(words, "fn")

	c, ok := s.WordColor("fn")
	require.True(t, ok)
	assert.Equal(t, tcell.ColorRed, c)
}

func TestSpans(t *testing.T) {
	s := New().
		AddOneColorSymbols([]rune{'+', '-'}, tcell.ColorRed).
		AddOneColorWords([]string{"for", "in"}, tcell.ColorBlue)

	spans := s.Spans([]rune("for x in xs: a+-b_for"))

	assert.Equal(t, []Span{
		{Start: 0, End: 3, Color: tcell.ColorBlue},
		{Start: 6, End: 8, Color: tcell.ColorBlue},
		{Start: 14, End: 15, Color: tcell.ColorRed},
		{Start: 15, End: 16, Color: tcell.ColorRed},
	}, spans)
}

func TestSpansEmpty(t *testing.T) {
	assert.Empty(t, New().Spans([]rune("anything + goes")))
	assert.Empty(t, New().AddSymbol('+', tcell.ColorRed).Spans(nil))
}
