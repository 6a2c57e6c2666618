// Package view draws an engine's text onto a tcell screen.
//
// The view keeps the cursor visible by scrolling, numbers lines in a
// gutter, and colors text with a syntax.Syntax. It only reads from the
// engine; all editing goes through the input package.
package view

import (
	"strconv"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/codearea/internal/syntax"
)

// Source is the read side of an editing engine.
// *engine.Engine satisfies it.
type Source interface {
	Content() string
	CursorPosition() (column, line int)
	TabWidth() int
}

// Styles used when drawing.
var (
	StyleText        = tcell.StyleDefault
	StyleGutter      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	StyleGutterFocus = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// minGutterDigits is the narrowest line number column.
const minGutterDigits = 3

// View renders a Source within the full screen.
type View struct {
	mu          sync.RWMutex
	syntax      syntax.Syntax
	lineNumbers bool

	// Scroll offsets: first visible line and first visible display cell.
	top  int
	left int
}

// Option configures a View.
type Option func(*View)

// WithSyntax sets the initial highlighting rules.
func WithSyntax(s syntax.Syntax) Option {
	return func(v *View) {
		v.syntax = s
	}
}

// WithLineNumbers enables or disables the line number gutter.
func WithLineNumbers(enabled bool) Option {
	return func(v *View) {
		v.lineNumbers = enabled
	}
}

// New creates a view. Line numbers are shown by default.
func New(opts ...Option) *View {
	v := &View{
		syntax:      syntax.New(),
		lineNumbers: true,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// SetSyntax replaces the highlighting rules. Safe to call from another
// goroutine, such as a config reload handler.
func (v *View) SetSyntax(s syntax.Syntax) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.syntax = s
}

// Syntax returns the current highlighting rules.
func (v *View) Syntax() syntax.Syntax {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.syntax
}

// Scroll returns the first visible line and display cell.
func (v *View) Scroll() (top, left int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.top, v.left
}

// GutterWidth returns the gutter width in cells for a document with
// lineCount lines, including the separating space.
func (v *View) GutterWidth(lineCount int) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.gutterWidth(lineCount)
}

func (v *View) gutterWidth(lineCount int) int {
	if !v.lineNumbers {
		return 0
	}
	return max(len(strconv.Itoa(lineCount)), minGutterDigits) + 1
}

// Draw renders src onto screen and places the terminal cursor.
// It does not call screen.Show.
func (v *View) Draw(screen tcell.Screen, src Source) {
	v.mu.Lock()
	defer v.mu.Unlock()

	lines := splitLines(src.Content())
	col, line := src.CursorPosition()
	tabWidth := src.TabWidth()

	width, height := screen.Size()
	gutter := v.gutterWidth(len(lines))
	textWidth := width - gutter

	screen.Clear()
	if textWidth <= 0 || height <= 0 {
		screen.HideCursor()
		return
	}

	var cursorX int
	if line < len(lines) {
		cursorX = displayColumn(lines[line], col, tabWidth)
	}
	v.scrollTo(line, cursorX, textWidth, height)

	for y := 0; y < height; y++ {
		idx := v.top + y
		if idx >= len(lines) {
			break
		}
		if gutter > 0 {
			v.drawGutter(screen, y, idx, gutter, idx == line)
		}
		v.drawLine(screen, y, gutter, textWidth, lines[idx], tabWidth)
	}

	screen.ShowCursor(gutter+cursorX-v.left, line-v.top)
}

// scrollTo moves the window the minimum amount to contain the cursor cell.
func (v *View) scrollTo(line, x, width, height int) {
	if line < v.top {
		v.top = line
	} else if line >= v.top+height {
		v.top = line - height + 1
	}
	if x < v.left {
		v.left = x
	} else if x >= v.left+width {
		v.left = x - width + 1
	}
}

func (v *View) drawGutter(screen tcell.Screen, y, idx, gutter int, current bool) {
	style := StyleGutter
	if current {
		style = StyleGutterFocus
	}
	num := strconv.Itoa(idx + 1)
	pad := gutter - 1 - len(num)
	for i, r := range strings.Repeat(" ", max(pad, 0)) + num {
		screen.SetContent(i, y, r, nil, style)
	}
}

func (v *View) drawLine(screen tcell.Screen, y, x0, width int, line []rune, tabWidth int) {
	colors := v.colors(line)

	x := 0
	for i, r := range line {
		style := StyleText
		if c := colors[i]; c != tcell.ColorDefault {
			style = style.Foreground(c)
		}

		if r == '\t' {
			for n := 0; n < tabWidth; n++ {
				v.setCell(screen, x0, width, x+n, y, ' ', style)
			}
			x += tabWidth
			continue
		}

		w := cellWidth(r)
		if x >= v.left && x+w <= v.left+width {
			screen.SetContent(x0+x-v.left, y, r, nil, style)
		}
		x += w
		if x >= v.left+width {
			return
		}
	}
}

func (v *View) setCell(screen tcell.Screen, x0, width, x, y int, r rune, style tcell.Style) {
	if x < v.left || x >= v.left+width {
		return
	}
	screen.SetContent(x0+x-v.left, y, r, nil, style)
}

// colors returns the foreground color of each rune in line.
func (v *View) colors(line []rune) []tcell.Color {
	colors := make([]tcell.Color, len(line))
	for _, span := range v.syntax.Spans(line) {
		for i := span.Start; i < span.End; i++ {
			colors[i] = span.Color
		}
	}
	return colors
}

// displayColumn converts an engine column on line into a display cell
// offset. Engine columns count every non-tab character as one; the screen
// gives wide characters two cells.
func displayColumn(line []rune, col, tabWidth int) int {
	engineCol, x := 0, 0
	for _, r := range line {
		if engineCol >= col {
			break
		}
		if r == '\t' {
			engineCol += tabWidth
			x += tabWidth
			continue
		}
		engineCol++
		x += cellWidth(r)
	}
	return x
}

func cellWidth(r rune) int {
	return max(runewidth.RuneWidth(r), 1)
}

func splitLines(content string) [][]rune {
	parts := strings.Split(content, "\n")
	lines := make([][]rune, len(parts))
	for i, p := range parts {
		lines[i] = []rune(p)
	}
	return lines
}
