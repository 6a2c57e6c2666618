package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a key pressed.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyEscape
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "BS",
	KeyDelete:    "Del",
	KeyEscape:    "Esc",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyHome:      "Home",
	KeyEnd:       "End",
}

// String returns the key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModShift indicates the Shift key.
	ModShift Modifier = 1 << iota

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModMeta indicates the Meta key.
	ModMeta
)

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Event represents a single key press.
type Event struct {
	Key       Key
	Rune      rune
	Modifiers Modifier
}

// RuneEvent creates an event for a typed character.
func RuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// SpecialEvent creates an event for a non-character key.
func SpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods}
}

// ctrl reports whether Control is held. Shift is ignored because for
// characters it is part of the character itself.
func (e Event) ctrl() bool {
	return e.Modifiers.Has(ModCtrl)
}

// plain reports whether no command modifier is held.
func (e Event) plain() bool {
	return !e.Modifiers.Has(ModCtrl | ModAlt | ModMeta)
}

// String returns a readable form such as "a", "C-z", "C-Left".
func (e Event) String() string {
	var parts []string
	if e.Modifiers.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if e.Modifiers.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if e.Modifiers.Has(ModMeta) {
		parts = append(parts, "M")
	}
	if e.Modifiers.Has(ModShift) && e.Key != KeyRune {
		parts = append(parts, "S")
	}

	name := e.Key.String()
	if e.Key == KeyRune {
		name = string(e.Rune)
		if e.Rune == ' ' {
			name = "Space"
		}
	}
	return strings.Join(append(parts, name), "-")
}

// FromTcell converts a tcell key event.
//
// Control-letter codes (tcell.KeyCtrlA..KeyCtrlZ) become the lower-case
// letter with ModCtrl, except those that double as Tab, Enter and Backspace.
func FromTcell(ev *tcell.EventKey) Event {
	mods := convertMod(ev.Modifiers())

	switch k := ev.Key(); k {
	case tcell.KeyRune:
		return RuneEvent(ev.Rune(), mods)
	case tcell.KeyEnter:
		return SpecialEvent(KeyEnter, mods)
	case tcell.KeyTab:
		return SpecialEvent(KeyTab, mods)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return SpecialEvent(KeyBackspace, mods)
	case tcell.KeyDelete:
		return SpecialEvent(KeyDelete, mods)
	case tcell.KeyEscape:
		return SpecialEvent(KeyEscape, mods)
	case tcell.KeyLeft:
		return SpecialEvent(KeyLeft, mods)
	case tcell.KeyRight:
		return SpecialEvent(KeyRight, mods)
	case tcell.KeyUp:
		return SpecialEvent(KeyUp, mods)
	case tcell.KeyDown:
		return SpecialEvent(KeyDown, mods)
	case tcell.KeyHome:
		return SpecialEvent(KeyHome, mods)
	case tcell.KeyEnd:
		return SpecialEvent(KeyEnd, mods)
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return RuneEvent('a'+rune(k-tcell.KeyCtrlA), mods|ModCtrl)
		}
		return SpecialEvent(KeyNone, mods)
	}
}

func convertMod(m tcell.ModMask) Modifier {
	var mods Modifier
	if m&tcell.ModShift != 0 {
		mods |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= ModMeta
	}
	return mods
}
