package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/codearea/internal/logging"
)

// Result reports whether an event was handled.
type Result uint8

const (
	// Ignored means the event has no binding and should be handled
	// elsewhere.
	Ignored Result = iota
	// Consumed means the event was dispatched to the target.
	Consumed
)

// String returns the result name.
func (r Result) String() string {
	if r == Consumed {
		return "consumed"
	}
	return "ignored"
}

// Target is the set of editing operations key events dispatch to.
// *engine.Engine satisfies it.
type Target interface {
	Insert(r rune) bool
	Tab() bool
	Newline() bool
	EraseSymbol() bool
	EraseLine() int
	MoveLeft() bool
	MoveRight() bool
	Up() bool
	Down() bool
	JumpToLineStart() int
	JumpToLineEnd() int
	BeginningOfDocument() int
	EndOfDocument() int
	Undo() bool
}

// Action is a named operation on a Target.
type Action struct {
	Name string
	Run  func(Target)
}

// binding identifies a non-character key with its Control state.
type binding struct {
	key  Key
	ctrl bool
}

func act(name string, run func(Target)) Action {
	return Action{Name: name, Run: run}
}

var (
	actionTab         = act("tab", func(t Target) { t.Tab() })
	actionNewline     = act("newline", func(t Target) { t.Newline() })
	actionEraseSymbol = act("erase_symbol", func(t Target) { t.EraseSymbol() })
	actionEraseLine   = act("erase_line", func(t Target) { t.EraseLine() })
	actionLineStart   = act("jump_to_line_start", func(t Target) { t.JumpToLineStart() })
	actionLineEnd     = act("jump_to_line_end", func(t Target) { t.JumpToLineEnd() })
	actionDocStart    = act("beginning_of_document", func(t Target) { t.BeginningOfDocument() })
	actionDocEnd      = act("end_of_document", func(t Target) { t.EndOfDocument() })
	actionLeft        = act("move_left", func(t Target) { t.MoveLeft() })
	actionRight       = act("move_right", func(t Target) { t.MoveRight() })
	actionUp          = act("up", func(t Target) { t.Up() })
	actionDown        = act("down", func(t Target) { t.Down() })
	actionUndo        = act("undo", func(t Target) { t.Undo() })
)

func defaultBindings() map[binding]Action {
	return map[binding]Action{
		{KeyTab, false}:       actionTab,
		{KeyEnter, false}:     actionNewline,
		{KeyBackspace, true}:  actionEraseLine,
		{KeyBackspace, false}: actionEraseSymbol,
		{KeyHome, false}:      actionLineStart,
		{KeyLeft, true}:       actionLineStart,
		{KeyEnd, false}:       actionLineEnd,
		{KeyRight, true}:      actionLineEnd,
		{KeyUp, true}:         actionDocStart,
		{KeyHome, true}:       actionDocStart,
		{KeyDown, true}:       actionDocEnd,
		{KeyEnd, true}:        actionDocEnd,
		{KeyLeft, false}:      actionLeft,
		{KeyRight, false}:     actionRight,
		{KeyUp, false}:        actionUp,
		{KeyDown, false}:      actionDown,
	}
}

// Handler dispatches key events to a Target.
type Handler struct {
	target   Target
	bindings map[binding]Action
	log      *logging.Logger
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger for dispatched actions.
func WithLogger(l *logging.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.log = l
		}
	}
}

// NewHandler creates a handler dispatching to target.
func NewHandler(target Target, opts ...Option) *Handler {
	h := &Handler{
		target:   target,
		bindings: defaultBindings(),
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.WithComponent("input")
	return h
}

// Lookup returns the action bound to ev, if any.
func (h *Handler) Lookup(ev Event) (Action, bool) {
	if ev.Key == KeyRune {
		switch {
		case ev.ctrl() && unicode.ToLower(ev.Rune) == 'z':
			return actionUndo, true
		case ev.plain() && ev.Rune != 0:
			r := ev.Rune
			return act("insert", func(t Target) { t.Insert(r) }), true
		default:
			return Action{}, false
		}
	}

	if ev.Modifiers.Has(ModAlt | ModMeta) {
		return Action{}, false
	}
	a, ok := h.bindings[binding{key: ev.Key, ctrl: ev.ctrl()}]
	return a, ok
}

// Handle dispatches ev and reports whether it was bound.
func (h *Handler) Handle(ev Event) Result {
	a, ok := h.Lookup(ev)
	if !ok {
		return Ignored
	}
	h.log.Debug("key dispatched", "key", ev.String(), "action", a.Name)
	a.Run(h.target)
	return Consumed
}

// HandleTcell converts and dispatches a tcell key event.
func (h *Handler) HandleTcell(ev *tcell.EventKey) Result {
	return h.Handle(FromTcell(ev))
}
