package engine

import (
	"github.com/google/uuid"

	"github.com/dshills/codearea/internal/engine/cursor"
	"github.com/dshills/codearea/internal/engine/history"
	"github.com/dshills/codearea/internal/logging"
)

// Default configuration values.
const (
	DefaultTabWidth       = cursor.DefaultTabWidth
	DefaultMaxUndoEntries = history.DefaultMaxEntries
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
// The content is not recorded in the undo history and the cursor starts
// after it.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets the number of columns a tab occupies.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithMaxUndoEntries sets the maximum number of undo records.
func WithMaxUndoEntries(max int) Option {
	return func(e *Engine) {
		if max > 0 {
			e.maxUndoEntries = max
		}
	}
}

// WithDisabled creates an engine that starts disabled.
// Mutating operations are no-ops until Enable is called.
func WithDisabled() Option {
	return func(e *Engine) {
		e.mode = ModeDisabled
	}
}

// WithLogger sets the logger used for debug diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithID sets the engine's identifier, used to tag log records.
func WithID(id uuid.UUID) Option {
	return func(e *Engine) {
		e.id = id
	}
}
