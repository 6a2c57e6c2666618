package engine

import "errors"

// Errors reported by engine diagnostics. Editing operations never fail.
var (
	// ErrCursorDrift indicates the cached cursor position disagrees with the
	// position derived from the text before the cursor.
	ErrCursorDrift = errors.New("cursor position drifted from buffer content")
)
