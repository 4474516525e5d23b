// Package ui provides the terminal presentation layer of skelgen: a color
// theme, a progress display, confirmation prompts and markdown rendering.
// Every component degrades to plain line output when the process is not
// attached to a terminal.
package ui

import "errors"

// ErrCancelled indicates the user aborted a prompt.
var ErrCancelled = errors.New("ui: cancelled by user")

// Progress creates progress displays.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// ProgressBar tracks a determinate amount of work.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	Done()
}
