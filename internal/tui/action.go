package tui

// Action is the result of handling a single key press, shared by every
// screen so the top-level App can dispatch on one type regardless of
// which widget produced it.
type Action int

const (
	None Action = iota
	Quit
	StartRecord
	StartManualAdd
	AddReading
	Cancel
)
