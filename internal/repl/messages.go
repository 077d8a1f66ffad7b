package repl

import "time"

// transcriptEntry is one evaluated line shown in the scrollback
type transcriptEntry struct {
	Input     string
	Response  Response
	Timestamp time.Time
	Duration  time.Duration
}

// Message types for tea.Cmd async operations

// evalResultMsg is sent when a line has been evaluated
type evalResultMsg struct {
	entry   transcriptEntry
	options Options
}

// historyLoadedMsg carries the inputs of earlier sessions for Up/Down
type historyLoadedMsg struct {
	inputs []string
}
