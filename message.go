package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// messageTTL is how long a transient message stays on screen before it
// clears itself.
const messageTTL = 3 * time.Second

type messageKind int

const (
	msgInfo messageKind = iota
	msgSuccess
	msgError
)

// transientMessage is the single shared message line: shown immediately,
// cleared after messageTTL, overwritten (not queued) by the next message.
// seq guards against a stale expiry wiping a newer message.
type transientMessage struct {
	text string
	kind messageKind
	seq  int
}

// showMessage replaces the current message and returns the command that
// will clear it after the TTL, unless a newer message has taken over.
func (m *model) showMessage(text string, kind messageKind) tea.Cmd {
	m.msg.seq++
	m.msg.text = text
	m.msg.kind = kind
	seq := m.msg.seq
	return tea.Tick(messageTTL, func(time.Time) tea.Msg {
		return messageExpiredMsg{seq: seq}
	})
}
