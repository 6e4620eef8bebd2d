package main

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/wordgrid/internal/channel"
	"github.com/jask/wordgrid/internal/protocol"
)

// ---------------------------------------------------------------------------
// Channel plumbing commands
// ---------------------------------------------------------------------------

// waitForSignalCmd blocks on the channel's inbound stream and delivers
// the next signal into the update loop. Update re-arms it after every
// signal, so inbound events are processed one at a time in arrival order.
func waitForSignalCmd(signals <-chan channel.Signal) tea.Cmd {
	return func() tea.Msg {
		return channelSignalMsg{sig: <-signals}
	}
}

// dialCmd establishes the transport off the update loop. The connected
// signal itself arrives on the signal stream; this command only reports
// a dial that never got that far.
func dialCmd(client *channel.Client, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return dialDoneMsg{err: client.Dial(ctx)}
	}
}

// ---------------------------------------------------------------------------
// Outbound commands
// ---------------------------------------------------------------------------
// All sends are fire-and-forget: the reply, if any, arrives later as an
// independent inbound event. A send error (queue full, channel closed)
// goes straight to the transient message line.

func (m *model) sendCreateGame(name string) tea.Cmd {
	return m.sendCommand(protocol.CmdCreateGame, protocol.CreateGamePayload{Name: name})
}

func (m *model) sendJoinGame(roomCode, name string) tea.Cmd {
	return m.sendCommand(protocol.CmdJoinGame, protocol.JoinGamePayload{RoomCode: roomCode, Name: name})
}

func (m *model) sendSubmitWord(word string) tea.Cmd {
	return m.sendCommand(protocol.CmdSubmitWord, protocol.SubmitWordPayload{Word: word})
}

func (m *model) sendRestartGame() tea.Cmd {
	return m.sendCommand(protocol.CmdRestartGame, struct{}{})
}

func (m *model) sendCommand(event string, payload any) tea.Cmd {
	if err := m.sender.Send(event, payload); err != nil {
		m.log.Error().Err(err).Str("event", event).Msg("send failed")
		return m.showMessage("Could not reach the server: "+err.Error(), msgError)
	}
	return nil
}

// playerName resolves the name to announce: the welcome input, or the
// configured default when blank.
func (m model) playerName() string {
	if v := strings.TrimSpace(m.nameInput.Value()); v != "" {
		return v
	}
	return m.defaultName
}
