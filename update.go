package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/wordgrid/internal/channel"
	"github.com/jask/wordgrid/internal/protocol"
)

// ---------------------------------------------------------------------------
// Inbound channel signals
// ---------------------------------------------------------------------------

func (m model) handleSignal(sig channel.Signal) (model, tea.Cmd) {
	switch sig.Kind {
	case channel.SignalConnected:
		m.connected = true
		m.log.Info().Msg("connected to server")
		return m, nil
	case channel.SignalDisconnected:
		m.connected = false
		// Non-fatal: the session keeps its state, reconnection is the
		// operator's concern.
		cmd := m.showMessage("Disconnected from server", msgError)
		return m, cmd
	case channel.SignalError:
		cmd := m.showMessage("Connection error: "+sig.Err.Error(), msgError)
		return m, cmd
	case channel.SignalEvent:
		return m.handleEvent(sig.Envelope)
	}
	return m, nil
}

func (m model) handleDialDone(msg dialDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("dial failed")
		cmd := m.showMessage("Could not connect: "+msg.err.Error(), msgError)
		return m, cmd
	}
	return m, nil
}

// ---------------------------------------------------------------------------
// Server event dispatch
// ---------------------------------------------------------------------------

// handleEvent decodes an envelope and routes it to its handler. Events
// inconsistent with the current state are duplicates or late deliveries:
// restart-of-round events reapply, everything else is dropped without
// error.
func (m model) handleEvent(env protocol.Envelope) (model, tea.Cmd) {
	payload, err := protocol.DecodePayload(env)
	if err != nil {
		m.log.Warn().Err(err).Str("event", env.Event).Msg("dropping malformed event")
		return m, nil
	}
	if payload == nil {
		m.log.Debug().Str("event", env.Event).Msg("ignoring unknown event")
		return m, nil
	}

	switch p := payload.(type) {
	case protocol.GameCreatedPayload:
		return m.handleGameCreated(p)
	case protocol.GameJoinedPayload:
		return m.handleGameJoined(p)
	case protocol.PlayerJoinedPayload:
		return m.handlePlayerJoined(p)
	case protocol.PlayerLeftPayload:
		return m.handlePlayerLeft(p)
	case protocol.GameStartedPayload:
		return m.handleGameStarted(p)
	case protocol.WordResultPayload:
		return m.handleWordResult(p)
	case protocol.OpponentFoundWordPayload:
		return m.handleOpponentFound(p)
	case protocol.GameEndedPayload:
		return m.handleGameEnded(p)
	case protocol.ErrorPayload:
		// Server-reported failure: user-visible, never fatal, no
		// state transition.
		cmd := m.showMessage(p.Message, msgError)
		return m, cmd
	}
	return m, nil
}

func (m model) handleGameCreated(p protocol.GameCreatedPayload) (model, tea.Cmd) {
	if p.PlayerID == "" || p.RoomCode == "" {
		m.log.Warn().Msg("game_created without player_id/room_code, dropping")
		return m, nil
	}
	m.playerID = p.PlayerID
	m.roomCode = p.RoomCode
	m.roster = nil
	m.state = stateWaiting
	return m, nil
}

func (m model) handleGameJoined(p protocol.GameJoinedPayload) (model, tea.Cmd) {
	if p.PlayerID == "" || p.RoomCode == "" {
		m.log.Warn().Msg("game_joined without player_id/room_code, dropping")
		return m, nil
	}
	m.playerID = p.PlayerID
	m.roomCode = p.RoomCode
	// Roster snapshot replaced wholesale, never merged.
	m.roster = make([]player, 0, len(p.Players))
	for _, ref := range p.Players {
		m.roster = append(m.roster, player{id: ref.ID, name: ref.Name})
	}
	m.state = stateWaiting
	return m, nil
}

func (m model) handlePlayerJoined(p protocol.PlayerJoinedPayload) (model, tea.Cmd) {
	for _, pl := range m.roster {
		if pl.id == p.PlayerID {
			return m, nil
		}
	}
	m.roster = append(m.roster, player{id: p.PlayerID, name: p.Name})
	cmd := m.showMessage(p.Name+" joined the game", msgInfo)
	return m, cmd
}

func (m model) handlePlayerLeft(p protocol.PlayerLeftPayload) (model, tea.Cmd) {
	kept := m.roster[:0:0]
	for _, pl := range m.roster {
		if pl.id != p.PlayerID {
			kept = append(kept, pl)
		}
	}
	m.roster = kept
	cmd := m.showMessage(p.Name+" left the game", msgInfo)
	return m, cmd
}

// handleGameStarted enters (or re-enters) a round. Reapplying while
// already Playing is deliberate: a duplicated or restarted round start
// resets the round rather than erroring.
func (m model) handleGameStarted(p protocol.GameStartedPayload) (model, tea.Cmd) {
	if m.playerID == "" || m.roomCode == "" {
		m.log.Warn().Msg("game_started before joining a room, dropping")
		return m, nil
	}
	if len(p.Grid) == 0 {
		m.log.Warn().Msg("game_started without a grid, dropping")
		return m, nil
	}
	m = m.resetRound()
	m.grid = p.Grid
	m.round.start(p.EndTime, m.clock.Now())
	m.state = statePlaying
	m.wordInput.Focus()
	if !m.round.active {
		return m, nil
	}
	return m, tickCmd(m.round.gen)
}

func (m model) handleWordResult(p protocol.WordResultPayload) (model, tea.Cmd) {
	if m.state != statePlaying {
		return m, nil
	}
	m.wordInput.Reset()
	m.wordInput.Focus()
	if p.Valid {
		m.found = append(m.found, foundWord{word: p.Word, points: p.Score})
		// Authoritative total: the server's number wins even when it
		// disagrees with a local sum (bonus words, duplicate rejection).
		m.totalScore = p.TotalScore
		cmd := m.showMessage(fmt.Sprintf("Found %q for %d points!", p.Word, p.Score), msgSuccess)
		return m, cmd
	}
	text := "Invalid word: " + p.Reason
	if near, ok := nearestFound(normalizeWord(p.Word), m.found); ok {
		text += fmt.Sprintf(" (close to %q, already found)", near)
	}
	cmd := m.showMessage(text, msgError)
	return m, cmd
}

func (m model) handleOpponentFound(p protocol.OpponentFoundWordPayload) (model, tea.Cmd) {
	if m.state != statePlaying {
		return m, nil
	}
	m.opponentScore = p.Score
	cmd := m.showMessage(fmt.Sprintf("%s found a %d-letter word", p.Name, p.WordLength), msgInfo)
	return m, cmd
}

func (m model) handleGameEnded(p protocol.GameEndedPayload) (model, tea.Cmd) {
	if m.state != statePlaying && m.state != stateGameOver {
		// Late delivery from a round this client never entered.
		m.log.Warn().Str("state", fmt.Sprint(m.state)).Msg("game_ended out of round, dropping")
		return m, nil
	}
	m.round.stop()
	m.state = stateGameOver
	if p.Reason != "" {
		// Aborted round: no scoring data exists, so no results view.
		m.results = nil
		m.endedReason = p.Reason
		cmd := m.showMessage(p.Reason, msgInfo)
		return m, cmd
	}
	m.endedReason = ""
	m.results = buildResults(p, m.playerID)
	return m, nil
}

// ---------------------------------------------------------------------------
// Round clock ticks
// ---------------------------------------------------------------------------

func (m model) handleClockTick(msg clockTickMsg) (tea.Model, tea.Cmd) {
	// A tick from a superseded clock generation is stale: a new round
	// started or the round ended since it was scheduled.
	if msg.gen != m.round.gen || !m.round.active {
		return m, nil
	}
	m.round.tick(m.clock.Now())
	if !m.round.active {
		// Frozen at 0:00 until game_ended arrives; no more ticks.
		return m, nil
	}
	return m, tickCmd(m.round.gen)
}

// ---------------------------------------------------------------------------
// Key input
// ---------------------------------------------------------------------------

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateWelcome:
		return m.updateWelcomeKey(msg)
	case stateWaiting:
		return m.updateWaitingKey(msg)
	case statePlaying:
		return m.updatePlayingKey(msg)
	case stateGameOver:
		return m.updateGameOverKey(msg)
	}
	return m, nil
}

func (m model) updateWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		if m.welcomeFocus == focusName {
			m.welcomeFocus = focusRoom
			m.nameInput.Blur()
			m.roomInput.Focus()
		} else {
			m.welcomeFocus = focusName
			m.roomInput.Blur()
			m.nameInput.Focus()
		}
		return m, nil
	case "enter":
		code := normalizeRoomCode(m.roomInput.Value())
		if m.welcomeFocus == focusRoom && code == "" {
			cmd := m.showMessage("Please enter a valid room code", msgError)
			return m, cmd
		}
		// A typed code joins that room; an empty code hosts a new one.
		if code != "" {
			cmd := m.sendJoinGame(code, m.playerName())
			return m, cmd
		}
		cmd := m.sendCreateGame(m.playerName())
		return m, cmd
	}

	var cmd tea.Cmd
	if m.welcomeFocus == focusRoom {
		m.roomInput, cmd = m.roomInput.Update(msg)
	} else {
		m.nameInput, cmd = m.nameInput.Update(msg)
	}
	return m, cmd
}

func (m model) updateWaitingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		return m.resetSession(), nil
	}
	return m, nil
}

func (m model) updatePlayingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		word, err := validateWord(m.wordInput.Value())
		if err != nil {
			cmd := m.showMessage(err.Error(), msgError)
			return m, cmd
		}
		// The buffer stays until word_result comes back; the server
		// arbitrates duplicates.
		cmd := m.sendSubmitWord(word)
		return m, cmd
	}

	var cmd tea.Cmd
	m.wordInput, cmd = m.wordInput.Update(msg)
	return m, cmd
}

func (m model) updateGameOverKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "r":
		cmd := m.sendRestartGame()
		return m, cmd
	case "esc":
		return m.resetSession(), nil
	}
	return m, nil
}
