package main

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/jask/wordgrid/internal/channel"
	"github.com/jask/wordgrid/internal/config"
)

// ---------------------------------------------------------------------------
// Domain types
// ---------------------------------------------------------------------------

const appName = "Wordgrid"

// minWordLen is the shortest word the server will score; anything shorter
// is rejected locally without a network round-trip.
const minWordLen = 3

// Session states
type sessionState int

const (
	stateWelcome sessionState = iota
	stateWaiting
	statePlaying
	stateGameOver
)

// player is one entry in the mirrored roster snapshot. The authoritative
// roster lives server-side; this copy is only ever replaced or mutated in
// response to inbound events.
type player struct {
	id   string
	name string
}

// foundWord is one accepted submission by the local player.
type foundWord struct {
	word   string
	points int
}

// commandSender is the outbound half of the event channel. Satisfied by
// *channel.Client; tests substitute a recorder.
type commandSender interface {
	Send(event string, payload any) error
}

// ---------------------------------------------------------------------------
// Key bindings
// ---------------------------------------------------------------------------

type keyMap struct {
	Switch  key.Binding
	Submit  key.Binding
	Restart key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Switch:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch field")),
		Submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Restart: key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter", "play again")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (m model) footerBindings() []key.Binding {
	switch m.state {
	case stateWelcome:
		return []key.Binding{m.keys.Switch, m.keys.Submit, m.keys.Quit}
	case stateWaiting:
		return []key.Binding{m.keys.Back, m.keys.Quit}
	case statePlaying:
		return []key.Binding{m.keys.Submit, m.keys.Quit}
	case stateGameOver:
		return []key.Binding{m.keys.Restart, m.keys.Back, m.keys.Quit}
	}
	return []key.Binding{m.keys.Quit}
}

// ---------------------------------------------------------------------------
// Bubble Tea messages
// ---------------------------------------------------------------------------

type channelSignalMsg struct {
	sig channel.Signal
}

type dialDoneMsg struct {
	err error
}

type clockTickMsg struct {
	gen int
}

type messageExpiredMsg struct {
	seq int
}

// Welcome screen field focus
const (
	focusName = 0
	focusRoom = 1
)

// ---------------------------------------------------------------------------
// Model
// ---------------------------------------------------------------------------

type model struct {
	sender  commandSender
	signals <-chan channel.Signal
	clock   clockwork.Clock
	log     zerolog.Logger

	// Session, owned exclusively by this model and mutated only inside
	// Update. Reset wholesale on restart or navigation back to Welcome.
	state         sessionState
	playerID      string
	roomCode      string
	roster        []player
	grid          [][]string
	round         roundClock
	found         []foundWord
	totalScore    int
	opponentScore int
	results       []resultRow
	endedReason   string

	nameInput    textinput.Model
	roomInput    textinput.Model
	wordInput    textinput.Model
	welcomeFocus int

	msg  transientMessage
	keys keyMap

	defaultName string
	connected   bool
	width       int
	height      int
}

func newModel(sender commandSender, signals <-chan channel.Signal, clock clockwork.Clock, cfg config.Config, log zerolog.Logger) model {
	nameInput := textinput.New()
	nameInput.Placeholder = cfg.Player.Name
	nameInput.CharLimit = 24
	nameInput.Focus()

	roomInput := textinput.New()
	roomInput.Placeholder = "ROOM"
	roomInput.CharLimit = 8

	wordInput := textinput.New()
	wordInput.Placeholder = "type a word"
	wordInput.CharLimit = 32

	return model{
		sender:      sender,
		signals:     signals,
		clock:       clock,
		log:         log,
		state:       stateWelcome,
		nameInput:   nameInput,
		roomInput:   roomInput,
		wordInput:   wordInput,
		keys:        newKeyMap(),
		defaultName: cfg.Player.Name,
	}
}

// ---------------------------------------------------------------------------
// Bubble Tea interface: Init / Update / View
// ---------------------------------------------------------------------------

func (m model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, waitForSignalCmd(m.signals))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case channelSignalMsg:
		next, cmd := m.handleSignal(msg.sig)
		return next, tea.Batch(cmd, waitForSignalCmd(m.signals))
	case dialDoneMsg:
		return m.handleDialDone(msg)
	case clockTickMsg:
		return m.handleClockTick(msg)
	case messageExpiredMsg:
		if msg.seq == m.msg.seq {
			m.msg.text = ""
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateWaiting:
		return m.waitingView()
	case statePlaying:
		return m.playingView()
	case stateGameOver:
		return m.gameOverView()
	default:
		return m.welcomeView()
	}
}

// ---------------------------------------------------------------------------
// Session reset
// ---------------------------------------------------------------------------

// resetSession drops everything the server owns and returns to the
// welcome screen. Used by esc from GameOver/Waiting.
func (m model) resetSession() model {
	m.state = stateWelcome
	m.playerID = ""
	m.roomCode = ""
	m.roster = nil
	m.grid = nil
	m.round.stop()
	m.found = nil
	m.totalScore = 0
	m.opponentScore = 0
	m.results = nil
	m.endedReason = ""
	m.wordInput.Reset()
	m.welcomeFocus = focusName
	m.nameInput.Focus()
	m.roomInput.Blur()
	return m
}

// resetRound clears every per-round local cache before a new round
// renders, so no stale data leaks across rounds.
func (m model) resetRound() model {
	m.found = nil
	m.totalScore = 0
	m.opponentScore = 0
	m.results = nil
	m.endedReason = ""
	m.wordInput.Reset()
	return m
}
