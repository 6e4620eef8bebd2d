// Package protocol defines the wire contract between the wordgrid client
// and the game server: a JSON envelope carrying a named event and an
// event-specific payload, in both directions.
package protocol

import (
	"encoding/json"
	"fmt"
)

// Envelope is the framing for every message on the channel.
// Data stays raw until the event name selects a payload type.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Client -> server command names.
const (
	CmdCreateGame  = "create_game"
	CmdJoinGame    = "join_game"
	CmdSubmitWord  = "submit_word"
	CmdRestartGame = "restart_game"
)

// Server -> client event names.
const (
	EventGameCreated       = "game_created"
	EventGameJoined        = "game_joined"
	EventPlayerJoined      = "player_joined"
	EventPlayerLeft        = "player_left"
	EventGameStarted       = "game_started"
	EventWordResult        = "word_result"
	EventOpponentFoundWord = "opponent_found_word"
	EventGameEnded         = "game_ended"
	EventError             = "error"
)

// ---------------------------------------------------------------------------
// Command payloads
// ---------------------------------------------------------------------------

type CreateGamePayload struct {
	Name string `json:"name"`
}

type JoinGamePayload struct {
	RoomCode string `json:"room_code"`
	Name     string `json:"name"`
}

type SubmitWordPayload struct {
	Word string `json:"word"`
}

// ---------------------------------------------------------------------------
// Event payloads
// ---------------------------------------------------------------------------

type GameCreatedPayload struct {
	PlayerID string `json:"player_id"`
	RoomCode string `json:"room_code"`
}

// PlayerRef identifies a player in a roster listing.
type PlayerRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type GameJoinedPayload struct {
	PlayerID string      `json:"player_id"`
	RoomCode string      `json:"room_code"`
	Players  []PlayerRef `json:"players"`
}

type PlayerJoinedPayload struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

type PlayerLeftPayload struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
}

// GameStartedPayload carries the round grid and the authoritative end
// time as epoch seconds. The grid is row-major, one letter per cell.
type GameStartedPayload struct {
	Grid    [][]string `json:"grid"`
	EndTime float64    `json:"end_time"`
}

type WordResultPayload struct {
	Valid      bool   `json:"valid"`
	Word       string `json:"word"`
	Score      int    `json:"score"`
	TotalScore int    `json:"total_score"`
	Reason     string `json:"reason"`
}

type OpponentFoundWordPayload struct {
	PlayerID   string `json:"player_id"`
	Name       string `json:"name"`
	WordLength int    `json:"word_length"`
	Score      int    `json:"score"`
}

// PlayerResult is one player's final line in the round results.
type PlayerResult struct {
	Name  string   `json:"name"`
	Score int      `json:"score"`
	Words []string `json:"words"`
}

// GameEndedPayload ends a round. Either Reason is set (round aborted, no
// scoring data) or Players/Winners carry the full results.
type GameEndedPayload struct {
	Reason  string                  `json:"reason,omitempty"`
	Players map[string]PlayerResult `json:"players,omitempty"`
	Winners []string                `json:"winners,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// ---------------------------------------------------------------------------
// Encode / decode
// ---------------------------------------------------------------------------

// Encode wraps a payload in an envelope and marshals it.
func Encode(event string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", event, err)
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}

// Decode unmarshals one wire message into an envelope.
func Decode(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, fmt.Errorf("decode envelope: %w", err)
	}
	if env.Event == "" {
		return Envelope{}, fmt.Errorf("decode envelope: missing event name")
	}
	return env, nil
}

// DecodePayload parses an envelope's data into the typed payload for its
// event name. Unknown event names return (nil, nil): a newer server may
// emit events this client does not know, and they must not be fatal.
func DecodePayload(env Envelope) (any, error) {
	data := env.Data
	if len(data) == 0 {
		data = []byte("{}")
	}

	switch env.Event {
	case EventGameCreated:
		var p GameCreatedPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventGameJoined:
		var p GameJoinedPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventPlayerJoined:
		var p PlayerJoinedPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventPlayerLeft:
		var p PlayerLeftPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventGameStarted:
		var p GameStartedPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventWordResult:
		var p WordResultPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventOpponentFoundWord:
		var p OpponentFoundWordPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventGameEnded:
		var p GameEndedPayload
		return unmarshalPayload(env.Event, data, &p)
	case EventError:
		var p ErrorPayload
		return unmarshalPayload(env.Event, data, &p)
	default:
		return nil, nil
	}
}

func unmarshalPayload[T any](event string, data []byte, p *T) (any, error) {
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", event, err)
	}
	return *p, nil
}
