package protocol

import (
	"strings"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	raw, err := Encode(CmdJoinGame, JoinGamePayload{RoomCode: "ABCD", Name: "Al"})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	env, err := Decode(raw)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if env.Event != CmdJoinGame {
		t.Fatalf("event = %q, want %q", env.Event, CmdJoinGame)
	}
	if !strings.Contains(string(env.Data), `"room_code":"ABCD"`) {
		t.Fatalf("data = %s, want room_code field", env.Data)
	}
}

func TestDecodeRejectsMalformedFrames(t *testing.T) {
	for _, raw := range []string{"", "not json", `{"data":{}}`} {
		if _, err := Decode([]byte(raw)); err == nil {
			t.Fatalf("Decode(%q) succeeded, want error", raw)
		}
	}
}

func TestDecodePayloadTypes(t *testing.T) {
	tests := []struct {
		event string
		data  string
		check func(t *testing.T, payload any)
	}{
		{
			event: EventGameCreated,
			data:  `{"player_id":"p1","room_code":"ABCD"}`,
			check: func(t *testing.T, payload any) {
				p := payload.(GameCreatedPayload)
				if p.PlayerID != "p1" || p.RoomCode != "ABCD" {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
		{
			event: EventGameJoined,
			data:  `{"player_id":"p2","room_code":"ABCD","players":[{"id":"p1","name":"Al"},{"id":"p2","name":"Bo"}]}`,
			check: func(t *testing.T, payload any) {
				p := payload.(GameJoinedPayload)
				if len(p.Players) != 2 || p.Players[1].Name != "Bo" {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
		{
			event: EventGameStarted,
			data:  `{"grid":[["a","b"],["c","d"]],"end_time":1756400000.5}`,
			check: func(t *testing.T, payload any) {
				p := payload.(GameStartedPayload)
				if len(p.Grid) != 2 || p.Grid[1][0] != "c" {
					t.Fatalf("grid = %+v", p.Grid)
				}
				if p.EndTime != 1756400000.5 {
					t.Fatalf("end_time = %v", p.EndTime)
				}
			},
		},
		{
			event: EventWordResult,
			data:  `{"valid":true,"word":"fox","score":5,"total_score":12}`,
			check: func(t *testing.T, payload any) {
				p := payload.(WordResultPayload)
				if !p.Valid || p.Word != "fox" || p.TotalScore != 12 {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
		{
			event: EventWordResult,
			data:  `{"valid":false,"word":"zzz","reason":"Not in dictionary"}`,
			check: func(t *testing.T, payload any) {
				p := payload.(WordResultPayload)
				if p.Valid || p.Reason != "Not in dictionary" {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
		{
			event: EventOpponentFoundWord,
			data:  `{"name":"Bo","word_length":4,"score":6}`,
			check: func(t *testing.T, payload any) {
				p := payload.(OpponentFoundWordPayload)
				if p.WordLength != 4 || p.Score != 6 {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
		{
			event: EventGameEnded,
			data:  `{"players":{"A":{"name":"Al","score":10,"words":["fox"]}},"winners":["A"]}`,
			check: func(t *testing.T, payload any) {
				p := payload.(GameEndedPayload)
				if p.Players["A"].Score != 10 || len(p.Winners) != 1 {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
		{
			event: EventGameEnded,
			data:  `{"reason":"Player disconnected"}`,
			check: func(t *testing.T, payload any) {
				p := payload.(GameEndedPayload)
				if p.Reason != "Player disconnected" || p.Players != nil {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
		{
			event: EventError,
			data:  `{"message":"Game not found"}`,
			check: func(t *testing.T, payload any) {
				p := payload.(ErrorPayload)
				if p.Message != "Game not found" {
					t.Fatalf("payload = %+v", p)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			payload, err := DecodePayload(Envelope{Event: tt.event, Data: []byte(tt.data)})
			if err != nil {
				t.Fatalf("DecodePayload: %v", err)
			}
			tt.check(t, payload)
		})
	}
}

func TestDecodePayloadUnknownEventTolerated(t *testing.T) {
	payload, err := DecodePayload(Envelope{Event: "future_event", Data: []byte(`{"x":1}`)})
	if err != nil {
		t.Fatalf("unknown event errored: %v", err)
	}
	if payload != nil {
		t.Fatalf("payload = %+v, want nil", payload)
	}
}

func TestDecodePayloadMalformedBody(t *testing.T) {
	if _, err := DecodePayload(Envelope{Event: EventWordResult, Data: []byte(`{"valid":"nope"}`)}); err == nil {
		t.Fatal("malformed word_result decoded, want error")
	}
}

func TestDecodePayloadEmptyBody(t *testing.T) {
	payload, err := DecodePayload(Envelope{Event: EventGameEnded})
	if err != nil {
		t.Fatalf("empty body errored: %v", err)
	}
	if p := payload.(GameEndedPayload); p.Reason != "" || p.Players != nil {
		t.Fatalf("payload = %+v, want zero value", p)
	}
}
