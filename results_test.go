package main

import (
	"testing"

	"github.com/jask/wordgrid/internal/protocol"
)

func TestBuildResultsMarksLocalAndWinners(t *testing.T) {
	rows := buildResults(protocol.GameEndedPayload{
		Players: map[string]protocol.PlayerResult{
			"A": {Name: "Al", Score: 10, Words: []string{"fox"}},
			"B": {Name: "Bo", Score: 10, Words: []string{"owl"}},
		},
		Winners: []string{"A", "B"},
	}, "B")

	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	// Deterministic id order.
	if rows[0].id != "A" || rows[1].id != "B" {
		t.Fatalf("row order = [%s %s], want [A B]", rows[0].id, rows[1].id)
	}
	for _, row := range rows {
		if !row.isWinner {
			t.Fatalf("row %s missing winner marker in a tie", row.id)
		}
	}
	if rows[0].isLocal || !rows[1].isLocal {
		t.Fatalf("local markers = (%v,%v), want (false,true)", rows[0].isLocal, rows[1].isLocal)
	}
}

func TestBuildResultsSingleWinner(t *testing.T) {
	rows := buildResults(protocol.GameEndedPayload{
		Players: map[string]protocol.PlayerResult{
			"A": {Name: "Al", Score: 12, Words: []string{"fox", "boat"}},
			"B": {Name: "Bo", Score: 4, Words: nil},
		},
		Winners: []string{"A"},
	}, "A")

	if !rows[0].isWinner || rows[1].isWinner {
		t.Fatalf("winner markers = (%v,%v), want (true,false)", rows[0].isWinner, rows[1].isWinner)
	}
}

func TestRenderResultRowEmptyWordList(t *testing.T) {
	out := renderResultRow(resultRow{id: "B", name: "Bo", score: 0})
	if !contains(out, "No words found") {
		t.Fatalf("row missing explicit empty state:\n%s", out)
	}
}

func TestRenderResultRowMarkers(t *testing.T) {
	out := renderResultRow(resultRow{
		id: "A", name: "Al", score: 10,
		words: []string{"fox", "boat"}, isLocal: true, isWinner: true,
	})
	for _, want := range []string{"Al", "(you)", "winner", "10", "fox, boat"} {
		if !contains(out, want) {
			t.Fatalf("row missing %q:\n%s", want, out)
		}
	}
}
