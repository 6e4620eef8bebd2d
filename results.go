package main

import (
	"sort"

	"github.com/jask/wordgrid/internal/protocol"
)

// resultRow is one player's line in the end-of-round summary view-model.
type resultRow struct {
	id       string
	name     string
	score    int
	words    []string
	isLocal  bool
	isWinner bool
}

// buildResults turns the game_ended payload into a deterministic ranked
// summary. Rows are ordered by player id: the wire carries the results as
// a JSON object, which has no order to preserve, and id order is stable
// across renders. Ties are possible; every id in winners gets the winner
// marker.
func buildResults(payload protocol.GameEndedPayload, localID string) []resultRow {
	ids := make([]string, 0, len(payload.Players))
	for id := range payload.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	winners := make(map[string]bool, len(payload.Winners))
	for _, id := range payload.Winners {
		winners[id] = true
	}

	rows := make([]resultRow, 0, len(ids))
	for _, id := range ids {
		p := payload.Players[id]
		rows = append(rows, resultRow{
			id:       id,
			name:     p.Name,
			score:    p.Score,
			words:    p.Words,
			isLocal:  id == localID,
			isWinner: winners[id],
		})
	}
	return rows
}
