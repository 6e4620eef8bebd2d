package main

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// normalizeWord trims and case-normalizes a candidate word.
func normalizeWord(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// validateWord applies the local shape policy before any network call.
// It returns the normalized word, or an error message for the transient
// line when the candidate is too short.
func validateWord(raw string) (string, error) {
	word := normalizeWord(raw)
	if len(word) < minWordLen {
		return "", fmt.Errorf("Word must be at least %d letters", minWordLen)
	}
	return word, nil
}

// normalizeRoomCode upcases and trims a room code the way the server
// expects it.
func normalizeRoomCode(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// nearestFound returns the already-found word closest to the rejected
// candidate when they differ by a single edit. Used to hint at probable
// typos of words the player already has.
func nearestFound(word string, found []foundWord) (string, bool) {
	for _, f := range found {
		if f.word == word {
			continue
		}
		if levenshtein.ComputeDistance(word, f.word) == 1 {
			return f.word, true
		}
	}
	return "", false
}
