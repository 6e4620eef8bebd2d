package main

import (
	"fmt"
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// urgentThreshold is the remaining-seconds mark at which the countdown
// switches to the urgent style.
const urgentThreshold = 10

// roundClock derives the local countdown from the server's absolute end
// time. The display is recomputed from endTime on every tick, never
// accumulated from local ticks, so clock drift stays bounded to about
// one tick regardless of round length.
//
// gen tags each (re)start; tick messages carry the generation they were
// scheduled under and stale ones are dropped, so at most one live tick
// chain drives the display.
type roundClock struct {
	endTime   float64 // epoch seconds, server-authoritative
	remaining int
	gen       int
	active    bool
}

// start supersedes any previous countdown and derives the initial
// remaining time from the authoritative end time.
func (rc *roundClock) start(endTime float64, now time.Time) {
	rc.endTime = endTime
	rc.gen++
	rc.active = true
	rc.remaining = remainingSeconds(endTime, now)
	if rc.remaining == 0 {
		rc.active = false
	}
}

// tick recomputes remaining time from the end time. At zero the clock
// stops itself and the display freezes at 0:00; round-over authority
// rests with the game_ended event, not this countdown.
func (rc *roundClock) tick(now time.Time) {
	if !rc.active {
		return
	}
	rc.remaining = remainingSeconds(rc.endTime, now)
	if rc.remaining == 0 {
		rc.active = false
	}
}

func (rc *roundClock) stop() {
	rc.active = false
	rc.gen++
}

func (rc roundClock) urgent() bool {
	return rc.remaining <= urgentThreshold
}

// display renders the countdown as m:ss.
func (rc roundClock) display() string {
	return formatClock(rc.remaining)
}

func remainingSeconds(endTime float64, now time.Time) int {
	left := endTime - float64(now.UnixNano())/float64(time.Second)
	// float64 cannot hold epoch nanoseconds exactly; nudge by well over
	// that error before flooring so exact-second boundaries hold.
	left = math.Floor(left + 1e-6)
	if left < 0 {
		return 0
	}
	return int(left)
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// tickCmd schedules the next 1-second countdown tick for the given clock
// generation.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return clockTickMsg{gen: gen}
	})
}
