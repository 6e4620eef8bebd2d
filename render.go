package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Shared chrome
// ---------------------------------------------------------------------------

func (m model) renderHeader() string {
	status := mutedStyle.Render("offline")
	if m.connected {
		status = msgSuccessStyle.Render("online")
	}
	return titleStyle.Render(appName) + "  " + status
}

func (m model) renderMessage() string {
	if m.msg.text == "" {
		return ""
	}
	switch m.msg.kind {
	case msgSuccess:
		return msgSuccessStyle.Render(m.msg.text)
	case msgError:
		return msgErrorStyle.Render(m.msg.text)
	default:
		return msgInfoStyle.Render(m.msg.text)
	}
}

func (m model) renderFooter() string {
	parts := make([]string, 0, 4)
	for _, b := range m.footerBindings() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return footerStyle.Render(strings.Join(parts, " • "))
}

// compose stacks the screen body with the shared chrome.
func (m model) compose(body string) string {
	return m.renderHeader() + "\n\n" + body + "\n\n" + m.renderMessage() + "\n" + m.renderFooter()
}

// ---------------------------------------------------------------------------
// Screens
// ---------------------------------------------------------------------------

func (m model) welcomeView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Your name"))
	b.WriteString("\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Room code (leave empty to host)"))
	b.WriteString("\n")
	b.WriteString(m.roomInput.View())
	return m.compose(sectionStyle.Render(b.String()))
}

func (m model) waitingView() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render("Room code: "))
	b.WriteString(roomCodeStyle.Render(m.roomCode))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Players"))
	b.WriteString("\n")
	if len(m.roster) == 0 {
		b.WriteString(mutedStyle.Render("waiting for players..."))
	}
	for i, p := range m.roster {
		if i > 0 {
			b.WriteString("\n")
		}
		name := p.name
		if p.id == m.playerID {
			name += " " + youStyle.Render("(you)")
		}
		b.WriteString("  " + name)
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("The round starts when a second player joins."))
	return m.compose(sectionStyle.Render(b.String()))
}

func (m model) playingView() string {
	clock := clockStyle
	if m.round.urgent() {
		clock = clockUrgentStyle
	}
	scores := fmt.Sprintf("%s %s   %s %s   %s",
		labelStyle.Render("You:"), scoreStyle.Render(fmt.Sprint(m.totalScore)),
		labelStyle.Render("Opponent:"), scoreStyle.Render(fmt.Sprint(m.opponentScore)),
		clock.Render(m.round.display()),
	)

	body := scores + "\n\n" +
		sectionStyle.Render(renderGrid(m.grid)) + "\n\n" +
		m.wordInput.View() + "\n\n" +
		labelStyle.Render("Found words") + "\n" + renderFoundWords(m.found)
	return m.compose(body)
}

func (m model) gameOverView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Game over"))
	b.WriteString("\n\n")
	if m.results == nil {
		// Aborted round: there is no scoring data to show.
		reason := m.endedReason
		if reason == "" {
			reason = "The round ended."
		}
		b.WriteString(msgInfoStyle.Render(reason))
	} else {
		for i, row := range m.results {
			if i > 0 {
				b.WriteString("\n\n")
			}
			b.WriteString(renderResultRow(row))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(mutedStyle.Render("enter: play again • esc: back to welcome"))
	return m.compose(sectionStyle.Render(b.String()))
}

// ---------------------------------------------------------------------------
// Pieces
// ---------------------------------------------------------------------------

func renderGrid(grid [][]string) string {
	rows := make([]string, 0, len(grid))
	for _, row := range grid {
		cells := make([]string, 0, len(row))
		for _, letter := range row {
			cells = append(cells, gridCellStyle.Render(strings.ToUpper(letter)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func renderFoundWords(found []foundWord) string {
	if len(found) == 0 {
		return mutedStyle.Render("  none yet")
	}
	lines := make([]string, 0, len(found))
	for _, f := range found {
		lines = append(lines, fmt.Sprintf("  %s (+%d)", f.word, f.points))
	}
	return strings.Join(lines, "\n")
}

func renderResultRow(row resultRow) string {
	name := row.name
	if row.isLocal {
		name += " " + youStyle.Render("(you)")
	}
	if row.isWinner {
		name += " " + winnerStyle.Render("🏆 winner")
	}
	out := name + "\n" + labelStyle.Render("Score: ") + scoreStyle.Render(fmt.Sprint(row.score)) + "\n"
	if len(row.words) == 0 {
		return out + mutedStyle.Render("No words found")
	}
	return out + labelStyle.Render("Words: ") + strings.Join(row.words, ", ")
}
