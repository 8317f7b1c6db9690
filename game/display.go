package game

import (
	"bytes"
	"fmt"
	"strings"
)

func splitSubN(s string, n int) []string {
	sub := ""
	subs := []string{}

	runes := bytes.Runes([]byte(s))
	l := len(runes)
	for i, r := range runes {
		sub = sub + string(r)
		if (i+1)%n == 0 {
			subs = append(subs, sub)
			sub = ""
		} else if (i + 1) == l {
			subs = append(subs, sub)
		}
	}

	return subs
}

func addText(lines []string, row int, hpad int, text string) int {
	maxTextSize := 42
	sp := splitSubN(text, maxTextSize)

	for _, chunk := range sp {
		if row >= len(lines) {
			break
		}
		lines[row] = lines[row] + strings.Repeat(" ", hpad) + chunk
		row++
	}
	return row
}

// maxListedTurns is how many recent turns fit beside the board.
const maxListedTurns = 10

// ToDisplayText draws the board with the game id, running total and the
// most recent turns alongside it.
func (g *Game) ToDisplayText() string {
	bt := g.board.ToColorText()
	bts := strings.Split(bt, "\n")
	hpadding := 3

	row := addText(bts, 2, hpadding, "Game "+g.id)
	row = addText(bts, row, hpadding, fmt.Sprintf("Total: %d", g.Total()))
	row = addText(bts, row+1, hpadding, fmt.Sprintf("Turns: %d", len(g.turns)))

	first := max(0, len(g.turns)-maxListedTurns)
	for i := first; i < len(g.turns); i++ {
		row = addText(bts, row, hpadding, fmt.Sprintf("%2d. %s", i+1, g.turns[i].Summary()))
	}
	return strings.Join(bts, "\n")
}
