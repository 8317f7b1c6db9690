package game

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/tilescore/mechanics"
)

// A Turn is one accepted play.
type Turn struct {
	Command string                 `json:"command" yaml:"command"`
	Coords  string                 `json:"coords" yaml:"coords"`
	Rack    string                 `json:"rack,omitempty" yaml:"rack,omitempty"`
	Words   []mechanics.FormedWord `json:"words" yaml:"words"`
	Score   int                    `json:"score" yaml:"score"`
}

func newTurn(command, coords, rack string, res *mechanics.PlayResult) Turn {
	return Turn{
		Command: command,
		Coords:  coords,
		Rack:    rack,
		Words:   res.Words,
		Score:   res.Score(),
	}
}

// Summary is a one-line description, e.g. "8H FIRST: FIRST 18 (18)".
func (t Turn) Summary() string {
	words := lo.Map(t.Words, func(w mechanics.FormedWord, _ int) string {
		return fmt.Sprintf("%s %d", w.Word, w.Points)
	})
	word := t.Command
	if len(t.Words) > 0 {
		word = t.Words[0].Word
	}
	return fmt.Sprintf("%s %s: %s (%d)", t.Coords, word, strings.Join(words, ", "), t.Score)
}
