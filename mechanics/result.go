package mechanics

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/domino14/tilescore/board"
)

// FormedWord is one scored word of a play. The bingo bonus is carried as a
// FormedWord too, with BingoWord as its text.
type FormedWord struct {
	Word   string `json:"word" yaml:"word"`
	Points int    `json:"points" yaml:"points"`
}

// PlayResult is the outcome of a legal play. Words[0] is always the word
// that was typed; crossing words follow in board order, then the bingo
// entry if there is one.
type PlayResult struct {
	Board       *board.GameBoard
	Words       []FormedWord
	TilesPlayed int
}

// Score is the total the play is worth.
func (r *PlayResult) Score() int {
	return lo.SumBy(r.Words, func(w FormedWord) int { return w.Points })
}

// Bingo is true if the play earned the bonus.
func (r *PlayResult) Bingo() bool {
	return lo.ContainsBy(r.Words, func(w FormedWord) bool { return w.Word == BingoWord })
}

func (r *PlayResult) String() string {
	words := lo.Map(r.Words, func(w FormedWord, _ int) string { return w.String() })
	return strings.Join(words, ", ")
}

func (w FormedWord) String() string {
	return fmt.Sprintf("%s (%d)", w.Word, w.Points)
}
