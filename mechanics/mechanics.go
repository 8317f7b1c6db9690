// Package mechanics implements the rules of a crossword board game move:
// where tiles may go, which words a play forms, and what they score.
package mechanics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/move"
	"github.com/domino14/tilescore/tilemapping"
)

const (
	// RackTileLimit is the most tiles a player can hold, and so the most
	// new tiles a single play can put down.
	RackTileLimit = 7
	// BingoBonus is awarded for using exactly RackTileLimit tiles.
	BingoBonus = 50
	// BingoWord is the text of the bonus entry in a play's word list.
	BingoWord = "*BINGO*"
)

// Reasons a parsed play can be rejected against a board.
var (
	ErrConflictingLetter = errors.New("square already holds a different letter")
	ErrMissingAnchor     = errors.New("first play must cover the center square")
	ErrDisconnected      = errors.New("play must connect to tiles already on the board")
	ErrTooManyTiles      = fmt.Errorf("play uses more than %d tiles", RackTileLimit)
	ErrOffBoard          = errors.New("play runs off the board")
	ErrNoNewTiles        = errors.New("play must place at least one new tile")
	ErrLettersNotOnRack  = errors.New("rack does not hold the tiles for this play")
)

// MoveValidationError is a play that parsed but breaks a placement rule.
// Row and Col are 0-based and are -1 when the rule is not about one square.
type MoveValidationError struct {
	Row int
	Col int
	Err error
}

func (e *MoveValidationError) Error() string {
	if e.Row < 0 || e.Col < 0 {
		return "invalid play: " + e.Err.Error()
	}
	return fmt.Sprintf("invalid play at %c%d: %v", rune('A'+e.Col), e.Row+1, e.Err)
}

func (e *MoveValidationError) Unwrap() error {
	return e.Err
}

func invalid(err error) *MoveValidationError {
	return &MoveValidationError{Row: -1, Col: -1, Err: err}
}

// PointsFromSquare scores the tile on sq. A letter multiplier is applied
// here. A word multiplier is returned as the second value for the caller
// to fold into the whole word; it is 0 when there is none. Squares played
// on an earlier turn have spent their multipliers.
func PointsFromSquare(sq *board.Square) (int, int) {
	base := tilemapping.English.TileScore(sq.Letter(), sq.IsBlank())
	if sq.Played() {
		return base, 0
	}
	switch sq.MultiplierType() {
	case board.LetterMultiplier:
		return base * sq.Multiplier(), 0
	case board.WordMultiplier:
		return base, sq.Multiplier()
	}
	return base, 0
}

// PlayMove lays cmd onto a copy of b and scores every word it forms. The
// returned board holds the play; b itself is never modified, so a rejected
// play leaves no trace.
func PlayMove(cmd *move.PlayCommand, b *board.GameBoard) (*PlayResult, error) {
	tiles, err := cmd.Tiles()
	if err != nil {
		return nil, err
	}
	if len(tiles) == 0 {
		return nil, invalid(ErrNoNewTiles)
	}
	lastRow, lastCol := cmd.Position(len(tiles) - 1)
	if !b.PosExists(cmd.Y, cmd.X) || !b.PosExists(lastRow, lastCol) {
		return nil, &MoveValidationError{Row: lastRow, Col: lastCol, Err: ErrOffBoard}
	}

	work := b.Copy()
	firstWord := work.IsEmpty()
	connects := false
	placed := 0
	mainPoints := 0
	wordMultipliers := []int{}
	crossWords := []FormedWord{}

	for i, t := range tiles {
		row, col := cmd.Position(i)
		sq := work.GetSquare(row, col)
		if sq.Played() {
			if sq.Letter() != t.Letter {
				log.Debug().Int("row", row).Int("col", col).
					Str("have", string(sq.UserVisible())).
					Str("want", cmd.Letters[i]).Msg("conflicting-letter")
				return nil, &MoveValidationError{Row: row, Col: col, Err: ErrConflictingLetter}
			}
			connects = true
			pts, _ := PointsFromSquare(sq)
			mainPoints += pts
			continue
		}

		sq.Place(t)
		placed++
		pts, wm := PointsFromSquare(sq)
		mainPoints += pts
		if wm > 0 {
			wordMultipliers = append(wordMultipliers, wm)
		}
		if cw, ok := crossingWord(work, row, col, !cmd.Vertical); ok {
			crossWords = append(crossWords, cw)
			connects = true
		}
		sq.SetPlayed()
	}

	centerRow, centerCol := work.Center()
	if firstWord && !work.GetSquare(centerRow, centerCol).Played() {
		return nil, invalid(ErrMissingAnchor)
	} else if !firstWord && !connects {
		return nil, invalid(ErrDisconnected)
	}
	if placed > RackTileLimit {
		return nil, invalid(ErrTooManyTiles)
	}
	// Stricter than scoring a replay of existing tiles: such a play would
	// earn points for a board it does not change.
	if placed == 0 {
		return nil, invalid(ErrNoNewTiles)
	}

	words := make([]FormedWord, 0, len(crossWords)+2)
	words = append(words, FormedWord{
		Word:   cmd.Word(),
		Points: applyWordMultipliers(mainPoints, wordMultipliers),
	})
	words = append(words, crossWords...)
	if placed == RackTileLimit {
		words = append(words, FormedWord{Word: BingoWord, Points: BingoBonus})
	}
	log.Debug().Str("play", cmd.String()).Int("placed", placed).
		Int("words", len(words)).Msg("play-scored")

	return &PlayResult{Board: work, Words: words, TilesPlayed: placed}, nil
}

func applyWordMultipliers(points int, multipliers []int) int {
	for _, m := range multipliers {
		points *= m
	}
	return points
}

// crossingWord finds the run of lettered squares through (row, col) along
// the given axis. It reports false when the run is just the one square.
func crossingWord(b *board.GameBoard, row, col int, vertical bool) (FormedWord, bool) {
	dr, dc := 0, 1
	if vertical {
		dr, dc = 1, 0
	}
	startRow, startCol := row, col
	for b.PosExists(startRow-dr, startCol-dc) && b.GetSquare(startRow-dr, startCol-dc).HasLetter() {
		startRow, startCol = startRow-dr, startCol-dc
	}

	var sb strings.Builder
	points := 0
	multipliers := []int{}
	length := 0
	for r, c := startRow, startCol; b.PosExists(r, c) && b.GetSquare(r, c).HasLetter(); r, c = r+dr, c+dc {
		sq := b.GetSquare(r, c)
		sb.WriteRune(sq.UserVisible())
		pts, wm := PointsFromSquare(sq)
		points += pts
		if wm > 0 {
			multipliers = append(multipliers, wm)
		}
		length++
	}
	if length < 2 {
		return FormedWord{}, false
	}
	return FormedWord{Word: sb.String(), Points: applyWordMultipliers(points, multipliers)}, true
}
