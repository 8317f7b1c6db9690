// Package game holds a single board being played on, and the plays that
// have been accepted on it.
package game

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/mechanics"
	"github.com/domino14/tilescore/move"
	"github.com/domino14/tilescore/tilemapping"
)

// Game is a board plus its history. It is not safe for concurrent use;
// callers that share one must serialize plays themselves.
type Game struct {
	id    string
	board *board.GameBoard
	// startBoard is the text grid the turns were played onto; empty for
	// an empty board.
	startBoard string
	turns      []Turn
	strictRack bool
}

// NewGame starts a game on an empty standard board.
func NewGame() *Game {
	return &Game{
		id:    newGameID(),
		board: board.NewStandardBoard(),
	}
}

// FromBoard resumes a game from a saved board and history. An empty id
// gets a fresh one. With no turns, b is also the starting board; otherwise
// the caller sets it with SetStartBoard if it is known.
func FromBoard(id string, b *board.GameBoard, turns []Turn) *Game {
	if id == "" {
		id = newGameID()
	}
	g := &Game{id: id, board: b, turns: turns}
	if len(turns) == 0 && !b.IsEmpty() {
		g.startBoard = b.ToDisplayText()
	}
	return g
}

func (g *Game) ID() string {
	return g.id
}

// Board is the current board. It must not be modified.
func (g *Game) Board() *board.GameBoard {
	return g.board
}

// StartBoard is the text grid of the board before the first turn, or ""
// if the game began on an empty board.
func (g *Game) StartBoard() string {
	return g.startBoard
}

func (g *Game) SetStartBoard(text string) {
	g.startBoard = text
}

func (g *Game) Turns() []Turn {
	return g.turns
}

// LastTurn returns the most recent play, or nil if there is none.
func (g *Game) LastTurn() *Turn {
	if len(g.turns) == 0 {
		return nil
	}
	return &g.turns[len(g.turns)-1]
}

// SetStrictRack makes Play account for every new tile against the rack,
// instead of requiring only one of them to be on it.
func (g *Game) SetStrictRack(s bool) {
	g.strictRack = s
}

// Total is the sum of every turn's score.
func (g *Game) Total() int {
	return lo.SumBy(g.turns, func(t Turn) int { return t.Score })
}

// Check parses and validates a play against the current board without
// committing it. A nil rack skips the rack check.
func (g *Game) Check(text string, rack *tilemapping.Rack) (*move.PlayCommand, *mechanics.PlayResult, error) {
	cmd, err := move.ParsePlayCommand(text)
	if err != nil {
		return nil, nil, err
	}
	if rack != nil {
		if err := mechanics.CheckRack(cmd, g.board, rack, g.strictRack); err != nil {
			return nil, nil, err
		}
	}
	res, err := mechanics.PlayMove(cmd, g.board)
	if err != nil {
		return nil, nil, err
	}
	return cmd, res, nil
}

// Play validates a play and, if it is legal, commits the new board and
// records the turn. On error the game is unchanged.
func (g *Game) Play(text string, rack *tilemapping.Rack) (*Turn, error) {
	cmd, res, err := g.Check(text, rack)
	if err != nil {
		log.Debug().Str("gameID", g.id).Str("play", text).Err(err).Msg("play-rejected")
		return nil, err
	}
	rackStr := ""
	if rack != nil {
		rackStr = rack.String()
	}
	g.board = res.Board
	g.turns = append(g.turns, newTurn(cmd.String(), cmd.BoardCoords(), rackStr, res))
	t := g.LastTurn()
	log.Debug().Str("gameID", g.id).Str("play", t.Command).Int("score", t.Score).
		Int("total", g.Total()).Msg("play-accepted")
	return t, nil
}
