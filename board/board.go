package board

import (
	"github.com/rs/zerolog/log"
)

// BoardDim is the size of a standard board.
const BoardDim = 15

type BoardDirection uint8

func (bd BoardDirection) String() string {
	if bd == HorizontalDirection {
		return "(horizontal)"
	} else if bd == VerticalDirection {
		return "(vertical)"
	}
	return "none"
}

const (
	HorizontalDirection BoardDirection = iota
	VerticalDirection
)

// A GameBoard is the main board structure. It contains all of the Squares,
// row-major, with multipliers and any letters played on them.
type GameBoard struct {
	squares [][]*Square
}

// MakeBoard creates a board from a description string.
func MakeBoard(desc []string) *GameBoard {
	// Turns an array of strings into the GameBoard structure type.
	rows := [][]*Square{}
	for _, s := range desc {
		row := []*Square{}
		for _, c := range s {
			row = append(row, squareFromBonus(BonusSquare(c)))
		}
		rows = append(rows, row)
	}
	return &GameBoard{squares: rows}
}

// NewStandardBoard returns an empty board with the standard bonus layout.
func NewStandardBoard() *GameBoard {
	return MakeBoard(CrosswordGameBoard)
}

// Dim is the dimension of the board. It assumes the board is square.
func (g *GameBoard) Dim() int {
	return len(g.squares)
}

// GetSquare returns the square at the given row (y) and column (x).
func (g *GameBoard) GetSquare(row int, col int) *Square {
	return g.squares[row][col]
}

func (g *GameBoard) PosExists(row int, col int) bool {
	d := g.Dim()
	return row >= 0 && row < d && col >= 0 && col < d
}

// Center returns the row and column of the center square, which the first
// play of a game must cover.
func (g *GameBoard) Center() (int, int) {
	return g.Dim() >> 1, g.Dim() >> 1
}

// IsEmpty returns true if no square on the board has been played.
func (g *GameBoard) IsEmpty() bool {
	return g.TilesPlayed() == 0
}

// TilesPlayed counts the played squares.
func (g *GameBoard) TilesPlayed() int {
	n := 0
	for _, row := range g.squares {
		for _, sq := range row {
			if sq.played {
				n++
			}
		}
	}
	return n
}

// Copy returns a deep copy of this board.
func (g *GameBoard) Copy() *GameBoard {
	newg := &GameBoard{squares: make([][]*Square, len(g.squares))}
	for i, row := range g.squares {
		newg.squares[i] = make([]*Square, len(row))
		for j, sq := range row {
			cp := *sq
			newg.squares[i][j] = &cp
		}
	}
	return newg
}

// Equals checks the boards for equality. Two boards are equal if all
// the squares are equal, multipliers included.
func (g *GameBoard) Equals(g2 *GameBoard) bool {
	if g.Dim() != g2.Dim() {
		log.Debug().Msgf("Dims don't match: %v %v", g.Dim(), g2.Dim())
		return false
	}
	for row := 0; row < g.Dim(); row++ {
		for col := 0; col < g.Dim(); col++ {
			if !g.GetSquare(row, col).equals(g2.GetSquare(row, col)) {
				log.Debug().Msgf("> Not equal, row %v col %v", row, col)
				return false
			}
		}
	}
	return true
}
