package board

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"

	"github.com/domino14/tilescore/tilemapping"
)

var boardPlaintextRegex = regexp.MustCompile(`^\s*(\d+)\|(.+)\|\s*\d*\s*$`)

var errBadGrid = errors.New("board text is not a square grid")

func columnRuler(n int) string {
	row := "   "
	for i := 0; i < n; i++ {
		row = row + fmt.Sprintf("%c", 'A'+i) + " "
	}
	return strings.TrimRight(row, " ")
}

func separator(n int) string {
	return "  +" + strings.Repeat("-+", n)
}

// ToDisplayText renders the board as a text grid, with the column letters
// on top, 1-based row numbers on the left and 0-based indexes on the right
// and bottom. Blank tiles are lower case. Multipliers are not shown.
func (g *GameBoard) ToDisplayText() string {
	var sb strings.Builder
	n := g.Dim()
	sb.WriteString(columnRuler(n) + "\n")
	sb.WriteString(separator(n) + "\n")
	for i := 0; i < n; i++ {
		sb.WriteString(fmt.Sprintf("%2d|", i+1))
		for j := 0; j < n; j++ {
			sb.WriteRune(g.squares[i][j].UserVisible())
			sb.WriteString("|")
		}
		sb.WriteString(strconv.Itoa(i) + "\n")
		sb.WriteString(separator(n) + "\n")
	}
	row := "   "
	for i := 0; i < n; i++ {
		row = row + strconv.Itoa(i%10) + " "
	}
	sb.WriteString(strings.TrimRight(row, " ") + "\n")
	return sb.String()
}

// ToColorText is a denser display for terminals, showing bonus squares.
func (g *GameBoard) ToColorText() string {
	var str string
	n := g.Dim()
	str = str + columnRuler(n) + "\n"
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	for i := 0; i < n; i++ {
		row := fmt.Sprintf("%2d|", i+1)
		for j := 0; j < n; j++ {
			row = row + g.squares[i][j].DisplayString() + " "
		}
		row = row + "|"
		str = str + row + "\n"
	}
	str = str + "   " + strings.Repeat("-", n*2) + "\n"
	return "\n" + str
}

// SetFromText lays the letters of a text grid (see ToDisplayText) onto the
// board. Every letter cell becomes a played square; every blank cell is
// cleared. Multipliers are left as they are. On error the board is
// unchanged.
func (g *GameBoard) SetFromText(text string) error {
	rows := [][]string{}
	for _, line := range strings.Split(text, "\n") {
		m := boardPlaintextRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		rownum, err := strconv.Atoi(m[1])
		if err != nil {
			return err
		}
		if rownum != len(rows)+1 {
			return fmt.Errorf("unexpected row number %d in board text", rownum)
		}
		rows = append(rows, strings.Split(m[2], "|"))
	}
	if len(rows) != g.Dim() {
		return fmt.Errorf("%w: found %d rows, want %d", errBadGrid, len(rows), g.Dim())
	}
	work := g.Copy()
	for i, cells := range rows {
		if len(cells) != g.Dim() {
			return fmt.Errorf("%w: row %d has %d cells", errBadGrid, i+1, len(cells))
		}
		for j, cell := range cells {
			rs := []rune(cell)
			if len(rs) != 1 {
				return fmt.Errorf("%w: bad cell %q at row %d", errBadGrid, cell, i+1)
			}
			sq := work.squares[i][j]
			if rs[0] == ' ' {
				sq.letter = tilemapping.Unset
				sq.blankLetter = 0
				sq.played = false
				continue
			}
			ml, blank, err := tilemapping.LetterFromRune(rs[0])
			if err != nil || !ml.IsLetter() {
				return fmt.Errorf("bad letter %q at row %d col %d", cell, i+1, j+1)
			}
			sq.Place(tilemapping.Tile{Letter: ml, Blank: blank})
			sq.played = true
		}
	}
	g.squares = work.squares
	return nil
}

// ParseBoard creates a standard board and sets it from the text grid.
func ParseBoard(text string) (*GameBoard, error) {
	b := NewStandardBoard()
	if err := b.SetFromText(text); err != nil {
		return nil, err
	}
	return b, nil
}

// Fingerprint hashes the letters on the board. Two boards with the same
// tiles in the same places have the same fingerprint.
func (g *GameBoard) Fingerprint() uint64 {
	return xxhash.Sum64String(g.ToDisplayText())
}
