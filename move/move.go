package move

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilescore/tilemapping"
)

// Reasons a play command can be rejected by the parser.
var (
	ErrMalformedCommand = errors.New("command must look like WORD COORD DIRECTION, e.g. APPLE H8 V")
	ErrWordTooShort     = errors.New("word must be at least two letters long")
	ErrBadColumn        = errors.New("column must be a letter from A to O")
	ErrBadRow           = errors.New("row must be a number from 1 to 15")
	ErrBadDirection     = errors.New("direction must be H or V")
	ErrBadLetter        = errors.New("word may only contain the letters A-Z")
)

// MaxCoord is the highest row number and column index a command can name.
const MaxCoord = 15

// CommandParseError is returned for any play command text that could not be
// turned into a PlayCommand.
type CommandParseError struct {
	Command string
	Err     error
}

func (e *CommandParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Command, e.Err)
}

func (e *CommandParseError) Unwrap() error {
	return e.Err
}

// PlayCommand is a parsed request to lay a word on the board. X is the
// 0-based column and Y the 0-based row of the first letter. Letters keep
// the casing they were typed in; a lower-case letter is a blank standing
// in for that letter.
type PlayCommand struct {
	X        int
	Y        int
	Vertical bool
	Letters  []string
}

var reCoord = regexp.MustCompile(`^(?P<col>[A-Za-z])(?P<row>[0-9]+)$`)

// ParsePlayCommand parses text like "APPLE a1 V" or "INGRAIN O15 h".
func ParsePlayCommand(text string) (*PlayCommand, error) {
	fail := func(err error) (*PlayCommand, error) {
		log.Debug().Str("command", text).Err(err).Msg("rejected-command")
		return nil, &CommandParseError{Command: text, Err: err}
	}
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return fail(ErrMalformedCommand)
	}
	word, coord, dir := fields[0], fields[1], fields[2]

	letters := make([]string, 0, len(word))
	for _, r := range word {
		if !(r >= 'A' && r <= 'Z') && !(r >= 'a' && r <= 'z') {
			return fail(ErrBadLetter)
		}
		letters = append(letters, string(r))
	}
	if len(letters) < 2 {
		return fail(ErrWordTooShort)
	}

	m := reCoord.FindStringSubmatch(coord)
	if m == nil {
		return fail(ErrMalformedCommand)
	}
	col := int(strings.ToUpper(m[1])[0] - 'A')
	if col >= MaxCoord {
		return fail(ErrBadColumn)
	}
	row, err := strconv.Atoi(m[2])
	if err != nil || row < 1 || row > MaxCoord {
		return fail(ErrBadRow)
	}

	var vertical bool
	switch dir {
	case "H", "h":
		vertical = false
	case "V", "v":
		vertical = true
	default:
		return fail(ErrBadDirection)
	}

	return &PlayCommand{
		X:        col,
		Y:        row - 1,
		Vertical: vertical,
		Letters:  letters,
	}, nil
}

// Word joins the letters back together, casing intact.
func (c *PlayCommand) Word() string {
	return strings.Join(c.Letters, "")
}

// String renders the command in the form ParsePlayCommand accepts.
func (c *PlayCommand) String() string {
	dir := "H"
	if c.Vertical {
		dir = "V"
	}
	return fmt.Sprintf("%s %c%d %s", c.Word(), rune('A'+c.X), c.Y+1, dir)
}

// BoardCoords is the conventional notation for where the play goes: column
// first for a vertical play, row first for a horizontal one.
func (c *PlayCommand) BoardCoords() string {
	return ToBoardGameCoords(c.Y, c.X, c.Vertical)
}

// Tiles converts each letter into a tile, flagging lower-case letters as
// blanks.
func (c *PlayCommand) Tiles() ([]tilemapping.Tile, error) {
	tiles := make([]tilemapping.Tile, len(c.Letters))
	for i, l := range c.Letters {
		rs := []rune(l)
		if len(rs) != 1 {
			return nil, &CommandParseError{Command: c.Word(), Err: ErrBadLetter}
		}
		ml, blank, err := tilemapping.LetterFromRune(rs[0])
		if err != nil || !ml.IsLetter() {
			return nil, &CommandParseError{Command: c.Word(), Err: ErrBadLetter}
		}
		tiles[i] = tilemapping.Tile{Letter: ml, Blank: blank}
	}
	return tiles, nil
}

// Position returns the row and column of the i-th letter.
func (c *PlayCommand) Position(i int) (row, col int) {
	if c.Vertical {
		return c.Y + i, c.X
	}
	return c.Y, c.X + i
}

func ToBoardGameCoords(row int, col int, vertical bool) string {
	colCoords := string(rune('A' + col))
	rowCoords := strconv.Itoa(int(row + 1))
	var coords string
	if vertical {
		coords = colCoords + rowCoords
	} else {
		coords = rowCoords + colCoords
	}
	return coords
}
