package move

import (
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/tilescore/tilemapping"
)

type coordTestStruct struct {
	row      int
	col      int
	vertical bool
	output   string
}

var coordTests = []coordTestStruct{
	{0, 0, false, "1A"},
	{0, 0, true, "A1"},
	{14, 14, false, "15O"},
	{14, 14, true, "O15"},
	{9, 8, false, "10I"},
	{9, 8, true, "I10"},
	{1, 7, false, "2H"},
	{1, 7, true, "H2"},
}

func TestToBoardGameCoords(t *testing.T) {
	for _, tc := range coordTests {
		calc := ToBoardGameCoords(tc.row, tc.col, tc.vertical)
		if calc != tc.output {
			t.Errorf("For row=%v col=%v vertical=%v got %v, expected %v",
				tc.row, tc.col, tc.vertical, calc, tc.output)
		}
	}
}

func TestParsePlayCommand(t *testing.T) {
	is := is.New(t)

	cmd, err := ParsePlayCommand("APPLE a1 V")
	is.NoErr(err)
	is.Equal(cmd.X, 0)
	is.Equal(cmd.Y, 0)
	is.True(cmd.Vertical)
	assert.Equal(t, []string{"A", "P", "P", "L", "E"}, cmd.Letters)

	cmd, err = ParsePlayCommand("INGRAIN O15 h")
	is.NoErr(err)
	is.Equal(cmd.X, 14)
	is.Equal(cmd.Y, 14)
	is.True(!cmd.Vertical)
	is.Equal(cmd.Word(), "INGRAIN")
}

func TestParseKeepsBlankCase(t *testing.T) {
	is := is.New(t)
	cmd, err := ParsePlayCommand("  FoURTH   c7 H ")
	is.NoErr(err)
	assert.Equal(t, []string{"F", "o", "U", "R", "T", "H"}, cmd.Letters)
	is.Equal(cmd.X, 2)
	is.Equal(cmd.Y, 6)

	tiles, err := cmd.Tiles()
	is.NoErr(err)
	is.Equal(len(tiles), 6)
	is.True(!tiles[0].Blank)
	is.True(tiles[1].Blank)
	is.Equal(tiles[1].Letter.Rune(), 'O')
}

func TestParsePlayCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		text string
		want error
	}{
		{"A H8 V", ErrWordTooShort},
		{"APPLE", ErrMalformedCommand},
		{"APPLE H", ErrMalformedCommand},
		{"APPLE G8", ErrMalformedCommand},
		{"APPLE G8 V extra", ErrMalformedCommand},
		{"APPLE 8G V", ErrMalformedCommand},
		{"APPLE A2 A", ErrBadDirection},
		{"APPLE A2 HV", ErrBadDirection},
		{"APPLE W2 H", ErrBadColumn},
		{"APPLE P1 H", ErrBadColumn},
		{"APPLE f20 H", ErrBadRow},
		{"APPLE A0 H", ErrBadRow},
		{"AP?LE A1 H", ErrBadLetter},
		{"", ErrMalformedCommand},
	} {
		t.Run(tc.text, func(t *testing.T) {
			is := is.New(t)
			cmd, err := ParsePlayCommand(tc.text)
			is.True(cmd == nil)
			is.True(errors.Is(err, tc.want))

			var perr *CommandParseError
			is.True(errors.As(err, &perr))
			is.Equal(perr.Command, tc.text)
		})
	}
}

func TestCommandString(t *testing.T) {
	is := is.New(t)
	for _, text := range []string{"APPLE A1 V", "INGRAIN O15 H", "sECOND K8 V"} {
		cmd, err := ParsePlayCommand(text)
		is.NoErr(err)
		is.Equal(cmd.String(), text)
	}
	cmd, _ := ParsePlayCommand("FIRST h8 h")
	is.Equal(cmd.BoardCoords(), "8H")
}

func TestPosition(t *testing.T) {
	is := is.New(t)
	cmd := &PlayCommand{X: 3, Y: 4, Vertical: true, Letters: []string{"A", "B"}}
	row, col := cmd.Position(1)
	is.Equal(row, 5)
	is.Equal(col, 3)

	cmd.Vertical = false
	row, col = cmd.Position(1)
	is.Equal(row, 4)
	is.Equal(col, 4)
}

func TestTilesRejectsBadLetters(t *testing.T) {
	is := is.New(t)
	cmd := &PlayCommand{Letters: []string{"A", "1"}}
	_, err := cmd.Tiles()
	is.True(errors.Is(err, ErrBadLetter))
	is.Equal(tilemapping.Letter(1).Rune(), 'A')
}
