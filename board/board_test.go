package board

import (
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/tilescore/tilemapping"
)

func TestStandardLayout(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	is.Equal(b.Dim(), BoardDim)

	type sqtest struct {
		row, col int
		mult     int
		mt       MultiplierType
	}
	for _, tc := range []sqtest{
		{0, 0, 3, WordMultiplier},
		{7, 7, 2, WordMultiplier},
		{1, 5, 3, LetterMultiplier},
		{0, 3, 2, LetterMultiplier},
		{0, 1, 1, NoMultiplier},
		{14, 14, 3, WordMultiplier},
	} {
		sq := b.GetSquare(tc.row, tc.col)
		is.Equal(sq.Multiplier(), tc.mult)
		is.Equal(sq.MultiplierType(), tc.mt)
		is.True(!sq.Played())
		is.True(!sq.HasLetter())
	}
	r, c := b.Center()
	is.Equal(r, 7)
	is.Equal(c, 7)
}

func TestIsEmpty(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	is.True(b.IsEmpty())

	// A letter that is placed but not played does not count.
	b.GetSquare(3, 3).Place(tilemapping.Tile{Letter: 1})
	is.True(b.IsEmpty())

	b.GetSquare(3, 3).SetPlayed()
	is.True(!b.IsEmpty())
	is.Equal(b.TilesPlayed(), 1)
}

func TestCopyIsDeep(t *testing.T) {
	is := is.New(t)
	b := NewStandardBoard()
	cp := b.Copy()
	cp.GetSquare(7, 7).Place(tilemapping.Tile{Letter: 5})
	cp.GetSquare(7, 7).SetPlayed()

	is.True(b.IsEmpty())
	is.True(!b.GetSquare(7, 7).HasLetter())
	is.True(!b.Equals(cp))
	is.True(b.Equals(b.Copy()))
}

func TestParseBlankBoard(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard(string(VsEmpty))
	is.NoErr(err)
	for row := 0; row < b.Dim(); row++ {
		for col := 0; col < b.Dim(); col++ {
			is.Equal(b.GetSquare(row, col).Letter(), tilemapping.Unset)
		}
	}
	is.True(b.IsEmpty())
	is.True(b.Equals(NewStandardBoard()))
}

func TestParseSquarePositions(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard(string(VsDiagonal))
	is.NoErr(err)

	is.Equal(b.GetSquare(1, 1).Letter(), tilemapping.Letter(1))
	is.Equal(b.GetSquare(2, 2).Letter(), tilemapping.Letter(2))
	is.Equal(b.GetSquare(13, 13).Letter(), tilemapping.Letter(25))

	z := b.GetSquare(14, 14)
	is.Equal(z.Letter(), tilemapping.Letter(26))
	is.True(z.IsBlank())
	bl, ok := z.BlankLetter()
	is.True(ok)
	is.Equal(bl, 'z')
	is.True(z.Played())
	// The multiplier layout is still the standard one.
	is.Equal(z.MultiplierType(), WordMultiplier)
}

func TestRoundTrip(t *testing.T) {
	is := is.New(t)
	for _, vs := range []VsWho{VsEmpty, VsTopRow, VsFirst, VsDiagonal} {
		b, err := ParseBoard(string(vs))
		is.NoErr(err)
		text := b.ToDisplayText()
		is.Equal(text, strings.TrimPrefix(string(vs), "\n"))

		b2, err := ParseBoard(text)
		is.NoErr(err)
		for row := 0; row < b.Dim(); row++ {
			for col := 0; col < b.Dim(); col++ {
				s1, s2 := b.GetSquare(row, col), b2.GetSquare(row, col)
				is.Equal(s1.Letter(), s2.Letter())
				is.Equal(s1.Played(), s2.Played())
				is.Equal(s1.IsBlank(), s2.IsBlank())
			}
		}
		is.True(b.Equals(b2))
		is.Equal(b.Fingerprint(), b2.Fingerprint())
	}
}

func TestParseBoardErrors(t *testing.T) {
	is := is.New(t)
	_, err := ParseBoard("")
	is.True(err != nil)

	// Drop the last row.
	lines := strings.Split(string(VsFirst), "\n")
	_, err = ParseBoard(strings.Join(lines[:len(lines)-4], "\n"))
	is.True(err != nil)

	bad := strings.Replace(string(VsFirst), "|F|", "|3|", 1)
	_, err = ParseBoard(bad)
	is.True(err != nil)
}

func TestSetFromTextLeavesBoardOnError(t *testing.T) {
	is := is.New(t)
	b, err := ParseBoard(string(VsFirst))
	is.NoErr(err)
	before := b.Copy()

	// The diagonal rows come before the bad cell in row 15.
	bad := strings.Replace(string(VsDiagonal), "|z|", "|3|", 1)
	is.True(b.SetFromText(bad) != nil)
	is.True(b.Equals(before))
	is.Equal(b.TilesPlayed(), 5)
}

func TestFingerprintChangesWithTiles(t *testing.T) {
	is := is.New(t)
	empty, err := ParseBoard(string(VsEmpty))
	is.NoErr(err)
	first, err := ParseBoard(string(VsFirst))
	is.NoErr(err)
	is.True(empty.Fingerprint() != first.Fingerprint())
}

func TestToColorText(t *testing.T) {
	is := is.New(t)
	ColorSupport = false
	b, err := ParseBoard(string(VsFirst))
	is.NoErr(err)
	text := b.ToColorText()
	is.True(strings.Contains(text, " 8|=     '       F I R S T     = |"))
}
