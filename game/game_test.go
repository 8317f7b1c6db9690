package game

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/mechanics"
	"github.com/domino14/tilescore/move"
	"github.com/domino14/tilescore/tilemapping"
)

var exampleGame = []string{
	"FIRST h8 h",
	"SECOND k8 v",
	"THIRD g13 h",
	"FOURTH c7 h",
	"FIFTH L5 v",
	"SIXTH k6 h",
	"FOURTHESTF c7 h",
}

func TestNewGameID(t *testing.T) {
	is := is.New(t)
	g1, g2 := NewGame(), NewGame()
	is.Equal(len(g1.ID()), 24)
	is.True(g1.ID() != g2.ID())
	ts, ok := IDTime(g1.ID())
	is.True(ok)
	is.True(time.Since(ts) < time.Minute)

	_, ok = IDTime("nope")
	is.True(!ok)
}

func TestPlayExampleGame(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	for _, p := range exampleGame {
		_, err := g.Play(p, nil)
		is.NoErr(err)
	}
	is.Equal(len(g.Turns()), 7)
	is.Equal(g.Total(), 144)
	last := g.LastTurn()
	is.Equal(last.Command, "FOURTHESTF C7 H")
	is.Equal(last.Coords, "7C")
	is.Equal(last.Score, 36)
	is.Equal(last.Summary(), "7C FOURTHESTF: FOURTHESTF 20, EI 3, SR 2, STSECOND 11 (36)")
}

func TestRejectedPlayChangesNothing(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	_, err := g.Play("FIRST h8 h", nil)
	is.NoErr(err)
	before := g.Board().Fingerprint()

	for _, bad := range []string{"SECOND h8 v", "APPLE a1 h", "A H8 V", "ABCDEFGH h9 v"} {
		_, err := g.Play(bad, nil)
		is.True(err != nil)
	}
	is.Equal(g.Board().Fingerprint(), before)
	is.Equal(len(g.Turns()), 1)
	is.Equal(g.Total(), 18)

	_, err = g.Play("A H8 V", nil)
	var perr *move.CommandParseError
	is.True(errors.As(err, &perr))
	_, err = g.Play("APPLE a1 h", nil)
	var verr *mechanics.MoveValidationError
	is.True(errors.As(err, &verr))
}

func TestPlayWithRack(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	_, err := g.Play("FIRST h8 h", tilemapping.RackFromString("XYZ"))
	is.True(errors.Is(err, mechanics.ErrLettersNotOnRack))
	is.True(g.Board().IsEmpty())

	// One matching tile is enough by default.
	turn, err := g.Play("FIRST h8 h", tilemapping.RackFromString("FXYZ"))
	is.NoErr(err)
	is.Equal(turn.Rack, "FXYZ")

	g.SetStrictRack(true)
	_, err = g.Play("FIRSTS h8 h", tilemapping.RackFromString("T"))
	is.True(errors.Is(err, mechanics.ErrLettersNotOnRack))
	_, err = g.Play("FIRSTS h8 h", tilemapping.RackFromString("S"))
	is.NoErr(err)
}

func TestCheckDoesNotCommit(t *testing.T) {
	is := is.New(t)
	g := NewGame()
	cmd, res, err := g.Check("FIRST h8 h", nil)
	is.NoErr(err)
	is.Equal(cmd.Word(), "FIRST")
	is.Equal(res.Score(), 18)
	is.True(g.Board().IsEmpty())
	is.Equal(len(g.Turns()), 0)
}

func TestFromBoard(t *testing.T) {
	is := is.New(t)
	b, err := board.ParseBoard(string(board.VsFirst))
	is.NoErr(err)
	g := FromBoard("", b, []Turn{{Command: "FIRST H8 H", Coords: "8H", Score: 18}})
	is.True(g.ID() != "")
	is.Equal(g.Total(), 18)

	_, err = g.Play("SECOND k8 v", nil)
	is.NoErr(err)
	is.Equal(g.Total(), 36)
}

func TestStartBoard(t *testing.T) {
	is := is.New(t)
	is.Equal(NewGame().StartBoard(), "")

	b, err := board.ParseBoard(string(board.VsFirst))
	is.NoErr(err)
	start := b.ToDisplayText()
	g := FromBoard("", b, nil)
	is.Equal(g.StartBoard(), start)

	_, err = g.Play("SECOND k8 v", nil)
	is.NoErr(err)
	is.Equal(g.StartBoard(), start)

	// History without a known start leaves it unset.
	g = FromBoard("", g.Board(), g.Turns())
	is.Equal(g.StartBoard(), "")
}

func TestToDisplayText(t *testing.T) {
	is := is.New(t)
	board.ColorSupport = false
	g := NewGame()
	_, err := g.Play("FIRST h8 h", nil)
	is.NoErr(err)
	text := g.ToDisplayText()
	is.True(strings.Contains(text, "Game "+g.ID()))
	is.True(strings.Contains(text, "Total: 18"))
	is.True(strings.Contains(text, " 1. 8H FIRST: FIRST 18 (18)"))
	is.True(strings.Contains(text, "F I R S T"))
}
