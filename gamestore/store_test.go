package gamestore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateLoad(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	g := game.NewGame()
	_, err := g.Play("FIRST h8 h", nil)
	is.NoErr(err)
	is.NoErr(s.Create(ctx, g))
	is.True(errors.Is(s.Create(ctx, g), ErrConflict))

	loaded, err := s.Load(ctx, g.ID())
	is.NoErr(err)
	is.Equal(loaded.ID(), g.ID())
	is.Equal(loaded.Total(), 18)
	is.True(loaded.Board().Equals(g.Board()))
	assert.Equal(t, g.Turns(), loaded.Turns())

	_, err = s.Load(ctx, "missing")
	is.True(errors.Is(err, ErrNotFound))
}

func TestUpdateDetectsStaleFingerprint(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	g := game.NewGame()
	is.NoErr(s.Create(ctx, g))
	empty := g.Board().Fingerprint()

	// Two sessions load the same game.
	a, err := s.Load(ctx, g.ID())
	is.NoErr(err)
	b, err := s.Load(ctx, g.ID())
	is.NoErr(err)

	_, err = a.Play("FIRST h8 h", nil)
	is.NoErr(err)
	is.NoErr(s.Update(ctx, a, empty))

	_, err = b.Play("APPLE h8 v", nil)
	is.NoErr(err)
	is.True(errors.Is(s.Update(ctx, b, empty), ErrConflict))

	stored, err := s.Load(ctx, g.ID())
	is.NoErr(err)
	is.Equal(stored.Total(), 18)
	is.Equal(stored.LastTurn().Command, "FIRST H8 H")
}

func TestSaveAndDelete(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	g := game.NewGame()
	before := g.Board().Fingerprint()
	_, err := g.Play("FIRST h8 h", nil)
	is.NoErr(err)
	is.NoErr(s.Save(ctx, g, before))

	before = g.Board().Fingerprint()
	_, err = g.Play("SECOND k8 v", nil)
	is.NoErr(err)
	is.NoErr(s.Save(ctx, g, before))

	loaded, err := s.Load(ctx, g.ID())
	is.NoErr(err)
	is.Equal(loaded.Total(), 36)

	is.NoErr(s.Delete(ctx, g.ID()))
	is.True(errors.Is(s.Delete(ctx, g.ID()), ErrNotFound))
	is.True(errors.Is(s.Update(ctx, g, g.Board().Fingerprint()), ErrNotFound))
}

func TestOpenFile(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "games.db")
	s, err := Open(ctx, path)
	is.NoErr(err)
	g := game.NewGame()
	is.NoErr(s.Create(ctx, g))
	is.NoErr(s.Close())

	s, err = Open(ctx, path)
	is.NoErr(err)
	defer s.Close()
	_, err = s.Load(ctx, g.ID())
	is.NoErr(err)
}

func TestStartBoardSurvivesSave(t *testing.T) {
	is := is.New(t)
	ctx := context.Background()
	s := openTestStore(t)

	b, err := board.ParseBoard(string(board.VsFirst))
	is.NoErr(err)
	g := game.FromBoard("", b, nil)
	before := g.Board().Fingerprint()
	_, err = g.Play("SECOND k8 v", nil)
	is.NoErr(err)
	is.NoErr(s.Save(ctx, g, before))

	loaded, err := s.Load(ctx, g.ID())
	is.NoErr(err)
	is.Equal(loaded.StartBoard(), g.StartBoard())
	is.True(loaded.StartBoard() != "")
}
