// Package transcript reads and writes games as YAML move lists that can
// be replayed onto a board.
package transcript

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/game"
	"github.com/domino14/tilescore/tilemapping"
)

// Move is one line of a transcript. Rack is optional; when it is set the
// play is checked against it.
type Move struct {
	Play string `yaml:"play"`
	Rack string `yaml:"rack,omitempty"`
}

// Transcript is a replayable game. Board, if set, is a text grid to start
// from instead of an empty board.
type Transcript struct {
	ID    string `yaml:"id,omitempty"`
	Board string `yaml:"board,omitempty"`
	Moves []Move `yaml:"moves"`
}

// ReplayError reports the move a replay stopped at.
type ReplayError struct {
	Index int
	Play  string
	Err   error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("move %d (%s): %v", e.Index+1, e.Play, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

func Load(r io.Reader) (*Transcript, error) {
	t := &Transcript{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	return t, nil
}

func LoadFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

// Replay plays every move in order on a new game, stopping at the first
// one that is rejected. The game so far is returned along with the error.
func Replay(t *Transcript, strictRack bool) (*game.Game, error) {
	b := board.NewStandardBoard()
	if t.Board != "" {
		if err := b.SetFromText(t.Board); err != nil {
			return nil, fmt.Errorf("transcript board: %w", err)
		}
	}
	g := game.FromBoard(t.ID, b, nil)
	g.SetStrictRack(strictRack)

	for i, m := range t.Moves {
		var rack *tilemapping.Rack
		if m.Rack != "" {
			rack = tilemapping.RackFromString(m.Rack)
		}
		if _, err := g.Play(m.Play, rack); err != nil {
			return g, &ReplayError{Index: i, Play: m.Play, Err: err}
		}
	}
	log.Debug().Str("gameID", g.ID()).Int("moves", len(t.Moves)).
		Int("total", g.Total()).Msg("transcript-replayed")
	return g, nil
}

// FromGame builds a transcript that replays g from the board it started on.
func FromGame(g *game.Game) *Transcript {
	t := &Transcript{ID: g.ID(), Board: g.StartBoard()}
	for _, turn := range g.Turns() {
		t.Moves = append(t.Moves, Move{Play: turn.Command, Rack: turn.Rack})
	}
	return t
}

func (t *Transcript) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return err
	}
	return enc.Close()
}

func (t *Transcript) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
