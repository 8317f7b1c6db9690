package shell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/broadcast"
	"github.com/domino14/tilescore/config"
	"github.com/domino14/tilescore/game"
	"github.com/domino14/tilescore/mechanics"
	"github.com/domino14/tilescore/move"
	"github.com/domino14/tilescore/tilemapping"
	"github.com/domino14/tilescore/transcript"
)

type Response struct {
	message string
}

type CmdOptions map[string][]string

func (c CmdOptions) String(key string) string {
	v := c[key]
	if len(v) > 0 {
		return v[0]
	}
	return ""
}

func msg(message string) *Response {
	return &Response{message: message}
}

func (sc *ShellController) strictRack() bool {
	return sc.config.GetBool(config.ConfigStrictRack)
}

// setGame makes g the current game and clears the rack.
func (sc *ShellController) setGame(g *game.Game) {
	g.SetStrictRack(sc.strictRack())
	sc.game = g
	sc.rack = nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage("standard")
	}
	return usageTopic(cmd.args[0])
}

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	sc.setGame(game.NewGame())
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) gid(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ID()), nil
}

func (sc *ShellController) setRack(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		if sc.rack == nil {
			return msg("no rack set"), nil
		}
		return msg(sc.rack.String()), nil
	}
	if cmd.args[0] == "-" {
		sc.rack = nil
		return msg("rack cleared"), nil
	}
	rack, err := parseRack(cmd.args[0])
	if err != nil {
		return nil, err
	}
	sc.rack = rack
	return msg("rack set to " + rack.String()), nil
}

func parseRack(s string) (*tilemapping.Rack, error) {
	s = strings.ToUpper(s)
	for _, r := range s {
		if _, _, err := tilemapping.LetterFromRune(r); err != nil {
			return nil, err
		}
	}
	return tilemapping.RackFromString(s), nil
}

// playArgs turns the arguments of play and check into a play command and
// the rack to check it against.
func (sc *ShellController) playArgs(cmd *shellcmd) (string, *tilemapping.Rack, error) {
	if sc.game == nil {
		return "", nil, errNoGame
	}
	if len(cmd.args) != 3 {
		return "", nil, errors.New("usage: " + cmd.cmd + " WORD COORD DIR [-rack R]")
	}
	rack := sc.rack
	if r := cmd.options.String("rack"); r != "" {
		var err error
		if rack, err = parseRack(r); err != nil {
			return "", nil, err
		}
	}
	return strings.Join(cmd.args, " "), rack, nil
}

func (sc *ShellController) check(cmd *shellcmd) (*Response, error) {
	text, rack, err := sc.playArgs(cmd)
	if err != nil {
		return nil, err
	}
	pc, res, err := sc.game.Check(text, rack)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("%s %s would score %d: %s",
		pc.BoardCoords(), pc.Word(), res.Score(), res.String())), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	text, rack, err := sc.playArgs(cmd)
	if err != nil {
		return nil, err
	}
	var newTiles []tilemapping.Tile
	if pc, err := move.ParsePlayCommand(text); err == nil {
		newTiles, _ = mechanics.NewTiles(pc, sc.game.Board())
	}
	before := sc.game.Board().Fingerprint()
	turn, err := sc.game.Play(text, rack)
	if err != nil {
		return nil, err
	}
	if rack != nil && rack == sc.rack {
		sc.rack = takeTiles(rack, newTiles)
	}

	out := sc.game.ToDisplayText() + "\n" + turn.Summary()
	if warning := sc.afterPlay(context.Background(), before); warning != "" {
		out += "\n" + warning
	}
	return msg(out), nil
}

// takeTiles removes the played tiles from a copy of the rack, skipping any
// it does not hold.
func takeTiles(rack *tilemapping.Rack, tiles []tilemapping.Tile) *tilemapping.Rack {
	leave := rack.Copy()
	for _, t := range tiles {
		ml := t.Letter
		if t.Blank {
			ml = tilemapping.Blank
		}
		if leave.Has(ml) {
			leave.Take(ml)
		}
	}
	return leave
}

// afterPlay saves and broadcasts the current game. Failures do not undo
// the play; they come back as a warning for the user.
func (sc *ShellController) afterPlay(ctx context.Context, before uint64) string {
	var warnings []string
	if sc.store != nil {
		if err := sc.store.Save(ctx, sc.game, before); err != nil {
			log.Error().Err(err).Str("gameID", sc.game.ID()).Msg("could-not-save-game")
			warnings = append(warnings, "warning: game not saved: "+err.Error())
		}
	}
	err := sc.publisher.PublishGameUpdate(ctx, broadcast.UpdateFromGame(sc.game))
	if err != nil {
		log.Error().Err(err).Str("gameID", sc.game.ID()).Msg("could-not-publish-update")
		warnings = append(warnings, "warning: update not published: "+err.Error())
	}
	return strings.Join(warnings, "\n")
}

func (sc *ShellController) turns(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	var sb strings.Builder
	for i, t := range sc.game.Turns() {
		fmt.Fprintf(&sb, "%2d. %s\n", i+1, t.Summary())
	}
	fmt.Fprintf(&sb, "Total: %d", sc.game.Total())
	return msg(sb.String()), nil
}

func (sc *ShellController) loadTranscript(path string) (*Response, error) {
	t, err := transcript.LoadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := transcript.Replay(t, sc.strictRack())
	if g == nil {
		return nil, err
	}
	sc.setGame(g)
	if err != nil {
		return nil, fmt.Errorf("loaded %d of %d moves: %w", len(g.Turns()), len(t.Moves), err)
	}
	return msg(fmt.Sprintf("loaded %d moves, total %d", len(g.Turns()), g.Total())), nil
}

func (sc *ShellController) load(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need arguments for load")
	}
	if cmd.args[0] == "db" {
		if len(cmd.args) < 2 {
			return nil, errors.New("need a game id")
		}
		if sc.store == nil {
			return nil, errors.New("no database configured; start with --db-path")
		}
		g, err := sc.store.Load(context.Background(), cmd.args[1])
		if err != nil {
			return nil, err
		}
		sc.setGame(g)
		return msg(sc.game.ToDisplayText()), nil
	}
	r, err := sc.loadTranscript(cmd.args[0])
	if err != nil {
		return nil, err
	}
	return msg(sc.game.ToDisplayText() + "\n" + r.message), nil
}

func (sc *ShellController) save(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if cmd.args == nil {
		return nil, errors.New("need a file to save to")
	}
	if err := transcript.FromGame(sc.game).WriteFile(cmd.args[0]); err != nil {
		return nil, err
	}
	return msg("saved to " + cmd.args[0]), nil
}

func (sc *ShellController) loadBoard(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return nil, errors.New("need a board file")
	}
	dat, err := os.ReadFile(cmd.args[0])
	if err != nil {
		return nil, err
	}
	b, err := board.ParseBoard(string(dat))
	if err != nil {
		return nil, err
	}
	sc.setGame(game.FromBoard("", b, nil))
	return msg(sc.game.ToDisplayText()), nil
}
