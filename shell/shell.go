package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/tilescore/broadcast"
	"github.com/domino14/tilescore/config"
	"github.com/domino14/tilescore/game"
	"github.com/domino14/tilescore/gamestore"
	"github.com/domino14/tilescore/tilemapping"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("no game loaded; use `new` or `load` first")
)

type ShellController struct {
	l   *readline.Instance
	out io.Writer

	config     *config.Config
	execPath   string
	gitVersion string

	game      *game.Game
	rack      *tilemapping.Rack
	store     *gamestore.Store
	publisher broadcast.Publisher
}

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func NewShellController(cfg *config.Config, execPath, gitVersion string) *ShellController {
	prompt := "tilescore"
	l, err := readline.NewEx(&readline.Config{
		Prompt:          fmt.Sprintf("\033[31m%s>\033[0m ", prompt),
		HistoryFile:     filepath.Join(os.TempDir(), "tilescore_readline.tmp"),
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(context.Background(), cfg, l.Stderr())
	sc.l = l
	sc.execPath = execPath
	sc.gitVersion = gitVersion
	return sc
}

// newController wires up the store and publisher named in cfg. Either one
// failing is logged and the shell carries on without it.
func newController(ctx context.Context, cfg *config.Config, out io.Writer) *ShellController {
	sc := &ShellController{
		out:       out,
		config:    cfg,
		publisher: broadcast.NopPublisher{},
	}
	// The NATS connect can spend a while backing off, so both collaborators
	// are brought up at once.
	g := errgroup.Group{}
	g.Go(func() error {
		p := cfg.GetString(config.ConfigDBPath)
		if p == "" {
			return nil
		}
		store, err := gamestore.Open(ctx, p)
		if err != nil {
			log.Error().Err(err).Str("path", p).Msg("could-not-open-game-store")
			return nil
		}
		sc.store = store
		return nil
	})
	g.Go(func() error {
		url := cfg.GetString(config.ConfigNatsURL)
		if url == "" {
			return nil
		}
		pub, err := broadcast.NewNATSPublisher(ctx, url, cfg.GetString(config.ConfigNatsSubjectPrefix))
		if err != nil {
			log.Error().Err(err).Str("url", url).Msg("could-not-connect-to-nats")
			return nil
		}
		sc.publisher = pub
		return nil
	})
	g.Wait()

	if p := cfg.GetString(config.ConfigTranscriptPath); p != "" {
		if r, err := sc.loadTranscript(p); err != nil {
			log.Error().Err(err).Str("path", p).Msg("could-not-load-transcript")
		} else {
			log.Info().Str("path", p).Msg(r.message)
		}
	}
	return sc
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	// Options are -name value pairs anywhere after the command.
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") && len(fields[idx]) > 1 {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			key := fields[idx][1:]
			options[key] = append(options[key], fields[idx+1])
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{
		cmd:     cmd,
		args:    args,
		options: options,
	}, nil
}

func (sc *ShellController) standardModeSwitch(line string, sig chan os.Signal) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "exit", "bye":
		sig <- syscall.SIGINT
		return nil, errors.New("sending quit signal")
	case "help":
		return sc.help(cmd)
	case "new":
		return sc.newGame(cmd)
	case "show", "s":
		return sc.show(cmd)
	case "play", "p":
		return sc.play(cmd)
	case "check":
		return sc.check(cmd)
	case "rack":
		return sc.setRack(cmd)
	case "turns":
		return sc.turns(cmd)
	case "gid":
		return sc.gid(cmd)
	case "load":
		return sc.load(cmd)
	case "save":
		return sc.save(cmd)
	case "board":
		return sc.loadBoard(cmd)
	default:
		log.Debug().Msgf("you said: %v", line)
		return nil, fmt.Errorf("unknown command %q; try `help`", cmd.cmd)
	}
}

// Execute runs a single command line, as given on the command line of the
// program.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.standardModeSwitch(line, sig)
	if err != nil {
		sc.showError(err)
	} else if resp != nil {
		sc.showMessage(resp.message)
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "bye" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.standardModeSwitch(line, sig)
		if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

// Cleanup releases the database and the NATS connection.
func (sc *ShellController) Cleanup() {
	if sc.store != nil {
		if err := sc.store.Close(); err != nil {
			log.Error().Err(err).Msg("closing-game-store")
		}
	}
	sc.publisher.Close()
}
