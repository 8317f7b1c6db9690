// Package gamestore saves games to SQLite, one row per game.
package gamestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/domino14/tilescore/board"
	"github.com/domino14/tilescore/game"
)

var (
	ErrNotFound = errors.New("game not found")
	// ErrConflict means the stored game is not the one the caller
	// expected to overwrite, or already exists on create.
	ErrConflict = errors.New("game was changed by someone else")
)

const schema = `
CREATE TABLE IF NOT EXISTS games (
	id          TEXT PRIMARY KEY,
	board       TEXT NOT NULL,
	start_board TEXT NOT NULL DEFAULT '',
	turns       TEXT NOT NULL,
	total       INTEGER NOT NULL,
	fingerprint INTEGER NOT NULL,
	created_at  INTEGER NOT NULL,
	updated_at  INTEGER NOT NULL
)`

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. ":memory:" gives
// a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if dir := filepath.Dir(path); path != ":memory:" && dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("can't open database: %w", err)
	}
	// One connection: SQLite has a single writer, and each connection to
	// :memory: would otherwise see its own empty database.
	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("can't connect to database: %w", err)
	}
	if _, err = db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	if _, err = db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("can't create table: %w", err)
	}
	log.Debug().Str("path", path).Msg("opened-game-store")
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type row struct {
	board       string
	startBoard  string
	turns       string
	total       int
	fingerprint int64
}

func toRow(g *game.Game) (row, error) {
	turns, err := json.Marshal(g.Turns())
	if err != nil {
		return row{}, err
	}
	return row{
		board:       g.Board().ToDisplayText(),
		startBoard:  g.StartBoard(),
		turns:       string(turns),
		total:       g.Total(),
		fingerprint: int64(g.Board().Fingerprint()),
	}, nil
}

// Create stores a new game. It fails with ErrConflict if the id is taken.
func (s *Store) Create(ctx context.Context, g *game.Game) error {
	r, err := toRow(g)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO games (id, board, start_board, turns, total, fingerprint, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		g.ID(), r.board, r.startBoard, r.turns, r.total, r.fingerprint, now, now)
	if err != nil {
		return fmt.Errorf("insert game %s: %w", g.ID(), err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("create %s: %w", g.ID(), ErrConflict)
	}
	return nil
}

// Load reads a game back.
func (s *Store) Load(ctx context.Context, id string) (*game.Game, error) {
	var boardText, startBoard, turnsJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT board, start_board, turns FROM games WHERE id = ?`, id).
		Scan(&boardText, &startBoard, &turnsJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load %s: %w", id, ErrNotFound)
	} else if err != nil {
		return nil, err
	}
	b, err := board.ParseBoard(boardText)
	if err != nil {
		return nil, fmt.Errorf("stored board for %s: %w", id, err)
	}
	var turns []game.Turn
	if err := json.Unmarshal([]byte(turnsJSON), &turns); err != nil {
		return nil, fmt.Errorf("stored turns for %s: %w", id, err)
	}
	g := game.FromBoard(id, b, turns)
	g.SetStartBoard(startBoard)
	return g, nil
}

// Update overwrites a stored game, but only if the stored board still has
// the fingerprint the caller last saw. Otherwise it returns ErrConflict
// and leaves the row alone.
func (s *Store) Update(ctx context.Context, g *game.Game, expectedFingerprint uint64) error {
	r, err := toRow(g)
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, `
		UPDATE games SET board = ?, turns = ?, total = ?, fingerprint = ?, updated_at = ?
		WHERE id = ? AND fingerprint = ?`,
		r.board, r.turns, r.total, r.fingerprint, time.Now().Unix(),
		g.ID(), int64(expectedFingerprint))
	if err != nil {
		return fmt.Errorf("update game %s: %w", g.ID(), err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 1 {
		return nil
	}
	var exists int
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM games WHERE id = ?`, g.ID()).Scan(&exists)
	if err != nil {
		return err
	}
	if exists == 0 {
		return fmt.Errorf("update %s: %w", g.ID(), ErrNotFound)
	}
	log.Debug().Str("gameID", g.ID()).Msg("stale-fingerprint")
	return fmt.Errorf("update %s: %w", g.ID(), ErrConflict)
}

// Save creates the game if the store has never seen it, and otherwise
// updates it, guarded by the fingerprint of the board before the last play.
func (s *Store) Save(ctx context.Context, g *game.Game, previousFingerprint uint64) error {
	err := s.Update(ctx, g, previousFingerprint)
	if errors.Is(err, ErrNotFound) {
		return s.Create(ctx, g)
	}
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return fmt.Errorf("delete %s: %w", id, ErrNotFound)
	}
	return nil
}
