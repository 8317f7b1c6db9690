// Package broadcast fans game updates out to anyone watching a game.
package broadcast

import (
	"context"
	"encoding/json"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/tilescore/game"
)

// GameUpdateEvent names the event in every GameUpdate.
const GameUpdateEvent = "GameUpdate"

// GameUpdate is sent after every accepted play. Board is the text grid.
type GameUpdate struct {
	Event    string     `json:"event"`
	GameID   string     `json:"gameID"`
	Board    string     `json:"board"`
	LastTurn *game.Turn `json:"lastTurn,omitempty"`
	Total    int        `json:"total"`
}

// UpdateFromGame snapshots g.
func UpdateFromGame(g *game.Game) GameUpdate {
	return GameUpdate{
		Event:    GameUpdateEvent,
		GameID:   g.ID(),
		Board:    g.Board().ToDisplayText(),
		LastTurn: g.LastTurn(),
		Total:    g.Total(),
	}
}

type Publisher interface {
	PublishGameUpdate(ctx context.Context, u GameUpdate) error
	Close()
}

// NopPublisher drops every update. It is used when no NATS server is
// configured.
type NopPublisher struct{}

func (NopPublisher) PublishGameUpdate(context.Context, GameUpdate) error {
	return nil
}

func (NopPublisher) Close() {}

// conn is the part of *nats.Conn the publisher uses.
type conn interface {
	Publish(subj string, data []byte) error
	FlushTimeout(timeout time.Duration) error
	Drain() error
}

var dial = func(url string) (conn, error) {
	return nats.Connect(url, nats.Name("tilescore"))
}

const (
	connectAttempts = 5
	publishAttempts = 3
	flushTimeout    = 2 * time.Second
)

// NATSPublisher publishes each update as JSON on <prefix>.<gameID>.
type NATSPublisher struct {
	nc     conn
	prefix string
	delay  time.Duration
}

// NewNATSPublisher connects to url, backing off between attempts.
func NewNATSPublisher(ctx context.Context, url, prefix string) (*NATSPublisher, error) {
	p := &NATSPublisher{prefix: prefix, delay: 100 * time.Millisecond}
	err := retry.Do(
		func() error {
			nc, err := dial(url)
			if err != nil {
				return err
			}
			p.nc = nc
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(connectAttempts),
		retry.Delay(p.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Str("url", url).Msg("nats-connect-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return nil, err
	}
	log.Info().Str("url", url).Str("prefix", prefix).Msg("connected-to-nats")
	return p, nil
}

// Subject is the subject updates for gameID go out on.
func (p *NATSPublisher) Subject(gameID string) string {
	return p.prefix + "." + gameID
}

func (p *NATSPublisher) PublishGameUpdate(ctx context.Context, u GameUpdate) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	subject := p.Subject(u.GameID)
	return retry.Do(
		func() error {
			if err := p.nc.Publish(subject, data); err != nil {
				return err
			}
			return p.nc.FlushTimeout(flushTimeout)
		},
		retry.Context(ctx),
		retry.Attempts(publishAttempts),
		retry.Delay(p.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Str("subject", subject).Msg("publish-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

func (p *NATSPublisher) Close() {
	if err := p.nc.Drain(); err != nil {
		log.Err(err).Msg("nats-drain")
	}
}
