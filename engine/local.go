package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGameOver  = errors.New("game is over - no turns allowed")
	ErrTurnLimit = errors.New("turn limit reached")
)

var _ Engine = (*LocalEngine)(nil)

type LocalEngine struct {
	ID        uuid.UUID
	state     *game.Game
	collector metrics.Collector
	maxTurns  int
	played    int
	gameOver  bool

	mu      sync.Mutex
	pending []Update
}

type Option func(*LocalEngine)

// WithMetrics records per-turn and per-game metrics.
func WithMetrics() Option {
	return func(e *LocalEngine) {
		e.collector = metrics.NewCollector()
	}
}

func WithMaxTurns(n int) Option {
	return func(e *LocalEngine) {
		e.maxTurns = n
	}
}

func NewLocalEngine(opts ...Option) *LocalEngine {
	e := &LocalEngine{
		collector: metrics.NewDummyCollector(),
		maxTurns:  meta.MAX_TURNS,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *LocalEngine) Init(roster []game.Letter) (*game.Game, UpdateGetter, error) {
	g, err := game.NewGame(roster)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot init engine: %w", err)
	}

	e.ID = uuid.New()
	e.state = g
	e.played = 0
	e.gameOver = false
	e.mu.Lock()
	e.pending = nil
	e.mu.Unlock()
	e.collector.Start(e.ID, g.Roster())

	log.Debug().Str("game", e.ID.String()).Msgf("game started with players %s", game.JoinLetters(g.Roster()))

	return g.Copy(), e.nextUpdate, nil
}

func (e *LocalEngine) Play(turn game.Turn) (game.Outcome, error) {
	if e.state == nil {
		return game.Outcome{}, game.ErrGameNotStarted
	}
	if e.gameOver {
		return game.Outcome{}, ErrGameOver
	}
	if e.played >= e.maxTurns {
		return game.Outcome{}, ErrTurnLimit
	}

	start := time.Now()
	out, err := e.state.Apply(turn)
	if err != nil {
		log.Warn().Str("game", e.ID.String()).Err(err).Msg("rejected turn")
		return game.Outcome{}, err
	}
	e.collector.AddTurn(e.played+1, out, time.Since(start))

	e.mu.Lock()
	e.pending = append(e.pending, Update{
		Index:   e.played,
		Outcome: out,
		State:   e.state.Copy(),
		Hash:    e.state.Hash(),
	})
	e.mu.Unlock()
	e.played++

	log.Debug().
		Str("game", e.ID.String()).
		Int("turn", e.played).
		Str("rule", out.Rule.String()).
		Int("captured", len(out.Captured)).
		Msgf("player %s rolled %d", turn.Player, turn.Steps)

	if out.Done {
		log.Info().Str("game", e.ID.String()).Msgf("player %s is done after %d turns", turn.Player, e.played)
	}
	if e.state.Completed() {
		e.gameOver = true
		log.Info().Str("game", e.ID.String()).Msg("every player is done")
	}
	return out, nil
}

// Run executes the turns until they run out or the game is over.
func (e *LocalEngine) Run(turns []game.Turn) (metrics.GameMetric, []metrics.TurnMetric, error) {
	if e.state == nil {
		return metrics.GameMetric{}, nil, game.ErrGameNotStarted
	}
	for i, turn := range turns {
		if e.gameOver {
			log.Info().Str("game", e.ID.String()).Msgf("stopped with %d of %d turns left", len(turns)-i, len(turns))
			break
		}
		if _, err := e.Play(turn); err != nil {
			var te *game.InvalidTurnError
			if errors.As(err, &te) {
				te.Index = i
			}
			return metrics.GameMetric{}, nil, err
		}
	}
	return e.collector.Complete(e.state), e.collector.Turns(), nil
}

// Positions renders every token in roster order.
func (e *LocalEngine) Positions() []string {
	if e.state == nil {
		return nil
	}
	return e.state.Positions()
}

// State returns a snapshot of the current game.
func (e *LocalEngine) State() *game.Game {
	if e.state == nil {
		return nil
	}
	return e.state.Copy()
}

func (e *LocalEngine) GameOver() bool {
	return e.gameOver
}

func (e *LocalEngine) nextUpdate() (Update, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) == 0 {
		return Update{}, false
	}
	u := e.pending[0]
	e.pending = e.pending[1:]
	return u, true
}
