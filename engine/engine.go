package engine

import (
	"ludo/experiments/metrics"
	"ludo/game"
)

// Update is one resolved turn together with a snapshot of the game after it.
type Update struct {
	Index   int
	Outcome game.Outcome
	State   *game.Game
	Hash    game.StateHash
}

// UpdateGetter returns the oldest unread update, or false when none is pending.
type UpdateGetter func() (Update, bool)

type Engine interface {
	// Init starts a new game for the roster.
	Init(roster []game.Letter) (*game.Game, UpdateGetter, error)
	// Play resolves a single turn.
	Play(turn game.Turn) (game.Outcome, error)
	// Run plays turns in order until they run out or every player is done
	Run(turns []game.Turn) (gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric, err error)
}
