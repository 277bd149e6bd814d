package experiments

import (
	"time"

	"ludo/experiments/metrics"
	"ludo/game"

	"github.com/samber/lo"
)

// Summary aggregates the records of one run.
type Summary struct {
	Games          int
	Turns          int
	Captures       int
	Completed      int // players who finished both tokens, over all games
	Duration       time.Duration
	TurnsPerSecond float64
	Leaders        map[game.Letter]int // games led by each player at the end
	Rules          map[string]int      // turns resolved by each rule
}

func Summarize(result Result) Summary {
	s := Summary{
		Games:     len(result.Games),
		Turns:     lo.SumBy(result.Games, func(g metrics.GameRecord) int { return g.TotalTurns }),
		Captures:  lo.SumBy(result.Games, func(g metrics.GameRecord) int { return g.Captures }),
		Completed: lo.SumBy(result.Games, func(g metrics.GameRecord) int { return g.Completed }),
		Duration:  lo.SumBy(result.Games, func(g metrics.GameRecord) time.Duration { return g.Duration }),
		Leaders: lo.CountValuesBy(result.Games, func(g metrics.GameRecord) game.Letter {
			return g.Leader
		}),
		Rules: lo.CountValuesBy(result.Turns, func(t metrics.TurnRecord) string {
			return t.Rule
		}),
	}
	if s.Duration > 0 {
		s.TurnsPerSecond = float64(s.Turns) / s.Duration.Seconds()
	}
	return s
}
