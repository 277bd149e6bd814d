package experiments

import (
	"fmt"

	"ludo/engine"
	"ludo/experiments/metrics"
	"ludo/game"
	"ludo/meta"
	"ludo/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Games   int
	Turns   int // rolls generated per game
	Seed    uint64
	Players []game.Letter
}

type Option func(*Config)

func WithGames(n int) Option {
	return func(c *Config) {
		c.Games = n
	}
}

func WithTurns(n int) Option {
	return func(c *Config) {
		c.Turns = n
	}
}

func WithSeed(seed uint64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

func WithPlayers(players []game.Letter) Option {
	return func(c *Config) {
		c.Players = players
	}
}

func NewConfig(options ...Option) Config {
	players, _ := game.ParseRoster(meta.PLAYERS)
	c := Config{
		Games:   meta.GAMES,
		Turns:   meta.TURNS,
		Seed:    meta.SEED,
		Players: players,
	}
	for _, option := range options {
		option(&c)
	}
	return c
}

// Result holds the records of one experiment run.
type Result struct {
	Run   metrics.RunConfig
	Games []metrics.GameRecord
	Turns []metrics.TurnRecord
}

// RandomTurns deals n rolls to the roster in round-robin order.
func RandomTurns(r *rand.Rand, roster []game.Letter, n int) []game.Turn {
	turns := make([]game.Turn, 0, n)
	for i := 0; i < n; i++ {
		turns = append(turns, game.Turn{
			Player: roster[i%len(roster)],
			Steps:  utils.RandInt(r, 1, game.DieFaces),
		})
	}
	return turns
}

// Run plays the configured number of randomly rolled games. Each game gets its
// own seed derived from the run seed so single games can be replayed.
func Run(config Config) (Result, error) {
	if config.Games < 1 || config.Turns < 1 {
		return Result{}, &game.InvalidArgumentError{
			Name:   "config",
			Value:  fmt.Sprintf("%d games x %d turns", config.Games, config.Turns),
			Reason: "need at least one game and one turn",
		}
	}

	// Games never run past the engine's default turn limit.
	config.Turns = utils.Clamp(config.Turns, 1, meta.MAX_TURNS)

	runID := uuid.New()
	result := Result{
		Run: metrics.RunConfig{
			ID:      runID.String(),
			Games:   config.Games,
			Turns:   config.Turns,
			Seed:    config.Seed,
			Players: game.JoinLetters(config.Players),
		},
	}

	log.Info().Str("run", runID.String()).Msgf("starting random experiment with %d games of %d turns...", config.Games, config.Turns)

	seeds := rand.New(rand.NewSource(config.Seed))
	for i := 0; i < config.Games; i++ {
		seed := seeds.Uint64()
		gameMetric, turnMetrics, err := runGame(config.Players, config.Turns, seed)
		if err != nil {
			return Result{}, fmt.Errorf("game %d: %w", i+1, err)
		}

		result.Games = append(result.Games, metrics.GameRecord{
			ID:         i + 1,
			Seed:       seed,
			GameMetric: gameMetric,
		})
		for _, tm := range turnMetrics {
			result.Turns = append(result.Turns, metrics.TurnRecord{
				Game:       i + 1,
				TurnMetric: tm,
			})
		}

		log.Debug().Msgf("completed game %d of %d with leader %s", i+1, config.Games, gameMetric.Leader)
	}

	log.Info().Str("run", runID.String()).Msg("completed random experiment")
	return result, nil
}

// Store writes the records of a run under dir.
func Store(dir string, result Result) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteRunConfig(result.Run); err != nil {
		return "", err
	}
	log.Info().Msg("stored run config")

	if err := writer.WriteGameRecords(result.Games); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteTurnRecords(result.Turns); err != nil {
		return "", err
	}
	log.Info().Msg("stored turn records")

	return writer.Dir(), nil
}

// runGame plays one game of random rolls
func runGame(players []game.Letter, turns int, seed uint64) (metrics.GameMetric, []metrics.TurnMetric, error) {
	e := engine.NewLocalEngine(engine.WithMetrics(), engine.WithMaxTurns(turns))
	if _, _, err := e.Init(players); err != nil {
		return metrics.GameMetric{}, nil, err
	}
	r := rand.New(rand.NewSource(seed))
	return e.Run(RandomTurns(r, players, turns))
}
