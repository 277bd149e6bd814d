package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"ludo/experiments"
	"ludo/game"
	"ludo/meta"
	"ludo/scenario"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	playRoster string
	playTurns  []string
	playFile   string
	checkFile  string

	randomGames   int
	randomTurns   int
	randomSeed    uint64
	randomPlayers string
	randomOut     string
)

// playCmd plays a game given on the command line or in a scenario file.
var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a list of turns and print the final positions",
	Example: "  ludo play --roster A,B --turn A:6 --turn A:4\n" +
		"  ludo play --file game.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadPlay()
		if err != nil {
			return err
		}
		g, positions, err := s.Play()
		if err != nil {
			return err
		}
		printGame(cmd.OutOrStdout(), g, positions)
		return nil
	},
}

// checkCmd compares a scenario's result with its expected positions.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Play a scenario file and compare with its expected positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scenario.Load(checkFile)
		if err != nil {
			return err
		}
		positions, err := s.Check()
		var mismatch *scenario.MismatchError
		if errors.As(err, &mismatch) {
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s\n  expected %s\n  actual   %s\n",
				label(s, checkFile), strings.Join(mismatch.Expected, " "), strings.Join(mismatch.Actual, " "))
			return err
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok   %s %s\n", label(s, checkFile), strings.Join(positions, " "))
		return nil
	},
}

// randomCmd runs the random-roll experiment.
var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Play many randomly rolled games and store their records as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		players, err := game.ParseRoster(randomPlayers)
		if err != nil {
			return err
		}
		config := experiments.NewConfig(
			experiments.WithGames(randomGames),
			experiments.WithTurns(randomTurns),
			experiments.WithSeed(randomSeed),
			experiments.WithPlayers(players),
		)
		result, err := experiments.Run(config)
		if err != nil {
			return err
		}
		dir, err := experiments.Store(randomOut, result)
		if err != nil {
			return err
		}
		log.Info().Msgf("records written to %s", dir)

		printSummary(cmd.OutOrStdout(), experiments.Summarize(result))
		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&playRoster, "roster", "", "comma separated players, e.g. A,B")
	playCmd.Flags().StringArrayVar(&playTurns, "turn", nil, "turn as LETTER:ROLL, repeatable")
	playCmd.Flags().StringVarP(&playFile, "file", "f", "", "scenario file")
	playCmd.MarkFlagsMutuallyExclusive("file", "roster")
	playCmd.MarkFlagsMutuallyExclusive("file", "turn")

	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "scenario file")
	_ = checkCmd.MarkFlagRequired("file")

	randomCmd.Flags().IntVar(&randomGames, "games", meta.GAMES, "number of games")
	randomCmd.Flags().IntVar(&randomTurns, "turns", meta.TURNS, "rolls per game")
	randomCmd.Flags().Uint64Var(&randomSeed, "seed", meta.SEED, "random seed")
	randomCmd.Flags().StringVar(&randomPlayers, "players", meta.PLAYERS, "comma separated players")
	randomCmd.Flags().StringVar(&randomOut, "out", meta.OUT_DIR, "output directory")
}

func loadPlay() (*scenario.Scenario, error) {
	if playFile != "" {
		return scenario.Load(playFile)
	}
	roster, err := game.ParseRoster(playRoster)
	if err != nil {
		return nil, err
	}
	s := &scenario.Scenario{Players: roster}
	for _, raw := range playTurns {
		turn, err := game.ParseTurn(raw)
		if err != nil {
			return nil, err
		}
		s.Turns = append(s.Turns, turn)
	}
	return s, nil
}

func printGame(w io.Writer, g *game.Game, positions []string) {
	fmt.Fprintln(w, strings.Join(positions, " "))
	for _, l := range g.Roster() {
		p, _ := g.Player(l)
		fmt.Fprintf(w, "%s  p=%-3s q=%-3s %s\n", l, p.Label(game.P), p.Label(game.Q), p.State())
	}
}

func printSummary(w io.Writer, s experiments.Summary) {
	fmt.Fprintf(w, "games %d  turns %d  captures %d  completed %d  %.0f turns/s\n",
		s.Games, s.Turns, s.Captures, s.Completed, s.TurnsPerSecond)
	for _, l := range game.Letters {
		if n, ok := s.Leaders[l]; ok {
			fmt.Fprintf(w, "  %s led %d games\n", l, n)
		}
	}
	for _, r := range game.Rules {
		if n, ok := s.Rules[r.String()]; ok {
			fmt.Fprintf(w, "  %-9s %d turns\n", r, n)
		}
	}
}

func label(s *scenario.Scenario, path string) string {
	if s.Name != "" {
		return s.Name
	}
	return path
}
