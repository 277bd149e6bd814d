// Package scenario reads and writes recorded games as YAML.
//
//	players: [A, B]
//	turns:
//	  - {player: A, steps: 6}
//	  - {player: A, steps: 4}
//	expected: ["4", "H", "H", "H"]
package scenario

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"ludo/game"

	"gopkg.in/yaml.v3"
)

var ErrNoExpectation = errors.New("scenario has no expected positions")

type Scenario struct {
	Name     string        `yaml:"name,omitempty"`
	Players  []game.Letter `yaml:"players"`
	Turns    []game.Turn   `yaml:"turns"`
	Expected []string      `yaml:"expected,omitempty"`
}

// MismatchError reports positions that differ from a scenario's expectation.
type MismatchError struct {
	Expected []string
	Actual   []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("positions %v do not match expected %v", e.Actual, e.Expected)
}

func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cannot parse scenario: %w", err)
	}
	return &s, nil
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

func Write(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("cannot encode scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("cannot write scenario: %w", err)
	}
	return nil
}

// Play runs the scenario on a fresh game.
func (s *Scenario) Play() (*game.Game, []string, error) {
	g, err := game.NewGame(s.Players)
	if err != nil {
		return nil, nil, err
	}
	positions, err := g.Play(s.Turns)
	if err != nil {
		return g, nil, err
	}
	return g, positions, nil
}

// Check plays the scenario and compares the result with its expectation.
func (s *Scenario) Check() ([]string, error) {
	if len(s.Expected) == 0 {
		return nil, ErrNoExpectation
	}
	_, positions, err := s.Play()
	if err != nil {
		return nil, err
	}
	if !slices.Equal(positions, s.Expected) {
		return positions, &MismatchError{Expected: s.Expected, Actual: positions}
	}
	return positions, nil
}
