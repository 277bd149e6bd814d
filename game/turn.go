package game

import (
	"fmt"
	"strconv"
	"strings"
)

// Turn is one pre-rolled die value for a player.
type Turn struct {
	Player Letter `yaml:"player"`
	Steps  int    `yaml:"steps"`
}

func (t Turn) String() string {
	return fmt.Sprintf("(%s, %d)", t.Player, t.Steps)
}

// ParseTurn reads the "A:6" form used on the command line.
func ParseTurn(s string) (Turn, error) {
	letter, roll, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return Turn{}, &InvalidArgumentError{Name: "turn", Value: s, Reason: "expected LETTER:ROLL"}
	}
	steps, err := strconv.Atoi(roll)
	if err != nil {
		return Turn{}, &InvalidArgumentError{Name: "turn", Value: s, Reason: "roll is not a number"}
	}
	if !validRoll(steps) {
		return Turn{}, &InvalidArgumentError{Name: "turn", Value: s, Reason: fmt.Sprintf("roll must be in [1, %d]", DieFaces)}
	}
	l, err := parseLetter(letter)
	if err != nil {
		return Turn{}, err
	}
	return Turn{Player: l, Steps: steps}, nil
}

// ParseRoster reads a comma separated list of letters such as "A,B,C".
// Roster size and duplicates are checked by NewGame.
func ParseRoster(s string) ([]Letter, error) {
	var letters []Letter
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		l, err := parseLetter(part)
		if err != nil {
			return nil, err
		}
		letters = append(letters, l)
	}
	return letters, nil
}

func parseLetter(s string) (Letter, error) {
	l := Letter(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := SeatOf(l); !ok {
		return "", &InvalidArgumentError{Name: "letter", Value: s, Reason: "must be one of A, B, C, D"}
	}
	return l, nil
}

func validRoll(steps int) bool {
	return steps >= 1 && steps <= DieFaces
}
