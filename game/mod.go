package game

import "fmt"

// Letter identifies a player by its seat on the board.
type Letter string

const (
	A Letter = "A"
	B Letter = "B"
	C Letter = "C"
	D Letter = "D"
)

// Letters lists every seat in board order.
var Letters = []Letter{A, B, C, D}

// Token names one of a player's two pieces.
type Token int

const (
	P Token = iota
	Q
)

// Tokens lists both tokens in the order they are considered by the policy.
var Tokens = []Token{P, Q}

func (t Token) String() string {
	switch t {
	case P:
		return "p"
	case Q:
		return "q"
	default:
		return fmt.Sprintf("Token(%d)", int(t))
	}
}

// Other returns the player's other token.
func (t Token) Other() Token {
	if t == P {
		return Q
	}
	return P
}

// ParseToken maps "p"/"q" to a Token.
func ParseToken(s string) (Token, error) {
	switch s {
	case "p":
		return P, nil
	case "q":
		return Q, nil
	}
	return 0, &InvalidArgumentError{Name: "token", Value: s, Reason: "must be p or q"}
}

// Step-counts. A token's step-count is the only source of truth for where it is.
const (
	StepBase      = -1 // in the home yard
	StepReady     = 0  // just outside the yard, not yet on the shared track
	LastTrackStep = 50 // last step-count on the shared track (the player's end square)
	HomeRowLen    = 6
	StepFinish    = LastTrackStep + HomeRowLen + 1 // 57
)

const (
	TrackSquares = 56 // shared track squares are numbered 1..56
	DieFaces     = 6
	ExitRoll     = 6 // roll needed to leave the yard
	MinPlayers   = 2
	MaxPlayers   = 4
)

// Board labels for the non-track positions.
const (
	LabelBase   = "H"
	LabelReady  = "R"
	LabelFinish = "E"
)
