package game

import "fmt"

// PlayerState is either playing or done.
type PlayerState int

const (
	Playing PlayerState = iota
	Done
)

func (s PlayerState) String() string {
	if s == Done {
		return "done"
	}
	return "playing"
}

// Player tracks one seat's two tokens.
type Player struct {
	letter Letter
	seat   Seat
	track  Track
	steps  [2]int
	state  PlayerState
}

// NewPlayer creates a player with both tokens in the yard.
func NewPlayer(l Letter) (*Player, error) {
	seat, ok := SeatOf(l)
	if !ok {
		return nil, &InvalidArgumentError{Name: "letter", Value: string(l), Reason: "must be one of A, B, C, D"}
	}
	return &Player{
		letter: l,
		seat:   seat,
		track:  newTrack(seat.Start),
		steps:  [2]int{StepBase, StepBase},
		state:  Playing,
	}, nil
}

func (p *Player) Letter() Letter { return p.letter }
func (p *Player) Start() int     { return p.seat.Start }
func (p *Player) End() int       { return p.seat.End }
func (p *Player) State() PlayerState {
	return p.state
}

// Completed reports whether both tokens have finished.
func (p *Player) Completed() bool {
	return p.state == Done
}

// StepCount returns the cumulative step-count of a token.
func (p *Player) StepCount(t Token) int {
	return p.steps[t]
}

// Label renders a token's current board space.
func (p *Player) Label(t Token) string {
	return spaceName(p.letter, &p.track, p.steps[t])
}

// SpaceName renders an arbitrary step-count for this player.
func (p *Player) SpaceName(steps int) (string, error) {
	if !validSteps(steps) {
		return "", &InvalidArgumentError{
			Name:   "steps",
			Value:  fmt.Sprint(steps),
			Reason: fmt.Sprintf("must be in [%d, %d]", StepBase, StepFinish),
		}
	}
	return spaceName(p.letter, &p.track, steps), nil
}

// Square returns the shared-track square a token sits on, if any.
func (p *Player) Square(t Token) (int, bool) {
	return p.track.Square(p.steps[t])
}

func (p *Player) inBase(t Token) bool   { return p.steps[t] == StepBase }
func (p *Player) finished(t Token) bool { return p.steps[t] == StepFinish }

// inPlay reports whether a token is out of the yard and not finished.
func (p *Player) inPlay(t Token) bool {
	return !p.inBase(t) && !p.finished(t)
}

// advance moves a token forward, reflecting off the finish square.
func (p *Player) advance(t Token, n int) Move {
	from := p.steps[t]
	to := from + n
	if to > StepFinish {
		to = StepFinish - (to - StepFinish)
	}
	p.steps[t] = to
	p.refreshState()
	return Move{Token: t, From: from, To: to}
}

// set places a token at an exact step-count.
func (p *Player) set(t Token, steps int) Move {
	from := p.steps[t]
	p.steps[t] = steps
	p.refreshState()
	return Move{Token: t, From: from, To: steps}
}

// refreshState only ever promotes to Done.
func (p *Player) refreshState() {
	if p.finished(P) && p.finished(Q) {
		p.state = Done
	}
}

func (p *Player) clone() *Player {
	c := *p
	return &c
}
