package game

// Rule names the branch of the decision policy that resolved a turn.
type Rule int

const (
	NoMove Rule = iota
	ExitBase
	Launch
	Finish
	Kick
	Advance
)

// Rules lists every rule in priority order, NoMove first.
var Rules = []Rule{NoMove, ExitBase, Launch, Finish, Kick, Advance}

func (r Rule) String() string {
	switch r {
	case ExitBase:
		return "exit-base"
	case Launch:
		return "launch"
	case Finish:
		return "finish"
	case Kick:
		return "capture"
	case Advance:
		return "advance"
	default:
		return "no-move"
	}
}

// Move is a single token's change of step-count.
type Move struct {
	Token Token
	From  int
	To    int
}

// Outcome describes how one turn was resolved.
type Outcome struct {
	Turn     Turn
	Rule     Rule
	Moves    []Move
	Captured []Captured
	Done     bool // the turn completed the player
}

// resolve applies the decision policy for one validated turn. Rules are tried
// in priority order and the first that applies wins.
func (g *Game) resolve(p *Player, n int) (out Outcome) {
	out.Turn = Turn{Player: p.letter, Steps: n}
	wasDone := p.Completed()
	defer func() {
		out.Done = !wasDone && p.Completed()
	}()

	// Leave the yard, p first.
	if n == ExitRoll {
		for _, t := range Tokens {
			if p.inBase(t) {
				out.Rule = ExitBase
				out.Moves = append(out.Moves, p.set(t, StepReady))
				return out
			}
		}
	}

	captures := g.detectCaptures(p, n)

	// A ready token only launches when nothing can be captured this turn.
	if len(captures) == 0 {
		for _, t := range Tokens {
			if p.steps[t] == StepReady {
				out.Rule = Launch
				out.Moves = append(out.Moves, p.advance(t, n))
				return out
			}
		}
	}

	for _, t := range Tokens {
		if p.inPlay(t) && p.steps[t]+n == StepFinish {
			out.Rule = Finish
			out.Moves = append(out.Moves, p.advance(t, n))
			return out
		}
	}

	if len(captures) > 0 {
		c := captures[0]
		other := c.Token.Other()
		linked := p.inPlay(other) && p.steps[other] == p.steps[c.Token]
		out.Rule = Kick
		out.Moves = append(out.Moves, p.advance(c.Token, n))
		out.Captured = g.kickAt(p.letter, c.Square)
		if linked {
			out.Moves = append(out.Moves, p.advance(other, n))
		}
		return out
	}

	// Move the trailing token; both when they share a step-count.
	switch {
	case p.inPlay(P) && p.inPlay(Q):
		out.Rule = Advance
		switch {
		case p.steps[P] == p.steps[Q]:
			out.Moves = append(out.Moves, p.advance(P, n), p.advance(Q, n))
		case p.steps[P] < p.steps[Q]:
			out.Moves = append(out.Moves, p.advance(P, n))
		default:
			out.Moves = append(out.Moves, p.advance(Q, n))
		}
	case p.inPlay(P):
		out.Rule = Advance
		out.Moves = append(out.Moves, p.advance(P, n))
	case p.inPlay(Q):
		out.Rule = Advance
		out.Moves = append(out.Moves, p.advance(Q, n))
	}
	return out
}
