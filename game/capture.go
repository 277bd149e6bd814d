package game

// Capture is an opportunity for one of the mover's tokens to land on an
// opponent token sitting on the shared track.
type Capture struct {
	Token         Token  // mover's token
	Opponent      Letter // owner of the token landed on
	OpponentToken Token
	Landing       int // mover's step-count after the move
	Square        int // shared-track square of the landing
}

// Captured records a token sent back to the yard.
type Captured struct {
	Player Letter
	Token  Token
	From   int // step-count before the capture
}

// landing returns where a token would end up on the shared track after n
// steps. Tokens in the yard, in the home row or moving into it cannot land on
// a shared square.
func (p *Player) landing(t Token, n int) (steps, square int, ok bool) {
	cur := p.steps[t]
	if cur < StepReady || cur > LastTrackStep {
		return 0, 0, false
	}
	steps = cur + n
	square, ok = p.track.Square(steps)
	return steps, square, ok
}

// detectCaptures lists every capture available to mover for a roll, ordered by
// own token, then roster order, then opponent token.
func (g *Game) detectCaptures(mover *Player, n int) []Capture {
	var captures []Capture
	for _, t := range Tokens {
		steps, square, ok := mover.landing(t, n)
		if !ok {
			continue
		}
		for _, opp := range g.opponents(mover.letter) {
			for _, ot := range Tokens {
				if sq, on := opp.Square(ot); on && sq == square {
					captures = append(captures, Capture{
						Token:         t,
						Opponent:      opp.letter,
						OpponentToken: ot,
						Landing:       steps,
						Square:        square,
					})
				}
			}
		}
	}
	return captures
}

// kickAt sends every opponent token on square back to the yard.
func (g *Game) kickAt(mover Letter, square int) []Captured {
	var kicked []Captured
	for _, opp := range g.opponents(mover) {
		for _, ot := range Tokens {
			if sq, on := opp.Square(ot); on && sq == square {
				m := opp.set(ot, StepBase)
				kicked = append(kicked, Captured{Player: opp.letter, Token: ot, From: m.From})
			}
		}
	}
	return kicked
}
