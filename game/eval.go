package game

import "sort"

// Standing summarises how far a player has got.
type Standing struct {
	Player   Letter
	Finished int // tokens at the finish square
	Progress int // summed step-counts, yard tokens count as zero
	Done     bool
}

// progress counts a token's step-count, treating the yard as zero.
func progress(steps int) int {
	if steps < StepReady {
		return 0
	}
	return steps
}

func (p *Player) standing() Standing {
	s := Standing{Player: p.letter, Done: p.Completed()}
	for _, t := range Tokens {
		s.Progress += progress(p.steps[t])
		if p.finished(t) {
			s.Finished++
		}
	}
	return s
}

// Standings ranks players by finished tokens, then progress. Ties keep roster
// order.
func (g *Game) Standings() []Standing {
	standings := make([]Standing, 0, len(g.roster))
	for _, l := range g.roster {
		standings = append(standings, g.players[l].standing())
	}
	sort.SliceStable(standings, func(i, j int) bool {
		if standings[i].Finished != standings[j].Finished {
			return standings[i].Finished > standings[j].Finished
		}
		return standings[i].Progress > standings[j].Progress
	})
	return standings
}

// Evaluate scores a player's progress between -1 and 1 against the strongest
// opponent. Unknown letters and an untouched board score 0.
func (g *Game) Evaluate(l Letter) float64 {
	p, ok := g.players[l]
	if !ok {
		return 0
	}
	own := p.standing().Progress
	best := 0
	for _, opp := range g.opponents(l) {
		best = max(best, opp.standing().Progress)
	}
	if own+best == 0 {
		return 0
	}
	return float64(own-best) / float64(own+best)
}
