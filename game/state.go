package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/samber/lo"
)

// StateHash identifies a board position.
type StateHash uint64

// Game is the dynamic state of one Ludo game: the roster and every token.
// A Game is not safe for concurrent use.
type Game struct {
	roster  []Letter           // registration order, used for output
	players map[Letter]*Player // lookup by letter
	turns   int                // turns applied so far
}

// NewGame registers 2 to 4 distinct players with all tokens in the yard.
func NewGame(roster []Letter) (*Game, error) {
	if len(roster) < MinPlayers || len(roster) > MaxPlayers {
		return nil, &InvalidArgumentError{
			Name:   "roster",
			Value:  JoinLetters(roster),
			Reason: fmt.Sprintf("need %d to %d players", MinPlayers, MaxPlayers),
		}
	}
	if dup := lo.FindDuplicates(roster); len(dup) > 0 {
		return nil, &InvalidArgumentError{
			Name:   "roster",
			Value:  JoinLetters(roster),
			Reason: fmt.Sprintf("duplicate players %s", JoinLetters(dup)),
		}
	}

	g := &Game{
		roster:  append([]Letter(nil), roster...),
		players: make(map[Letter]*Player, len(roster)),
	}
	for _, l := range roster {
		p, err := NewPlayer(l)
		if err != nil {
			return nil, fmt.Errorf("cannot create game: %w", err)
		}
		g.players[l] = p
	}
	return g, nil
}

// Roster returns the players in registration order.
func (g *Game) Roster() []Letter {
	return append([]Letter(nil), g.roster...)
}

// Player looks up a registered player. The bool is false for unknown letters.
func (g *Game) Player(l Letter) (*Player, bool) {
	p, ok := g.players[l]
	return p, ok
}

// Turns returns how many turns have been applied.
func (g *Game) Turns() int {
	return g.turns
}

// Validate checks a turn against the roster without applying it.
func (g *Game) Validate(t Turn) error {
	if _, ok := g.players[t.Player]; !ok {
		return &InvalidTurnError{Index: -1, Turn: t, Reason: "player is not in the game"}
	}
	if !validRoll(t.Steps) {
		return &InvalidTurnError{Index: -1, Turn: t, Reason: fmt.Sprintf("roll must be in [1, %d]", DieFaces)}
	}
	return nil
}

// Apply validates and resolves a single turn. An invalid turn leaves the game
// untouched.
func (g *Game) Apply(t Turn) (Outcome, error) {
	if err := g.Validate(t); err != nil {
		return Outcome{}, err
	}
	out := g.resolve(g.players[t.Player], t.Steps)
	g.turns++
	return out, nil
}

// Play applies turns in order and returns the final labels. It stops at the
// first invalid turn; the turns before it stay applied.
func (g *Game) Play(turns []Turn) ([]string, error) {
	for i, t := range turns {
		if _, err := g.Apply(t); err != nil {
			var te *InvalidTurnError
			if errors.As(err, &te) {
				te.Index = i
			}
			return nil, err
		}
	}
	return g.Positions(), nil
}

// Positions renders every token in roster order, p before q.
func (g *Game) Positions() []string {
	labels := make([]string, 0, 2*len(g.roster))
	for _, l := range g.roster {
		p := g.players[l]
		labels = append(labels, p.Label(P), p.Label(Q))
	}
	return labels
}

// Completed reports whether every player is done.
func (g *Game) Completed() bool {
	return lo.EveryBy(g.roster, func(l Letter) bool {
		return g.players[l].Completed()
	})
}

// Copy returns an independent snapshot of the game.
func (g *Game) Copy() *Game {
	c := &Game{
		roster:  append([]Letter(nil), g.roster...),
		players: make(map[Letter]*Player, len(g.players)),
		turns:   g.turns,
	}
	for l, p := range g.players {
		c.players[l] = p.clone()
	}
	return c
}

// Hash fingerprints the token positions in roster order.
func (g *Game) Hash() StateHash {
	hasher := fnv.New64a()
	for _, l := range g.roster {
		p := g.players[l]
		hasher.Write([]byte(l))
		binary.Write(hasher, binary.LittleEndian, int64(p.steps[P]))
		binary.Write(hasher, binary.LittleEndian, int64(p.steps[Q]))
		binary.Write(hasher, binary.LittleEndian, int64(p.state))
	}
	return StateHash(hasher.Sum64())
}

// opponents returns every other player in roster order.
func (g *Game) opponents(l Letter) []*Player {
	opps := make([]*Player, 0, len(g.roster)-1)
	for _, other := range g.roster {
		if other != l {
			opps = append(opps, g.players[other])
		}
	}
	return opps
}

// JoinLetters renders letters as a comma separated list.
func JoinLetters(letters []Letter) string {
	return strings.Join(lo.Map(letters, func(l Letter, _ int) string { return string(l) }), ",")
}
