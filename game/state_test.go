package game

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlayRecordedGames(t *testing.T) {
	tests := []struct {
		name     string
		roster   []Letter
		turns    []Turn
		expected []string
	}{
		{
			name:   "tied tokens capture together",
			roster: []Letter{A, B},
			turns: []Turn{
				{A, 6}, {A, 4}, {A, 5}, {A, 4}, {B, 6}, {B, 4}, {B, 1}, {B, 2},
				{A, 6}, {A, 4}, {A, 6}, {A, 3}, {A, 5}, {A, 1}, {A, 5}, {A, 4},
			},
			expected: []string{"28", "28", "21", "H"},
		},
		{
			name:     "every seat launches from its own start",
			roster:   []Letter{A, B, C, D},
			turns:    []Turn{{A, 6}, {A, 1}, {B, 6}, {B, 2}, {C, 6}, {C, 3}, {D, 6}, {D, 4}},
			expected: []string{"1", "H", "16", "H", "31", "H", "46", "H"},
		},
		{
			name:   "B wraps the ring into its home row",
			roster: []Letter{A, B},
			turns: []Turn{
				{B, 6}, {B, 4}, {B, 5}, {B, 4}, {B, 4}, {B, 3}, {B, 4}, {B, 5}, {B, 4},
				{B, 4}, {B, 5}, {B, 4}, {B, 1}, {B, 4}, {B, 5}, {B, 5}, {B, 5},
			},
			expected: []string{"H", "H", "B6", "H"},
		},
		{
			name:     "tokens on the same square advance together",
			roster:   []Letter{A, B},
			turns:    []Turn{{A, 6}, {A, 3}, {A, 6}, {A, 3}, {A, 6}, {A, 5}, {A, 4}, {A, 6}, {A, 4}},
			expected: []string{"28", "28", "H", "H"},
		},
		{
			name:   "opposite seats share the ring",
			roster: []Letter{A, C},
			turns: []Turn{
				{A, 6}, {A, 4}, {A, 4}, {A, 4}, {A, 5}, {A, 6}, {A, 4}, {A, 6}, {A, 4},
				{A, 6}, {A, 6}, {A, 6}, {A, 4}, {A, 6}, {A, 6}, {C, 6}, {C, 4},
			},
			expected: []string{"33", "H", "32", "H"},
		},
		{
			name:   "both tokens finish",
			roster: []Letter{A, B},
			turns: []Turn{
				{A, 6}, {A, 4}, {A, 4}, {A, 4}, {A, 5}, {A, 6}, {A, 4}, {A, 6}, {A, 4},
				{A, 6}, {A, 6}, {A, 4}, {A, 6}, {A, 4}, {A, 6}, {A, 6}, {A, 4}, {A, 6},
				{A, 6}, {A, 4}, {A, 6}, {A, 6}, {A, 4}, {A, 6}, {A, 3}, {A, 6}, {B, 6},
				{A, 6},
			},
			expected: []string{"E", "E", "R", "H"},
		},
		{
			name:   "capture sends a token back to the yard",
			roster: []Letter{A, B},
			turns: []Turn{
				{A, 6}, {A, 2}, {A, 2}, {A, 6}, {A, 4}, {A, 5}, {A, 4}, {A, 4},
				{B, 6}, {B, 3}, {A, 6}, {A, 3},
			},
			expected: []string{"3", "H", "17", "H"},
		},
		{
			name:   "a ready token waits while the other enters the home row",
			roster: []Letter{A, B},
			turns: []Turn{
				{A, 6}, {A, 4}, {A, 5}, {A, 4}, {A, 4}, {A, 4}, {A, 5}, {A, 4},
				{A, 5}, {A, 5}, {A, 3}, {A, 5}, {A, 3}, {A, 6},
			},
			expected: []string{"A1", "R", "H", "H"},
		},
		{
			name:   "a finished token stays finished",
			roster: []Letter{A, B},
			turns: []Turn{
				{A, 6}, {A, 4}, {A, 5}, {A, 4}, {A, 4}, {A, 4}, {A, 5}, {A, 4},
				{A, 5}, {A, 5}, {A, 3}, {A, 5}, {A, 5}, {A, 6}, {A, 5}, {A, 5},
				{A, 3}, {B, 6}, {B, 3}, {A, 4},
			},
			expected: []string{"E", "13", "17", "H"},
		},
		{
			name:   "the trailing token moves",
			roster: []Letter{A, B},
			turns: []Turn{
				{A, 6}, {A, 4}, {A, 4}, {A, 4}, {A, 6}, {A, 5}, {A, 3},
				{B, 6}, {B, 2}, {A, 2}, {A, 4},
			},
			expected: []string{"16", "10", "H", "H"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.roster...)
			positions, err := g.Play(tt.turns)
			require.NoError(t, err)
			require.Equal(t, tt.expected, positions)
			require.Equal(t, len(tt.turns), g.Turns())
		})
	}
}

func TestQueries(t *testing.T) {
	t.Run("player state after a game", func(t *testing.T) {
		g := newTestGame(t, A, B)
		_, err := g.Play([]Turn{
			{A, 6}, {A, 4}, {A, 5}, {A, 4}, {B, 6}, {B, 4}, {B, 1}, {B, 2},
			{A, 6}, {A, 4}, {A, 6}, {A, 3}, {A, 5}, {A, 1}, {A, 5}, {A, 4},
		})
		require.NoError(t, err)

		a := mustPlayer(t, g, A)
		require.Equal(t, Playing, a.State())
		require.False(t, a.Completed())
		require.Equal(t, 28, a.StepCount(P))
		require.Equal(t, 28, a.StepCount(Q))
		require.Equal(t, 1, a.Start())
		require.Equal(t, 50, a.End())

		b := mustPlayer(t, g, B)
		require.Equal(t, "B5", mustSpaceName(t, b, 55))
		square, ok := b.Square(P)
		require.True(t, ok)
		require.Equal(t, 21, square)
		_, ok = b.Square(Q)
		require.False(t, ok, "A yard token has no square")
		require.False(t, g.Completed())
	})

	t.Run("a player with both tokens finished is done", func(t *testing.T) {
		g := newTestGame(t, A, B)
		a := mustPlayer(t, g, A)
		a.set(P, 56)
		a.set(Q, StepFinish)
		a.refreshState()
		require.False(t, a.Completed(), "One token short of the finish")

		out, err := g.Apply(Turn{A, 1})
		require.NoError(t, err)
		require.True(t, out.Done)
		require.Equal(t, Done, a.State())
		require.False(t, g.Completed(), "B is still playing")
	})

	t.Run("unknown letters are not found", func(t *testing.T) {
		g := newTestGame(t, A, B)
		p, ok := g.Player(C)
		require.False(t, ok)
		require.Nil(t, p)
	})

	t.Run("roster keeps registration order", func(t *testing.T) {
		g := newTestGame(t, D, B, A)
		require.Equal(t, []Letter{D, B, A}, g.Roster())
		require.Equal(t, []string{"H", "H", "H", "H", "H", "H"}, g.Positions())
	})
}

func TestInvalidInput(t *testing.T) {
	t.Run("turns for unregistered players are rejected without mutation", func(t *testing.T) {
		g := newTestGame(t, A, B)
		before := g.Hash()

		_, err := g.Apply(Turn{C, 6})
		var turnErr *InvalidTurnError
		require.ErrorAs(t, err, &turnErr)
		require.Equal(t, C, turnErr.Turn.Player)
		require.Equal(t, before, g.Hash())
		require.Zero(t, g.Turns())
	})

	t.Run("rolls outside the die are rejected", func(t *testing.T) {
		g := newTestGame(t, A, B)
		for _, roll := range []int{0, 7, -1} {
			_, err := g.Apply(Turn{A, roll})
			var turnErr *InvalidTurnError
			require.ErrorAs(t, err, &turnErr, "roll %d", roll)
		}
		require.Equal(t, []string{"H", "H", "H", "H"}, g.Positions())
	})

	t.Run("play reports the index of the bad turn", func(t *testing.T) {
		g := newTestGame(t, A, B)
		_, err := g.Play([]Turn{{A, 6}, {A, 2}, {B, 9}, {A, 3}})
		var turnErr *InvalidTurnError
		require.ErrorAs(t, err, &turnErr)
		require.Equal(t, 2, turnErr.Index)
		require.Contains(t, err.Error(), "#2")
		require.Equal(t, [2]int{2, StepBase}, steps(t, g, A), "Turns before the bad one stay applied")
	})

	t.Run("roster size", func(t *testing.T) {
		for _, roster := range [][]Letter{nil, {A}, {A, B, C, D, A}} {
			_, err := NewGame(roster)
			var argErr *InvalidArgumentError
			require.ErrorAs(t, err, &argErr)
			require.Equal(t, "roster", argErr.Name)
		}
	})

	t.Run("duplicate players", func(t *testing.T) {
		_, err := NewGame([]Letter{A, B, A})
		var argErr *InvalidArgumentError
		require.ErrorAs(t, err, &argErr)
		require.Contains(t, argErr.Reason, "duplicate")
	})

	t.Run("unknown seats", func(t *testing.T) {
		_, err := NewGame([]Letter{A, "E"})
		var argErr *InvalidArgumentError
		require.True(t, errors.As(err, &argErr))
		require.Equal(t, "E", argErr.Value)
	})
}

func TestCopyAndHash(t *testing.T) {
	g := newTestGame(t, A, B)
	playAll(t, g, []Turn{{A, 6}, {A, 3}})

	c := g.Copy()
	require.Equal(t, g.Hash(), c.Hash())
	require.Equal(t, g.Positions(), c.Positions())

	_, err := c.Apply(Turn{A, 2})
	require.NoError(t, err)
	require.NotEqual(t, g.Hash(), c.Hash())
	require.Equal(t, [2]int{3, StepBase}, steps(t, g, A), "Copy must not share players")
	require.Equal(t, 2, g.Turns())
	require.Equal(t, 3, c.Turns())
}

func TestStandings(t *testing.T) {
	g := newTestGame(t, A, B, C)
	mustPlayer(t, g, A).set(P, 20)
	mustPlayer(t, g, B).set(P, StepFinish)
	mustPlayer(t, g, C).set(P, 30)

	standings := g.Standings()
	require.Equal(t, []Letter{B, C, A}, []Letter{standings[0].Player, standings[1].Player, standings[2].Player})
	require.Equal(t, 1, standings[0].Finished)
	require.Equal(t, 30, standings[1].Progress)

	require.Greater(t, g.Evaluate(B), 0.0)
	require.Less(t, g.Evaluate(A), 0.0)
	require.Zero(t, g.Evaluate(D))
}

func TestParsing(t *testing.T) {
	t.Run("turns", func(t *testing.T) {
		turn, err := ParseTurn("B:4")
		require.NoError(t, err)
		require.Equal(t, Turn{B, 4}, turn)
		require.Equal(t, "(B, 4)", turn.String())

		for _, bad := range []string{"B4", "B:x", "Z:3", "B:0", ":"} {
			_, err := ParseTurn(bad)
			require.Error(t, err, bad)
		}
	})

	t.Run("rosters", func(t *testing.T) {
		roster, err := ParseRoster("A, C")
		require.NoError(t, err)
		require.Equal(t, []Letter{A, C}, roster)

		_, err = ParseRoster("A,X")
		require.Error(t, err)
	})

	t.Run("tokens", func(t *testing.T) {
		tok, err := ParseToken("q")
		require.NoError(t, err)
		require.Equal(t, Q, tok)
		require.Equal(t, P, tok.Other())

		_, err = ParseToken("r")
		require.Error(t, err)
	})
}
