package metrics

import (
	"time"

	"ludo/game"

	"github.com/google/uuid"
)

type TurnMetric struct {
	Step     int
	Player   game.Letter
	Roll     int
	Rule     string
	Moves    int
	Captured int
	Done     bool
	Duration time.Duration
}

type GameMetric struct {
	ID         uuid.UUID
	Players    string
	Leader     game.Letter // first in the final standings
	Score      float64     // leader's evaluation against the best opponent
	Completed  int         // players with both tokens finished
	Captures   int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalTurns int
}

type Collector interface {
	Start(id uuid.UUID, roster []game.Letter)
	AddTurn(step int, out game.Outcome, d time.Duration)
	Turns() []TurnMetric
	Complete(g *game.Game) GameMetric
}

type collector struct {
	id        uuid.UUID
	players   string
	startTime time.Time
	turns     []TurnMetric
	captures  int
	completed int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(id uuid.UUID, roster []game.Letter) {
	m.id = id
	m.players = game.JoinLetters(roster)
	m.startTime = time.Now()
	m.turns = nil
	m.captures = 0
	m.completed = 0
}

func (m *collector) AddTurn(step int, out game.Outcome, d time.Duration) {
	m.turns = append(m.turns, TurnMetric{
		Step:     step,
		Player:   out.Turn.Player,
		Roll:     out.Turn.Steps,
		Rule:     out.Rule.String(),
		Moves:    len(out.Moves),
		Captured: len(out.Captured),
		Done:     out.Done,
		Duration: d,
	})
	m.captures += len(out.Captured)
	if out.Done {
		m.completed++
	}
}

func (m *collector) Turns() []TurnMetric {
	return append([]TurnMetric(nil), m.turns...)
}

func (m *collector) Complete(g *game.Game) GameMetric {
	end := time.Now()
	metric := GameMetric{
		ID:         m.id,
		Players:    m.players,
		Completed:  m.completed,
		Captures:   m.captures,
		StartTime:  m.startTime,
		EndTime:    end,
		Duration:   end.Sub(m.startTime),
		TotalTurns: len(m.turns),
	}
	if standings := g.Standings(); len(standings) > 0 {
		metric.Leader = standings[0].Player
		metric.Score = g.Evaluate(metric.Leader)
	}
	return metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(id uuid.UUID, roster []game.Letter)            {}
func (m *dummyCollector) AddTurn(step int, out game.Outcome, d time.Duration) {}
func (m *dummyCollector) Turns() []TurnMetric                                 { return nil }
func (m *dummyCollector) Complete(g *game.Game) GameMetric                    { return GameMetric{} }
