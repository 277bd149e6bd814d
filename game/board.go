package game

import "strconv"

// Seat holds the static board data for one letter.
type Seat struct {
	Start int // shared-track square reached from the ready square with a roll of 1
	End   int // last shared-track square before the home row
}

var seats = map[Letter]Seat{
	A: {Start: 1, End: 50},
	B: {Start: 15, End: 8},
	C: {Start: 29, End: 22},
	D: {Start: 43, End: 36},
}

// SeatOf returns the board data for a letter.
func SeatOf(l Letter) (Seat, bool) {
	s, ok := seats[l]
	return s, ok
}

// Track maps a player's step-count on the shared track to the square number.
// Index 0 is unused so that track[steps] is the square for steps in 1..50.
type Track [LastTrackStep + 1]int

func newTrack(start int) Track {
	var t Track
	for steps := 1; steps <= LastTrackStep; steps++ {
		t[steps] = (start-1+steps-1)%TrackSquares + 1
	}
	return t
}

// Square returns the shared-track square for steps, or false off the track.
func (t *Track) Square(steps int) (int, bool) {
	if !onTrack(steps) {
		return 0, false
	}
	return t[steps], true
}

func onTrack(steps int) bool {
	return steps >= 1 && steps <= LastTrackStep
}

func inHomeRow(steps int) bool {
	return steps > LastTrackStep && steps < StepFinish
}

func validSteps(steps int) bool {
	return steps >= StepBase && steps <= StepFinish
}

// spaceName renders a step-count. steps must be in [StepBase, StepFinish].
func spaceName(l Letter, t *Track, steps int) string {
	switch {
	case steps == StepBase:
		return LabelBase
	case steps == StepReady:
		return LabelReady
	case onTrack(steps):
		return strconv.Itoa(t[steps])
	case inHomeRow(steps):
		return string(l) + strconv.Itoa(steps-LastTrackStep)
	default:
		return LabelFinish
	}
}
