// meta/meta.go
package meta

// GAMES defines the number of games played by the random experiment.
const GAMES = 100

// TURNS defines the number of rolls generated per random game.
const TURNS = 400

// SEED defines the default seed for random rolls.
const SEED = 1

// PLAYERS defines the default roster.
const PLAYERS = "A,B,C,D"

// OUT_DIR defines where experiment records are written.
const OUT_DIR = "experiments/records"

// MAX_TURNS bounds the number of turns a single engine run accepts.
const MAX_TURNS = 10000
