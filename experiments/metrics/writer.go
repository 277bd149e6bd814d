package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/samber/lo"
)

// RunConfig describes one batch of random games.
type RunConfig struct {
	ID      string
	Games   int
	Turns   int
	Seed    uint64
	Players string
}

type GameRecord struct {
	ID   int
	Seed uint64 // seed of this game's rolls
	GameMetric
}

type TurnRecord struct {
	Game int // GameRecord.ID
	TurnMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder of dir for one run.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteRunConfig(config RunConfig) error {
	header := []string{"id", "games", "turns", "seed", "players"}
	rows := [][]string{{
		config.ID,
		strconv.Itoa(config.Games),
		strconv.Itoa(config.Turns),
		strconv.FormatUint(config.Seed, 10),
		config.Players,
	}}
	if err := w.write("run_config.csv", header, rows); err != nil {
		return fmt.Errorf("failed to store run config: %w", err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "uuid", "seed", "players", "leader", "score", "completed", "captures", "turns", "start_time", "end_time", "duration"}
	rows := lo.Map(records, func(record GameRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.ID),
			record.GameMetric.ID.String(),
			strconv.FormatUint(record.Seed, 10),
			record.Players,
			string(record.Leader),
			strconv.FormatFloat(record.Score, 'f', 3, 64),
			strconv.Itoa(record.Completed),
			strconv.Itoa(record.Captures),
			strconv.Itoa(record.TotalTurns),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
		}
	})
	if err := w.write("game_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	return nil
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	header := []string{"game", "step", "player", "roll", "rule", "moves", "captured", "done", "duration"}
	rows := lo.Map(records, func(record TurnRecord, _ int) []string {
		return []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			string(record.Player),
			strconv.Itoa(record.Roll),
			record.Rule,
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Captured),
			strconv.FormatBool(record.Done),
			record.Duration.String(),
		}
	})
	if err := w.write("turn_records.csv", header, rows); err != nil {
		return fmt.Errorf("failed to write turn records: %w", err)
	}
	return nil
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
