package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"demoodle/internal/duckdb"
	"demoodle/internal/grading"
)

// fixtureConfig defines the JSON config for generating a DuckDB fixture.
type fixtureConfig struct {
	Name     string `json:"name"`
	Runs     int    `json:"runs"`
	Learners int    `json:"learners"`
	Columns  int    `json:"columns"`
	// DegradedEvery marks every n-th learner row as degraded; 0 disables.
	DegradedEvery int `json:"degraded_every"`
}

func main() {
	configPath := flag.String("config", "", "path to fixture config JSON")
	outPath := flag.String("out", "", "output duckdb file path")
	flag.Parse()
	if *configPath == "" || *outPath == "" {
		fmt.Fprintln(os.Stderr, "usage: generate_fixture --config <path> --out <duckdb file>")
		os.Exit(2)
	}
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(dirOf(*outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir output dir: %v\n", err)
		os.Exit(1)
	}
	if err := removeIfExists(*outPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	if err := generateFixture(ctx, *outPath, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "generate fixture: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (fixtureConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fixtureConfig{}, err
	}
	var cfg fixtureConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fixtureConfig{}, err
	}
	if cfg.Runs <= 0 || cfg.Learners < 0 || cfg.Columns <= 0 {
		return fixtureConfig{}, fmt.Errorf("runs and columns must be positive, learners non-negative")
	}
	return cfg, nil
}

func generateFixture(ctx context.Context, path string, cfg fixtureConfig) error {
	db, err := duckdb.Open(ctx, path)
	if err != nil {
		return err
	}
	defer db.Close()

	startTime := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < cfg.Runs; i++ {
		started := startTime.Add(time.Duration(i) * time.Hour)
		run := duckdb.Run{
			ID:          deterministicID("run", i),
			StartedAt:   started,
			FinishedAt:  started.Add(time.Second),
			QuizPath:    fmt.Sprintf("%s/quiz-%03d.xml", cfg.Name, i),
			ResultsPath: fmt.Sprintf("%s/results-%03d.csv", cfg.Name, i),
			OutputPath:  fmt.Sprintf("%s/grades-%03d.csv", cfg.Name, i),
			Policy:      "kind",
			Questions:   cfg.Columns,
			Slots:       cfg.Columns,
		}
		if err := duckdb.WriteRun(ctx, db, run, fixtureTable(cfg, i)); err != nil {
			return fmt.Errorf("run %d: %w", i, err)
		}
	}
	return nil
}

// fixtureTable builds a table where learner l answers column c correctly
// unless (l+c+run) is divisible by 3.
func fixtureTable(cfg fixtureConfig, run int) grading.Table {
	header := []string{"Last name", "First name"}
	reference := []string{"Reference", "Answer key"}
	for c := 0; c < cfg.Columns; c++ {
		header = append(header, fmt.Sprintf("Question %d", c+1))
		reference = append(reference, fmt.Sprintf("answer-%d|alt-%d", c, c))
	}
	table := grading.Table{Rows: [][]string{header, reference}, Width: cfg.Columns}
	for l := 0; l < cfg.Learners; l++ {
		row := []string{fmt.Sprintf("Learner%04d", l), "Fixture"}
		for c := 0; c < cfg.Columns; c++ {
			answer := fmt.Sprintf("answer-%d", c)
			if (l+c+run)%3 == 0 {
				answer = "leer"
			}
			row = append(row, answer)
		}
		table.Rows = append(table.Rows, row)
		if cfg.DegradedEvery > 0 && l%cfg.DegradedEvery == 0 {
			table.Degraded = append(table.Degraded, grading.Degradation{Row: len(table.Rows) - 1})
		}
	}
	return table
}
