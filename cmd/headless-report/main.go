// cmd/headless-report/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"arena-survivors/internal/app"
	"arena-survivors/internal/config"
	"arena-survivors/internal/defs"
	"arena-survivors/internal/logger"
	"arena-survivors/internal/runstore"
)

type runResult struct {
	ID      uuid.UUID      `json:"id"`
	Summary app.Summary    `json:"summary"`
	Events  []app.Record   `json:"events,omitempty"`
	Counts  map[string]int `json:"counts"`
}

type aggregate struct {
	Runs         int     `json:"runs"`
	Deaths       int     `json:"deaths"`
	AvgSurvived  float64 `json:"avg_survived_seconds"`
	AvgLevel     float64 `json:"avg_level"`
	AvgKills     float64 `json:"avg_kills"`
	BestSurvived float64 `json:"best_survived_seconds"`
}

type report struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Ticks       int         `json:"ticks"`
	Aggregate   aggregate   `json:"aggregate"`
	Runs        []runResult `json:"runs"`
}

func main() {
	var (
		runs        int
		ticks       int
		seedBase    int64
		seedStep    int64
		configPath  string
		archPath    string
		out         string
		dbDSN       string
		dbDriver    string
		loggingPath string
		withEvents  bool
	)
	flag.IntVar(&runs, "runs", 10, "number of runs")
	flag.IntVar(&ticks, "ticks", config.TickRate*60*5, "tick limit per run")
	flag.Int64Var(&seedBase, "seed-base", 1, "seed of the first run")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&configPath, "config", "assets/config.yaml", "encounter config")
	flag.StringVar(&archPath, "archetypes", "assets/archetypes.yaml", "archetype definitions")
	flag.StringVar(&out, "out", "", "write the JSON report to this file")
	flag.StringVar(&dbDSN, "db", "", "store runs in this database (sqlite path or postgres DSN)")
	flag.StringVar(&dbDriver, "db-driver", runstore.DriverSQLite, "sqlite or postgres")
	flag.StringVar(&loggingPath, "logging", "", "logging config, defaults to -config")
	flag.BoolVar(&withEvents, "events", false, "include event logs in the JSON report")
	flag.Parse()

	if loggingPath == "" {
		loggingPath = configPath
	}
	logCfg, err := logger.LoadConfig(loggingPath)
	if err != nil {
		log.Fatalf("logging config: %v", err)
	}
	logger.Initialize(logCfg)

	baseCfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("game config: %v", err)
	}
	archetypes := defs.DefaultArchetypes()
	if archPath != "" {
		if archetypes, err = defs.LoadArchetypes(archPath); err != nil {
			log.Fatalf("archetypes: %v", err)
		}
	}
	if runs < 1 {
		log.Fatalf("-runs must be at least 1")
	}

	results := make([]runResult, runs)
	errs := make([]error, runs)
	jobs := make(chan int, runs)
	var wg sync.WaitGroup
	for w := 0; w < runtime.NumCPU(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = simulate(*baseCfg, archetypes, seedBase+int64(i)*seedStep, ticks)
			}
		}()
	}
	for i := 0; i < runs; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			log.Fatalf("run %d: %v", i, err)
		}
	}

	rep := report{GeneratedAt: time.Now(), Ticks: ticks, Runs: results}
	for _, r := range results {
		s := r.Summary
		fmt.Printf("seed %-6d %s  level %-3d kills %-5d steps %-3d spawn %.2fs  %s\n",
			s.Seed, app.FormatElapsed(s.Survived), s.Level, s.Kills, s.GrowthSteps, s.SpawnCooldown, outcome(s))
		rep.Aggregate.add(s)
	}
	rep.Aggregate.finish()
	a := rep.Aggregate
	fmt.Printf("\n%d runs, %d deaths, avg %s, avg level %.1f, avg kills %.1f, best %s\n",
		a.Runs, a.Deaths, app.FormatElapsed(a.AvgSurvived), a.AvgLevel, a.AvgKills, app.FormatElapsed(a.BestSurvived))

	if dbDSN != "" {
		if err := persist(runstore.Config{Driver: dbDriver, DSN: dbDSN}, results); err != nil {
			log.Fatalf("store runs: %v", err)
		}
	}

	if out != "" {
		if !withEvents {
			for i := range rep.Runs {
				rep.Runs[i].Events = nil
			}
		}
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			log.Fatalf("encode report: %v", err)
		}
		if err := os.WriteFile(out, data, 0o644); err != nil {
			log.Fatalf("write report: %v", err)
		}
		fmt.Printf("report -> %s\n", out)
	}
}

func simulate(cfg config.GameConfig, archetypes *defs.Archetypes, seed int64, ticks int) (runResult, error) {
	cfg.Seed = seed
	g, err := app.NewGame(&cfg, archetypes)
	if err != nil {
		return runResult{}, err
	}
	summary := app.RunHeadless(g, &app.RotatingPolicy{}, ticks, config.FixedDeltaTime)

	counts := make(map[string]int, len(g.Recorder.Counts))
	for t, n := range g.Recorder.Counts {
		counts[string(t)] = n
	}
	return runResult{
		ID:      uuid.New(),
		Summary: summary,
		Events:  g.Recorder.Records,
		Counts:  counts,
	}, nil
}

func persist(cfg runstore.Config, results []runResult) error {
	ctx := context.Background()
	store, err := runstore.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, r := range results {
		events := make([]runstore.Event, len(r.Events))
		for i, e := range r.Events {
			events[i] = runstore.Event{Tick: e.Tick, Type: e.Type, Value: e.Value}
		}
		s := r.Summary
		if _, err := store.SaveRun(ctx, runstore.Run{
			ID:            r.ID,
			Seed:          s.Seed,
			Survived:      s.Survived,
			Alive:         s.Alive,
			Level:         s.Level,
			Kills:         s.Kills,
			GrowthSteps:   s.GrowthSteps,
			SpawnCooldown: s.SpawnCooldown,
			Events:        events,
		}); err != nil {
			return err
		}
	}
	logger.Info("runs stored", "count", len(results), "driver", cfg.Driver)
	return nil
}

func outcome(s app.Summary) string {
	if s.Alive {
		return "survived"
	}
	return "died"
}

func (a *aggregate) add(s app.Summary) {
	a.Runs++
	if !s.Alive {
		a.Deaths++
	}
	a.AvgSurvived += s.Survived
	a.AvgLevel += float64(s.Level)
	a.AvgKills += float64(s.Kills)
	if s.Survived > a.BestSurvived {
		a.BestSurvived = s.Survived
	}
}

func (a *aggregate) finish() {
	if a.Runs == 0 {
		return
	}
	n := float64(a.Runs)
	a.AvgSurvived /= n
	a.AvgLevel /= n
	a.AvgKills /= n
}
