package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"hillclimb/internal/config"
	"hillclimb/internal/driver"
	"hillclimb/internal/ledger"
	"hillclimb/internal/report"
	"hillclimb/internal/search"
	"hillclimb/internal/terrain"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s run|compare|history [flags]\n", filepath.Base(os.Args[0]))
	os.Exit(2)
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	if len(os.Args) < 2 {
		usage()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch os.Args[1] {
	case "run":
		err = runCmd(ctx, os.Args[2:])
	case "compare":
		err = compareCmd(ctx, os.Args[2:])
	case "history":
		err = historyCmd(ctx, os.Args[2:])
	default:
		usage()
	}
	if err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads path if given, otherwise returns the defaults.
func loadConfig(path string) (*config.RunConfig, error) {
	if path == "" {
		return config.DefaultRunConfig(), nil
	}
	return config.LoadRunConfig(path)
}

func runCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	mapFile := fs.String("map", "", "grid file")
	cfgFile := fs.String("config", "", "JSON run config")
	strategy := fs.String("strategy", "", "naive, memoized or heuristic")
	steps := fs.Int("steps", 0, "Step calls per tick")
	budget := fs.Int("budget", 0, "candidate examinations per Step call")
	delay := fs.Duration("delay", -1, "pause between ticks")
	maxTicks := fs.Int("max-ticks", -1, "stop after this many ticks (0 = no limit)")
	render := fs.Bool("render", true, "animate the search in the terminal")
	ledgerPath := fs.String("ledger", "", "SQLite file to record the run in")
	fs.Parse(args)
	if *mapFile == "" {
		return fmt.Errorf("run: -map is required")
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	kind := cfg.GetStrategy()
	if *strategy != "" {
		if kind, err = search.ParseKind(*strategy); err != nil {
			return err
		}
	}
	opts := driver.Options{
		StepsPerTick: cfg.GetStepsPerTick(),
		Budget:       cfg.GetBudget(),
		TickDelay:    cfg.GetTickDelay(),
		MaxTicks:     cfg.GetMaxTicks(),
		Logger:       log.Default(),
	}
	if *steps > 0 {
		opts.StepsPerTick = *steps
	}
	if *budget > 0 {
		opts.Budget = *budget
	}
	if *delay >= 0 {
		opts.TickDelay = *delay
	}
	if *maxTicks >= 0 {
		opts.MaxTicks = *maxTicks
	}
	if cfg.GetRender() && *render {
		opts.Display = os.Stdout
	}
	if *ledgerPath == "" {
		*ledgerPath = cfg.GetLedgerPath()
	}

	g, err := terrain.LoadGrid(*mapFile)
	if err != nil {
		return err
	}
	session, err := driver.NewSession(g, kind, search.WithLogger(log.Default()))
	if err != nil {
		return err
	}

	res, runErr := session.Run(ctx, opts)
	printResult(res)
	if *ledgerPath != "" {
		if err := record(ctx, *ledgerPath, *mapFile, res); err != nil {
			return err
		}
	}
	return runErr
}

func printResult(res driver.Result) {
	status := "interrupted"
	if res.Exhausted {
		status = "exhausted"
	}
	if res.Found() {
		fmt.Printf("%s: best path %d cells (%d steps), %s after %d ticks, %d candidates examined\n",
			res.Kind, len(res.Best), len(res.Best)-1, status, res.Ticks, res.Stats.Examined)
		return
	}
	fmt.Printf("%s: no path found, %s after %d ticks, %d candidates examined\n",
		res.Kind, status, res.Ticks, res.Stats.Examined)
}

func record(ctx context.Context, path, mapFile string, res driver.Result) error {
	l, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()
	id, err := l.Record(ctx, ledger.Run{
		MapName:    filepath.Base(mapFile),
		Strategy:   string(res.Kind),
		Found:      res.Found(),
		BestLength: len(res.Best),
		Exhausted:  res.Exhausted,
		Examined:   res.Stats.Examined,
		Calls:      res.Stats.Calls,
		Goals:      res.Stats.Goals,
		Elapsed:    res.Elapsed,
	})
	if err != nil {
		return err
	}
	log.Printf("recorded run %s in %s", id, path)
	return nil
}

func compareCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	mapFile := fs.String("map", "", "grid file")
	cfgFile := fs.String("config", "", "JSON run config")
	enumerate := fs.Bool("enumerate", false, "also run the all-paths enumerator")
	chart := fs.String("chart", "", "write an HTML comparison report here")
	ledgerPath := fs.String("ledger", "", "SQLite file to record the runs in")
	fs.Parse(args)
	if *mapFile == "" {
		return fmt.Errorf("compare: -map is required")
	}

	cfg, err := loadConfig(*cfgFile)
	if err != nil {
		return err
	}
	if *ledgerPath == "" {
		*ledgerPath = cfg.GetLedgerPath()
	}
	g, err := terrain.LoadGrid(*mapFile)
	if err != nil {
		return err
	}

	reference, ok := g.ShortestPath()
	if ok {
		fmt.Printf("%-10s best=%d\n", "bfs", len(reference))
	} else {
		fmt.Printf("%-10s no path\n", "bfs")
	}

	var outcomes []report.Outcome
	var best []terrain.Cell
	for _, kind := range search.Kinds() {
		session, err := driver.NewSession(g, kind)
		if err != nil {
			return err
		}
		res, err := session.Run(ctx, driver.Options{
			StepsPerTick: cfg.GetStepsPerTick(),
			Budget:       cfg.GetBudget(),
			MaxTicks:     cfg.GetMaxTicks(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("%-10s best=%d examined=%d descents=%d goals=%d elapsed=%s\n",
			kind, len(res.Best), res.Stats.Examined, res.Stats.Descents, res.Stats.Goals, res.Elapsed.Round(time.Microsecond))
		if ok && len(res.Best) != len(reference) {
			log.Printf("%s disagrees with breadth-first search: %d vs %d", kind, len(res.Best), len(reference))
		}
		outcomes = append(outcomes, report.Outcome{
			Name:       string(kind),
			Examined:   res.Stats.Examined,
			Descents:   res.Stats.Descents,
			BestLength: len(res.Best),
		})
		if best == nil {
			best = res.Best
		}
		if *ledgerPath != "" {
			if err := record(ctx, *ledgerPath, *mapFile, res); err != nil {
				return err
			}
		}
	}

	if *enumerate {
		paths, err := search.FindAllPaths(g, g.Start, search.WithMaxCells(cfg.GetMaxEnumerateCells()))
		if err != nil {
			return err
		}
		shortest := 0
		if p := search.Shortest(paths); p != nil {
			shortest = p.Len()
		}
		fmt.Printf("%-10s paths=%d best=%d\n", "enumerate", len(paths), shortest)
	}

	if *chart != "" {
		f, err := os.Create(*chart)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := report.WriteComparison(f, filepath.Base(*mapFile), g, outcomes, best); err != nil {
			return err
		}
		log.Printf("wrote %s", *chart)
	}
	return nil
}

func historyCmd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	ledgerPath := fs.String("ledger", "", "SQLite file with recorded runs")
	limit := fs.Int("n", 20, "number of runs to show")
	fs.Parse(args)
	if *ledgerPath == "" {
		return fmt.Errorf("history: -ledger is required")
	}

	l, err := ledger.Open(*ledgerPath)
	if err != nil {
		return err
	}
	defer l.Close()
	runs, err := l.Recent(ctx, *limit)
	if err != nil {
		return err
	}
	for _, r := range runs {
		best := "-"
		if r.Found {
			best = fmt.Sprint(r.BestLength)
		}
		fmt.Printf("%s %s %-10s %-12s best=%s examined=%d elapsed=%s\n",
			r.CreatedAt.Format(time.RFC3339), r.ID, r.Strategy, r.MapName, best, r.Examined, r.Elapsed)
	}
	return nil
}
