package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"cgpbench/internal/model"
	"cgpbench/internal/problem"
	"cgpbench/internal/stats"
	"cgpbench/internal/storage"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "problems":
		return runProblems(args[1:])
	case "table":
		return runTable(args[1:])
	case "import":
		return runImport(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "stats":
		return runStats(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: cgpbenchctl <problems|table|import|runs|stats> [flags]", msg)
}

func runProblems(args []string) error {
	fs := flag.NewFlagSet("problems", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Construct each variant with a representative config so the operator
	// catalogs can be listed.
	params := map[string]any{"input_length": 2, "epsilon": 0.0, "graph_length": 1}
	for _, name := range problem.Names() {
		p, err := problem.New(name, problem.NewConfig(params))
		if err != nil {
			return err
		}
		operators := make([]string, 0, len(p.Operators()))
		for _, op := range p.Operators() {
			operators = append(operators, op.Name)
		}
		fmt.Printf("%-16s operators=%s max-arity=%d\n", p.Name(), strings.Join(operators, ","), p.MaxArity())
	}
	return nil
}

func runTable(args []string) error {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	name := fs.String("problem", "binary-multiply", "bounded problem name")
	configPaths := fs.String("config", "", "comma-separated JSON config files, merged in order")
	inputLength := fs.Int("input-length", 0, "override input_length")
	epsilon := fs.Float64("epsilon", -1, "override epsilon")
	if err := fs.Parse(args); err != nil {
		return err
	}

	params, err := loadParams(splitPaths(*configPaths))
	if err != nil {
		return err
	}
	if *inputLength > 0 {
		params["input_length"] = *inputLength
	}
	if *epsilon >= 0 {
		params["epsilon"] = *epsilon
	}

	p, err := problem.New(*name, problem.NewConfig(params))
	if err != nil {
		return err
	}
	bounded, ok := p.(*problem.Bounded)
	if !ok {
		return fmt.Errorf("problem %s has no training table", p.Name())
	}

	for _, c := range bounded.Training() {
		fmt.Printf("%s -> %s\n", formatBits(c.Inputs), formatBits(c.Outputs))
	}
	return nil
}

func runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cgpbench.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("import: no run record files given")
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	imported := 0
	for _, path := range fs.Args() {
		records, err := loadRunRecords(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		for _, record := range records {
			if record.RunID == "" {
				return fmt.Errorf("%s: run record without run_id", path)
			}
			if err := store.SaveRun(ctx, record); err != nil {
				return err
			}
			imported++
		}
	}
	fmt.Printf("imported %d run records into store=%s\n", imported, *storeKind)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cgpbench.db", "sqlite database path")
	problemName := fs.String("problem", "", "filter by problem name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()
	if err := store.Init(ctx); err != nil {
		return err
	}

	records, err := store.ListRuns(ctx, *problemName)
	if err != nil {
		return err
	}
	for _, record := range records {
		fmt.Printf("%s problem=%s variant=%s seed=%d evals=%d phenotype=%d fitness=%g solved=%t\n",
			record.RunID, record.Problem, record.Variant, record.Seed,
			record.Evaluations, record.Phenotype, record.BestFitness, record.Solved)
	}
	return nil
}

func runStats(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "cgpbench.db", "sqlite database path")
	problemName := fs.String("problem", "", "problem to aggregate from the store")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var records []model.RunRecord
	if fs.NArg() > 0 {
		for _, path := range fs.Args() {
			loaded, err := loadRunRecords(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			records = append(records, loaded...)
		}
	} else {
		store, err := storage.NewStore(*storeKind, *dbPath)
		if err != nil {
			return err
		}
		defer func() {
			_ = storage.CloseIfSupported(store)
		}()
		if err := store.Init(ctx); err != nil {
			return err
		}
		records, err = store.ListRuns(ctx, *problemName)
		if err != nil {
			return err
		}
	}

	report, err := stats.Aggregate(records)
	if err != nil {
		return err
	}
	encoded, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}

func formatBits(v []float64) string {
	var sb strings.Builder
	for _, bit := range v {
		if bit != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func splitPaths(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	paths := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			paths = append(paths, trimmed)
		}
	}
	return paths
}
