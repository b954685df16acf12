package batch

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/gitrdm/cluekb/internal/gamelog"
	"github.com/gitrdm/cluekb/pkg/cluekb"
)

// Result is one file's replay outcome.
type Result struct {
	Path         string
	LinesApplied int
	Snapshot     cluekb.Snapshot
	Err          error
}

// RunDirectory replays every *.jsonl file in dir through its own fresh
// engine, workers at a time, and returns one Result per file in
// directory-listing order (stable regardless of completion order, so
// batch output is reproducible across runs).
func RunDirectory(dir string, newRules func() (cluekb.Rules, []cluekb.PlayerID), workers int) ([]Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, ent := range entries {
		if ent.IsDir() || filepath.Ext(ent.Name()) != ".jsonl" {
			continue
		}
		paths = append(paths, filepath.Join(dir, ent.Name()))
	}
	sort.Strings(paths)

	pool := NewWorkerPool(workers)
	results := make([]Result, len(paths))
	var wg sync.WaitGroup
	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			results[i] = runOne(path, newRules)
		})
		if submitErr != nil {
			wg.Done()
			results[i] = Result{Path: path, Err: submitErr}
		}
	}
	wg.Wait()
	pool.Shutdown()
	return results, nil
}

func runOne(path string, newRules func() (cluekb.Rules, []cluekb.PlayerID)) Result {
	f, err := os.Open(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	defer f.Close()

	lines, err := gamelog.Decode(f)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	rules, players := newRules()
	engine, err := cluekb.NewEngine(rules, players)
	if err != nil {
		return Result{Path: path, Err: err}
	}

	n, err := gamelog.Apply(engine, lines)
	return Result{Path: path, LinesApplied: n, Snapshot: engine.Snapshot(), Err: err}
}
