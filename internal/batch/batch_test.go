package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitrdm/cluekb/pkg/cluekb"
)

func testRules() (cluekb.Rules, []cluekb.PlayerID) {
	rules := cluekb.Rules{
		Variant: cluekb.Classic,
		Types: []cluekb.TypeInfo{
			{ID: "suspect", Name: "Suspects", Title: "suspect"},
			{ID: "weapon", Name: "Weapons", Title: "weapon"},
		},
		Cards: []cluekb.CardInfo{
			{ID: "mustard", Name: "Colonel Mustard", Type: "suspect"},
			{ID: "white", Name: "Mrs. White", Type: "suspect"},
			{ID: "revolver", Name: "Revolver", Type: "weapon"},
			{ID: "knife", Name: "Knife", Type: "weapon"},
		},
		AssumeRationalAccusers: true,
	}
	return rules, []cluekb.PlayerID{"a", "b"}
}

func writeLog(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunDirectory_ReplaysEveryLog(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "game1.jsonl",
		`{"hand":{"player":"a","cards":["mustard","revolver"]}}`+"\n")
	writeLog(t, dir, "game2.jsonl",
		`{"hand":{"player":"b","cards":["white","knife"]}}`+"\n")
	writeLog(t, dir, "ignored.txt", "not a game log")

	results, err := RunDirectory(dir, testRules, 2)
	require.NoError(t, err)
	require.Len(t, results, 2)

	for _, r := range results {
		require.NoError(t, r.Err)
		require.Equal(t, 1, r.LinesApplied)
	}
}

func TestRunDirectory_PropagatesPerFileErrors(t *testing.T) {
	dir := t.TempDir()
	writeLog(t, dir, "bad.jsonl", `{"hand":{"player":"nobody","cards":["mustard"]}}`+"\n")

	results, err := RunDirectory(dir, testRules, 1)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestWorkerPool_RunsAllSubmittedTasks(t *testing.T) {
	pool := NewWorkerPool(3)
	const n = 20
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		require.NoError(t, pool.Submit(func() { done <- struct{}{} }))
	}
	pool.Shutdown()
	close(done)

	count := 0
	for range done {
		count++
	}
	require.Equal(t, n, count)

	stats := pool.Stats()
	require.Equal(t, int64(n), stats.Submitted)
	require.Equal(t, int64(n), stats.Completed)
}
