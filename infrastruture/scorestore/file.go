/*
Package scorestore provides the high-score store implementations: a
flat JSON file for standalone play, a Redis sorted set and a MongoDB
collection for shared scoreboards.
*/
package scorestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/darthkolli145/Mazegame/scoreboard"
	"github.com/darthkolli145/Mazegame/service/i"
)

// defaultSeeds populate a fresh score file so the first run has a
// table to beat.
var defaultSeeds = []struct {
	Player string
	Score  int
}{
	{"AI", 2000},
	{"Bob", 1800},
	{"Alice", 1500},
	{"Charlie", 1200},
	{"Player", 1000},
}

// FileStore persists scores in a flat JSON file keyed by difficulty.
type FileStore struct {
	path    string
	maxKept int
	scores  map[string][]scoreboard.Record
}

// NewFileStore loads the score file, creating and seeding it when
// absent.
func NewFileStore(path string, maxKept int) (i.ScoreStore, error) {
	if maxKept <= 0 {
		maxKept = 50
	}
	fs := &FileStore{
		path:    path,
		maxKept: maxKept,
		scores:  make(map[string][]scoreboard.Record),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		fs.seed()
		if err := fs.save(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("reading score file: %w", err)
	default:
		if err := json.Unmarshal(data, &fs.scores); err != nil {
			return nil, fmt.Errorf("parsing score file %q: %w", path, err)
		}
	}

	return fs, nil
}

// Record adds a score under its difficulty, keeping the table sorted
// best first and trimmed, then rewrites the file.
func (f *FileStore) Record(_ context.Context, rec scoreboard.Record) error {
	table := append(f.scores[rec.Difficulty], rec)
	sort.SliceStable(table, func(a, b int) bool { return table[a].Score > table[b].Score })
	if len(table) > f.maxKept {
		table = table[:f.maxKept]
	}
	f.scores[rec.Difficulty] = table
	return f.save()
}

// TopScores returns up to n best scores for the difficulty.
func (f *FileStore) TopScores(_ context.Context, difficulty string, n int) ([]scoreboard.Record, error) {
	table := f.scores[difficulty]
	if n < 0 {
		n = 0
	}
	if n > len(table) {
		n = len(table)
	}
	out := make([]scoreboard.Record, n)
	copy(out, table[:n])
	return out, nil
}

func (f *FileStore) seed() {
	for _, difficulty := range []string{"easy", "medium", "hard"} {
		for _, s := range defaultSeeds {
			f.scores[difficulty] = append(f.scores[difficulty], scoreboard.Record{
				Player:     s.Player,
				Difficulty: difficulty,
				Score:      s.Score,
			})
		}
	}
}

func (f *FileStore) save() error {
	data, err := json.MarshalIndent(f.scores, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, data, 0o644)
}
