package i

import (
	"context"

	"github.com/darthkolli145/Mazegame/scoreboard"
)

// ScoreStore defines the interface for high-score persistence.
type ScoreStore interface {
	// Record persists the score of one completed run.
	Record(ctx context.Context, rec scoreboard.Record) error

	// TopScores retrieves up to n best scores for a difficulty tier,
	// best first.
	TopScores(ctx context.Context, difficulty string, n int) ([]scoreboard.Record, error)
}
