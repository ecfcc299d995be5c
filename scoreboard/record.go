// Package scoreboard defines the score record produced when a maze run
// completes. Persistence lives behind the service ScoreStore interface.
package scoreboard

import "time"

// Record captures the outcome of one completed maze run.
type Record struct {
	Player            string    `json:"player" bson:"player"`
	Difficulty        string    `json:"difficulty" bson:"difficulty"`
	Score             int       `json:"score" bson:"score"`
	ElapsedSeconds    float64   `json:"elapsedSeconds" bson:"elapsedSeconds"`
	Moves             int       `json:"moves" bson:"moves"`
	PowerupsCollected int       `json:"powerupsCollected" bson:"powerupsCollected"`
	CreatedAt         time.Time `json:"createdAt" bson:"createdAt"`
}
