package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DifficultySettings holds the tunables of one difficulty tier.
type DifficultySettings struct {
	MazeWidth       int     // Number of columns in the maze
	MazeHeight      int     // Number of rows in the maze
	PowerupCount    int     // Powerups scattered through the maze
	PortalPairCount int     // Linked portal pairs scattered through the maze
	TimeFactor      int     // Score lost per second of play
	MovePenalty     int     // Score lost per move taken
	ScoreMultiplier float64 // Final score multiplier for the tier
}

// Difficulties maps tier names to their settings.
var Difficulties = map[string]DifficultySettings{
	"easy":   {MazeWidth: 10, MazeHeight: 10, PowerupCount: 1, PortalPairCount: 1, TimeFactor: 5, MovePenalty: 2, ScoreMultiplier: 0.8},
	"medium": {MazeWidth: 15, MazeHeight: 15, PowerupCount: 2, PortalPairCount: 1, TimeFactor: 10, MovePenalty: 5, ScoreMultiplier: 1.0},
	"hard":   {MazeWidth: 20, MazeHeight: 20, PowerupCount: 3, PortalPairCount: 2, TimeFactor: 15, MovePenalty: 8, ScoreMultiplier: 1.5},
}

// Config holds the application's configuration values.
type Config struct {
	ScoreFile         string        // Path of the flat high-score file
	RedisAddr         string        // Redis address for the score store; empty disables Redis
	RedisPassword     string        // Password for the Redis instance
	MongoURI          string        // MongoDB URI for the score store; empty disables MongoDB
	MongoDBName       string        // Name of the MongoDB database
	SolverTimeout     time.Duration // Wall-clock budget for one external solver run
	SolverOutputLimit int64         // Ceiling, in bytes, on solver output
	MaxScoresKept     int           // Scores retained per difficulty tier
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		ScoreFile:         getEnvWithDefault("SCORE_FILE", "maze_scores.json"),
		RedisAddr:         getEnvWithDefault("REDIS_ADDR", ""),
		RedisPassword:     getEnvWithDefault("REDIS_PASS", ""),
		MongoURI:          getEnvWithDefault("MONGO_URI", ""),
		MongoDBName:       getEnvWithDefault("MONGO_DB", "mazegame"),
		SolverTimeout:     time.Duration(getEnvAsIntWithDefault("SOLVER_TIMEOUT_MS", 5000)) * time.Millisecond,
		SolverOutputLimit: int64(getEnvAsIntWithDefault("SOLVER_OUTPUT_LIMIT", 1<<20)),
		MaxScoresKept:     getEnvAsIntWithDefault("MAX_SCORES_KEPT", 50),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// or returns a default value if not set. Logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
