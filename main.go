package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/darthkolli145/Mazegame/config"
	"github.com/darthkolli145/Mazegame/infrastruture/scorestore"
	"github.com/darthkolli145/Mazegame/service"
	"github.com/darthkolli145/Mazegame/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	redisClient *redis.Client
	mongoClient *mongo.Client
	scoreStore  i.ScoreStore
	gameService *service.GameService
	appLogger   *log.Logger
)

func initScoreStore(ctx context.Context) {
	var err error
	switch {
	case config.Envs.RedisAddr != "":
		redisClient = redis.NewClient(&redis.Options{
			Addr:     config.Envs.RedisAddr,
			Password: config.Envs.RedisPassword,
		})
		if err = redisClient.Ping(ctx).Err(); err != nil {
			appLogger.Printf("%s[ERROR]%s Redis ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		scoreStore, err = scorestore.NewRedisStore(redisClient, config.Envs.MaxScoresKept)
		if err != nil {
			appLogger.Printf("%s[ERROR]%s Creating Redis score store: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		appLogger.Printf("%s[INFO]%s Redis score store initialized", config.LogInfoColor, config.LogColorReset)

	case config.Envs.MongoURI != "":
		clientOptions := options.Client().ApplyURI(config.Envs.MongoURI)
		mongoClient, err = mongo.Connect(ctx, clientOptions)
		if err != nil {
			appLogger.Printf("%s[ERROR]%s Failed to connect to MongoDB: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		if err = mongoClient.Ping(ctx, nil); err != nil {
			appLogger.Printf("%s[ERROR]%s MongoDB ping failed: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		scoreStore = scorestore.NewMongoStore(mongoClient, config.Envs.MongoDBName, "scores")
		appLogger.Printf("%s[INFO]%s MongoDB score store initialized", config.LogInfoColor, config.LogColorReset)

	default:
		scoreStore, err = scorestore.NewFileStore(config.Envs.ScoreFile, config.Envs.MaxScoresKept)
		if err != nil {
			appLogger.Printf("%s[ERROR]%s Opening score file: %v", config.LogErrorColor, config.LogColorReset, err)
			os.Exit(1)
		}
		appLogger.Printf("%s[INFO]%s File score store initialized at %s", config.LogInfoColor, config.LogColorReset, config.Envs.ScoreFile)
	}
}

func initGameService() {
	var err error
	gameService, err = service.NewGameService(&service.Config{
		Store:             scoreStore,
		Logger:            appLogger,
		SolverTimeout:     config.Envs.SolverTimeout,
		SolverOutputLimit: config.Envs.SolverOutputLimit,
	})
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Creating game service: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	appLogger.Printf("%s[INFO]%s Game service initialized", config.LogInfoColor, config.LogColorReset)
}

func main() {
	difficulty := flag.String("difficulty", "medium", "difficulty tier: easy, medium or hard")
	seed := flag.Int64("seed", time.Now().UnixNano(), "maze seed, for reproducible runs")
	solver := flag.String("solver", "", "path to a solver executable; empty uses the built-in BFS solver")
	player := flag.String("player", "Algorithm", "name recorded on the scoreboard")
	flag.Parse()

	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Initialize dependencies
	initScoreStore(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(ctx)
		}
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()
	initGameService()

	sess, err := gameService.StartMatch(*difficulty, *seed)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Starting match: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	fmt.Println(sess.Grid().String())

	res, err := gameService.RunAlgorithm(ctx, sess, *solver)
	if err != nil {
		// Algorithm failures are not fatal: the session stays open for
		// manual control, which this CLI does not provide.
		os.Exit(1)
	}

	rec, err := gameService.FinishMatch(ctx, sess, *player)
	if err != nil {
		os.Exit(1)
	}

	fmt.Printf("Completed %s maze in %d moves (%d replans): %d points\n", *difficulty, res.Moves, res.Replans, rec.Score)
	if sess.Revealed() {
		fmt.Println("Path reveal was collected during the run.")
	}

	top, err := gameService.TopScores(ctx, *difficulty, 5)
	if err != nil {
		appLogger.Printf("%s[ERROR]%s Fetching top scores: %v", config.LogErrorColor, config.LogColorReset, err)
		os.Exit(1)
	}
	fmt.Printf("High scores (%s):\n", *difficulty)
	for n, r := range top {
		fmt.Printf("%d. %s: %d\n", n+1, r.Player, r.Score)
	}
}
