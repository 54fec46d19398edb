package main

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Amaan1001/fitflow-ai/internal/api"
	"github.com/Amaan1001/fitflow-ai/internal/catalog"
	"github.com/Amaan1001/fitflow-ai/internal/config"
	"github.com/Amaan1001/fitflow-ai/internal/llm"
	"github.com/Amaan1001/fitflow-ai/internal/repository"
	"github.com/Amaan1001/fitflow-ai/internal/repository/jsonfile"
	mongorepo "github.com/Amaan1001/fitflow-ai/internal/repository/mongo"
	"github.com/Amaan1001/fitflow-ai/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type repositories struct {
	profiles  repository.ProfileRepository
	logs      repository.WorkoutLogRepository
	stats     repository.StatsRepository
	intensity repository.IntensityRepository
	unlocks   repository.UnlockRepository
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("could not load config", zap.Error(err))
	}
	logger.Info("configuration loaded", zap.String("storage_driver", cfg.Storage.Driver))

	cat, err := catalog.Load(cfg.Data.Dir)
	if err != nil {
		logger.Fatal("could not load exercise catalog", zap.Error(err))
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Fatal("could not initialize storage", zap.Error(err))
	}
	defer cleanup()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	profileService := service.NewProfileService(repos.profiles)
	planService := service.NewPlanService(cat, rng)
	gamificationService := service.NewGamificationService(repos.stats, repos.unlocks, logger)
	recoveryService := service.NewRecoveryService(repos.intensity)
	workoutService := service.NewWorkoutService(repos.profiles, repos.logs, gamificationService, recoveryService, cat, logger)

	generator := llm.NewOllamaClient(cfg.LLM.BaseURL, cfg.LLM.Model, cfg.LLM.Timeout)
	coachService := service.NewCoachService(profileService, gamificationService, cat, generator)

	router := gin.New()
	router.Use(api.RequestLogger(logger), gin.Recovery())

	api.SetupRoutes(router, profileService, planService, workoutService,
		gamificationService, recoveryService, coachService, cat)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen and serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exiting")
}

// buildRepositories wires the configured storage backend. The file driver is
// the default; mongo is selected with storage.driver=mongo.
func buildRepositories(cfg config.Config, logger *zap.Logger) (repositories, func(), error) {
	if cfg.Storage.Driver == "mongo" {
		client, err := mongorepo.ConnectDB(cfg.Database.URI)
		if err != nil {
			return repositories{}, nil, err
		}
		db := client.Database(cfg.Database.Name)

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			mongorepo.EnsureProfileIndexes(ctx, db.Collection("profiles"))
			mongorepo.EnsureWorkoutLogIndexes(ctx, db.Collection("workout_logs"))
			mongorepo.EnsureStatsIndexes(ctx, db.Collection("user_stats"))
			mongorepo.EnsureIntensityIndexes(ctx, db.Collection("workout_intensity"))
			mongorepo.EnsureUnlockIndexes(ctx, db.Collection("achievement_unlocks"))
		}()

		cleanup := func() {
			if err := mongorepo.DisconnectDB(client); err != nil {
				logger.Error("failed to disconnect mongodb", zap.Error(err))
			}
		}
		return repositories{
			profiles:  mongorepo.NewMongoProfileRepository(db),
			logs:      mongorepo.NewMongoWorkoutLogRepository(db),
			stats:     mongorepo.NewMongoStatsRepository(db),
			intensity: mongorepo.NewMongoIntensityRepository(db),
			unlocks:   mongorepo.NewMongoUnlockRepository(db),
		}, cleanup, nil
	}

	store, err := jsonfile.NewStore(cfg.Storage.Dir)
	if err != nil {
		return repositories{}, nil, err
	}
	return repositories{
		profiles:  jsonfile.NewProfileRepository(store),
		logs:      jsonfile.NewWorkoutLogRepository(store),
		stats:     jsonfile.NewStatsRepository(store),
		intensity: jsonfile.NewIntensityRepository(store),
		unlocks:   jsonfile.NewUnlockRepository(store),
	}, func() {}, nil
}
