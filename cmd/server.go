package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"taskforperks.com/taskforperks/internal/cache"
	config "taskforperks.com/taskforperks/internal/configs"
	httpapi "taskforperks.com/taskforperks/internal/http"
	"taskforperks.com/taskforperks/internal/notify"
	repository "taskforperks.com/taskforperks/internal/repositories"
	"taskforperks.com/taskforperks/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the claim API server",
	Long:  "Starts the task-claim HTTP API and the claim expiry sweeper",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		database := config.New(cfg.DatabaseDSN)

		taskRepo := repository.NewTaskRepository(database)
		claimRepo := repository.NewClaimRepository(database)

		publisher := notify.NewRedisPublisher(redisClient, cfg.RedisChannel)
		invalidator := cache.NewRedisInvalidator(redisClient, cfg.CacheKeyPrefix)

		claimService := services.NewClaimService(claimRepo, publisher, invalidator)
		taskService := services.NewTaskService(taskRepo)

		sweeper := services.NewExpiryService(
			claimRepo,
			publisher,
			invalidator,
			time.Duration(cfg.ClaimSweepIntervalSeconds)*time.Second,
		)

		e := echo.New()

		handler := httpapi.NewHandler(claimService, taskService)
		httpapi.Register(e, handler, cfg.RateLimit)

		go func() {
			log.Printf("HTTP server listening on %s", cfg.AppURL)
			if err := e.Start(cfg.AppURL); err != nil {
				log.Printf("server stopped: %v", err)
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		ctx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second,
		)
		defer cancel()

		_ = e.Shutdown(ctx)
		sweeper.Shutdown(ctx)

		log.Println("HTTP server and expiry sweeper shut down gracefully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
