package cmd

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/rueidis"
	"github.com/spf13/cobra"

	config "taskforperks.com/taskforperks/internal/configs"
)

// listenCmd tails the task-change channel the claim API publishes to.
// Handy as a stand-in for the live dashboard while developing.
var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Subscribe to task-change events",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := godotenv.Load(); err != nil {
			log.Println(".env file not found, using environment variables")
		}

		cfg := config.Load()

		redisClient := config.NewRedisClient(cfg.RedisAddr)
		defer redisClient.Close()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		log.Printf("listening on channel %s", cfg.RedisChannel)

		err := redisClient.Receive(
			ctx,
			redisClient.B().Subscribe().Channel(cfg.RedisChannel).Build(),
			func(msg rueidis.PubSubMessage) {
				log.Printf("task change: %s", msg.Message)
			},
		)
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}

		log.Println("listener stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listenCmd)
}
