package main

import (
	"context"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"queuekit/cmd/queuectl/command"
	"queuekit/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger := log.New()
	cfg := config.New()

	const description = "Queue playground: array and linked queues, FIFO or by priority"
	root := &cobra.Command{
		Use:          "queuectl",
		Short:        description,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := cfg.Load(); err != nil {
				return err
			}
			logger.SetLevel(cfg.LogLevel)
			return nil
		},
	}
	cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		command.Run{Logger: logger}.Command(ctx, cfg),
		command.Jobs{Logger: logger}.Command(ctx, cfg),
	)

	if err := root.ExecuteContext(ctx); err != nil {
		logger.WithContext(ctx).Fatalf("failed to execute root command: \n%v", err)
	}
}
