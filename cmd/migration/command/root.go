package command

import (
	"context"
	"fmt"
	"os"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/drivers/database"
	"telecare-service/internal/app/drivers/logger"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var timeout time.Duration

// deps is filled by the root command before any subcommand runs.
var deps struct {
	log     *zap.Logger
	mongoDB *mongo.Database
}

var rootCmd = &cobra.Command{
	Use:   "migration",
	Short: "Database maintenance for the telecare service",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		driverConfig := config.NewDriverConfig()
		internalConfig := config.NewInternalConfig()

		deps.log = logger.NewZapLogger(driverConfig, internalConfig)
		deps.mongoDB = database.NewMongoDB(driverConfig, deps.log)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = deps.log.Sync()
		return deps.mongoDB.Client().Disconnect(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVarP(&timeout, "timeout", "t", time.Minute, "Timeout for the whole command")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
