package command

import (
	"context"
	"fmt"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/services/core/appointments"
	"telecare-service/internal/app/services/core/doctors"
	"telecare-service/internal/app/services/core/feedbacks"
	"telecare-service/internal/app/services/core/locations"
	"telecare-service/internal/app/services/core/patients"
	"telecare-service/internal/app/services/core/slot"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var indexesCmd = &cobra.Command{
	Use:   "indexes",
	Short: "Create MongoDB indexes",
	Long:  "The indexes command creates every collection index the service relies on, including the unique booking key",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		return createIndexes(ctx, deps.mongoDB, deps.log)
	},
}

func createIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	repositories := map[string]interface{}{
		"doctors":      doctors.NewDoctorMongoRepository(db),
		"patients":     patients.NewPatientMongoRepository(db),
		"locations":    locations.NewLocationMongoRepository(db),
		"slots":        slot.NewSlotMongoRepository(db),
		"appointments": appointments.NewAppointmentMongoRepository(db),
		"feedback":     feedbacks.NewFeedbackMongoRepository(db),
	}

	for name, repository := range repositories {
		initializer, ok := repository.(contracts.IndexInitializer)
		if !ok {
			continue
		}
		if err := initializer.Initialize(ctx); err != nil {
			return fmt.Errorf("creating %s indexes: %w", name, err)
		}
		log.Info("Indexes ready", zap.String("collection", name))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(indexesCmd)
}
