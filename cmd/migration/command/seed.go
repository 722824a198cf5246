package command

import (
	"context"
	"fmt"
	"telecare-service/internal/app/models"
	"telecare-service/internal/app/services/core/doctors"
	"telecare-service/internal/app/services/core/locations"
	"telecare-service/internal/app/services/core/slot"
	"telecare-service/internal/pkg/constvars"
	"telecare-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	seedEmail    string
	seedPassword string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert a demo doctor",
	Long:  "The seed command inserts an approved demo doctor with two locations and a weekday schedule unless the email is already taken",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		return seedDemoDoctor(ctx, deps.mongoDB, deps.log, time.Now())
	},
}

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func seedDemoDoctor(ctx context.Context, db *mongo.Database, log *zap.Logger, now time.Time) error {
	doctorRepository := doctors.NewDoctorMongoRepository(db)
	locationRepository := locations.NewLocationMongoRepository(db)
	slotRepository := slot.NewSlotMongoRepository(db)

	existing, err := doctorRepository.FindByEmail(ctx, seedEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		log.Info("Demo doctor already present, nothing to seed", zap.String(constvars.LoggingDoctorIDKey, existing.ID))
		return nil
	}

	hashedPassword, err := utils.HashPassword(seedPassword)
	if err != nil {
		return err
	}
	doctorID, err := utils.GenerateDoctorID()
	if err != nil {
		return err
	}

	doctor := &models.Doctor{
		ID:                  doctorID,
		Email:               seedEmail,
		Password:            hashedPassword,
		FirstName:           "Amelia",
		LastName:            "Hart",
		Gender:              "female",
		DateOfBirth:         "1982-04-17",
		Specialty:           "Cardiologist",
		Phone:               "+15550100200",
		LicenseNumber:       "MD-204817",
		YearsOfExperience:   now.Year() - 2010,
		Bio:                 "Demo cardiologist seeded for local development.",
		AppointmentInterval: constvars.DefaultAppointmentIntervalMinutes,
		TimeFormat:          constvars.TimeFormat24h,
		DateFormat:          constvars.DateFormats[2],
		ApprovalStatus:      constvars.ApprovalStatusApproved,
	}
	doctor.SetCreatedAtUpdatedAt(now)
	if err := doctorRepository.CreateDoctor(ctx, doctor); err != nil {
		return err
	}

	clinics := []models.HospitalLocation{
		{ID: uuid.NewString(), DoctorID: doctorID, Name: "Riverside Heart Clinic", Address: "12 River Road, Springfield", IsActive: true},
		{ID: uuid.NewString(), DoctorID: doctorID, Name: "Northgate Medical Center", Address: "480 Northgate Ave, Springfield", IsActive: true},
	}
	for i := range clinics {
		clinics[i].SetCreatedAtUpdatedAt(now)
		if err := locationRepository.CreateLocation(ctx, &clinics[i]); err != nil {
			return err
		}
	}

	var slots []models.AppointmentSlot
	for i, day := range weekdays {
		online := models.AppointmentSlot{
			ID:        uuid.NewString(),
			DoctorID:  doctorID,
			DayOfWeek: day,
			StartTime: "09:00",
			EndTime:   "12:00",
			Mode:      constvars.AppointmentModeOnline,
			IsActive:  true,
		}
		inPerson := models.AppointmentSlot{
			ID:         uuid.NewString(),
			DoctorID:   doctorID,
			DayOfWeek:  day,
			StartTime:  "13:00",
			EndTime:    "17:00",
			Mode:       constvars.AppointmentModeInPerson,
			LocationID: clinics[i%len(clinics)].ID,
			IsActive:   true,
		}
		online.SetCreatedAtUpdatedAt(now)
		inPerson.SetCreatedAtUpdatedAt(now)
		slots = append(slots, online, inPerson)
	}
	if err := slotRepository.CreateSlots(ctx, slots); err != nil {
		return fmt.Errorf("creating demo slots: %w", err)
	}

	log.Info("Seeded demo doctor",
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Int("locations", len(clinics)),
		zap.Int("slots", len(slots)),
	)
	return nil
}

func init() {
	seedCmd.Flags().StringVar(&seedEmail, "email", "demo.doctor@telecare.local", "Email of the demo doctor")
	seedCmd.Flags().StringVar(&seedPassword, "password", "Demo#Pass123", "Password of the demo doctor")
	rootCmd.AddCommand(seedCmd)
}
