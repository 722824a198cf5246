package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"telecare-service/internal/app/config"
	"telecare-service/internal/app/contracts"
	"telecare-service/internal/app/delivery/http/controllers"
	"telecare-service/internal/app/delivery/http/middlewares"
	"telecare-service/internal/app/delivery/http/routers"
	"telecare-service/internal/app/drivers/database"
	"telecare-service/internal/app/drivers/logger"
	"telecare-service/internal/app/drivers/messaging"
	"telecare-service/internal/app/drivers/storage"
	"telecare-service/internal/app/services/core/appointments"
	"telecare-service/internal/app/services/core/doctors"
	"telecare-service/internal/app/services/core/feedbacks"
	"telecare-service/internal/app/services/core/locations"
	"telecare-service/internal/app/services/core/patients"
	"telecare-service/internal/app/services/core/slot"
	"telecare-service/internal/app/services/shared/eventqueue"
	"telecare-service/internal/app/services/shared/locker"
	"telecare-service/internal/app/services/shared/ratelimiter"
	"telecare-service/internal/app/services/shared/redis"
	sharedStorage "telecare-service/internal/app/services/shared/storage"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig, log)
	redisClient := database.NewRedisClient(driverConfig, log)
	minioClient := storage.NewMinio(driverConfig, log, internalConfig.Minio.ScheduleExportBucketName)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Minio:          minioClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening",
			zap.String("address", internalConfig.App.Port),
			zap.String("version", internalConfig.App.Version),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	bookingLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)

	var eventPublisher contracts.EventPublisher = eventqueue.NewNoopPublisher(log)
	if bootstrap.RabbitMQ != nil {
		eventService, err := eventqueue.NewService(bootstrap.RabbitMQ, log, internalConfig.RabbitMQ.EventsQueue)
		if err != nil {
			return err
		}
		eventPublisher = eventService
	}

	// Repositories
	doctorRepository := doctors.NewDoctorMongoRepository(bootstrap.MongoDB)
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB)
	locationRepository := locations.NewLocationMongoRepository(bootstrap.MongoDB)
	slotRepository := slot.NewSlotMongoRepository(bootstrap.MongoDB)
	appointmentRepository := appointments.NewAppointmentMongoRepository(bootstrap.MongoDB)
	feedbackRepository := feedbacks.NewFeedbackMongoRepository(bootstrap.MongoDB)

	// Slot and availability
	slotUsecase, err := slot.NewSlotUsecase(
		slotRepository,
		locationRepository,
		doctorRepository,
		appointmentRepository,
		redisRepository,
		lockService,
		minioStorage,
		internalConfig,
		log,
	)
	if err != nil {
		return err
	}

	availabilityWorker := slot.NewWorker(log, internalConfig, lockService, doctorRepository, slotUsecase)
	availabilityWorker.Start(context.Background())
	bootstrap.AvailabilityWorkerStop = availabilityWorker.Stop

	// Usecases
	doctorUsecase := doctors.NewDoctorUsecase(doctorRepository, feedbackRepository, slotUsecase, internalConfig, log)
	patientUsecase := patients.NewPatientUsecase(patientRepository, doctorRepository, log)
	locationUsecase := locations.NewLocationUsecase(locationRepository, doctorRepository, slotRepository, slotUsecase, lockService, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(
		appointmentRepository,
		doctorRepository,
		patientRepository,
		locationRepository,
		slotUsecase,
		lockService,
		bookingLimiter,
		eventPublisher,
		internalConfig,
		log,
	)
	feedbackUsecase := feedbacks.NewFeedbackUsecase(feedbackRepository, appointmentRepository, doctorRepository, eventPublisher, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares, &routers.Controllers{
		Health: controllers.NewHealthController(log, internalConfig.App.Version, map[string]controllers.Pinger{
			"mongodb": func(ctx context.Context) error {
				return bootstrap.MongoDB.Client().Ping(ctx, readpref.Primary())
			},
			"redis": func(ctx context.Context) error {
				return bootstrap.Redis.Ping(ctx).Err()
			},
		}),
		Doctor:      controllers.NewDoctorController(log, doctorUsecase),
		Patient:     controllers.NewPatientController(log, patientUsecase),
		Location:    controllers.NewLocationController(log, locationUsecase),
		Slot:        controllers.NewSlotController(log, slotUsecase),
		Appointment: controllers.NewAppointmentController(log, appointmentUsecase),
		Feedback:    controllers.NewFeedbackController(log, feedbackUsecase),
	})

	return nil
}
