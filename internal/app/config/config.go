package config

import (
	"telecare-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "telecare"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", true),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                      utils.GetEnvString("APP_ENV", "development"),
			Port:                                     utils.GetEnvString("APP_PORT", ":8080"),
			Version:                                  utils.GetEnvString("APP_VERSION", "v1"),
			Address:                                  utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                                 utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:                           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                              utils.GetEnvInt("APP_MAX_REQUEST", 10),
			CorsAllowedOrigins:                       utils.GetEnvStringSlice("APP_CORS_ALLOWED_ORIGINS", nil),
			ShutdownTimeoutInSeconds:                 utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:               utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			BookingBurstPerSecond:                    utils.GetEnvInt("APP_BOOKING_BURST_PER_SECOND", 5),
			BookingBlockTimeInSeconds:                utils.GetEnvInt("APP_BOOKING_BLOCK_TIME_IN_SECONDS", 30),
			BookingQuotaPerPatient:                   utils.GetEnvInt("APP_BOOKING_QUOTA_PER_PATIENT", 5),
			BookingQuotaWindowInSeconds:              utils.GetEnvInt("APP_BOOKING_QUOTA_WINDOW_IN_SECONDS", 60),
			BookingLockTimeoutInSeconds:              utils.GetEnvInt("APP_BOOKING_LOCK_TIMEOUT_IN_SECONDS", 10),
			AvailabilityCacheTTLInSeconds:            utils.GetEnvInt("APP_AVAILABILITY_CACHE_TTL_IN_SECONDS", 300),
			AvailabilityWindowDays:                   utils.GetEnvInt("APP_AVAILABILITY_WINDOW_DAYS", 14),
			AvailabilityWorkerCronSpec:               utils.GetEnvString("APP_AVAILABILITY_WORKER_CRON_SPEC", "@every 30m"),
			DoctorProfileCacheSize:                   utils.GetEnvInt("APP_DOCTOR_PROFILE_CACHE_SIZE", 512),
			DoctorProfileCacheTTLInSeconds:           utils.GetEnvInt("APP_DOCTOR_PROFILE_CACHE_TTL_IN_SECONDS", 60),
			MinioPreSignedUrlObjectExpiryTimeInHours: utils.GetEnvInt("APP_MINIO_PRE_SIGNED_URL_OBJECT_EXPIRY_TIME_IN_HOURS", 24),
		},
		Minio: AppMinio{
			ScheduleExportBucketName: utils.GetEnvString("APP_MINIO_SCHEDULE_EXPORT_BUCKET_NAME", "schedule-exports"),
		},
		RabbitMQ: AppRabbitMQ{
			EventsQueue: utils.GetEnvString("APP_RABBITMQ_EVENTS_QUEUE", "telecare_domain_events"),
		},
	}
}
