package config

import "time"

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	Address                    string `mapstructure:"address"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	MaxRequests                int    `mapstructure:"max_requests"`
	// CorsAllowedOrigins empty means every origin is allowed.
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
	// BookingBurstPerSecond and BookingBlockTimeInSeconds drive the per-IP limiter on POST /appointments.
	BookingBurstPerSecond     int `mapstructure:"booking_burst_per_second"`
	BookingBlockTimeInSeconds int `mapstructure:"booking_block_time_in_seconds"`
	// BookingQuotaPerPatient bounds bookings per patient inside BookingQuotaWindowInSeconds. Zero disables it.
	BookingQuotaPerPatient        int `mapstructure:"booking_quota_per_patient"`
	BookingQuotaWindowInSeconds   int `mapstructure:"booking_quota_window_in_seconds"`
	BookingLockTimeoutInSeconds   int `mapstructure:"booking_lock_timeout_in_seconds"`
	AvailabilityCacheTTLInSeconds int `mapstructure:"availability_cache_ttl_in_seconds"`
	// AvailabilityWindowDays is how many days ahead the warmer precomputes.
	AvailabilityWindowDays int `mapstructure:"availability_window_days"`
	// AvailabilityWorkerCronSpec is a robfig/cron expression, for example "@every 30m".
	AvailabilityWorkerCronSpec               string `mapstructure:"availability_worker_cron_spec"`
	DoctorProfileCacheSize                   int    `mapstructure:"doctor_profile_cache_size"`
	DoctorProfileCacheTTLInSeconds           int    `mapstructure:"doctor_profile_cache_ttl_in_seconds"`
	MinioPreSignedUrlObjectExpiryTimeInHours int    `mapstructure:"minio_pre_signed_url_object_expiry_time_in_hours"`
}

type AppMinio struct {
	ScheduleExportBucketName string `mapstructure:"schedule_export_bucket_name"`
}

type AppRabbitMQ struct {
	EventsQueue string `mapstructure:"events_queue"`
}

// Location loads the configured timezone, falling back to UTC when it is unknown.
func (a App) Location() *time.Location {
	if a.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
