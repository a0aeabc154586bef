package config

import "time"

const (
	DefaultMongoURI          = "mongodb://localhost:27017"
	DefaultMongoDatabaseName = "roomly"
	DefaultMongoConnTimeout  = 10 * time.Second

	DefaultPort     = "8080"
	DefaultLogLevel = "info"

	DefaultRateLimitRequests = 30
	DefaultRateLimitWindow   = 1 * time.Minute

	DefaultRequestTimeout = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
	DefaultMaxRequestSize = 1 * 1024 * 1024 // 1MB

	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 30 * time.Second

	DefaultCORSAllowedOrigins = "*"

	// Booking policy: windows of 30 minutes to 4 hours, same day only,
	// inside 09:00-18:00 local time.
	DefaultBookingMinDurationMin = 30
	DefaultBookingMaxDurationMin = 240
	DefaultBookingOpeningHour    = 9
	DefaultBookingClosingHour    = 18
	DefaultBookingLockTTL        = 10 * time.Second

	DefaultBookingEventsTopic    = "roomly.booking-events"
	DefaultBookingEventsDLQTopic = "roomly.booking-events.dlq"
	DefaultNotifierGroupID       = "roomly-notifier"

	// Empty SMTP host puts the notifier in log-only mode.
	DefaultSMTPHost = ""
	DefaultSMTPPort = "587"
	DefaultSMTPFrom = "bookings@roomly.local"
)
