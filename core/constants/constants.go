package constants

const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 5 // minutes

	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

const (
	ContextSession = "session"

	SessionCookieName = "event_portal_session"
	SessionIssuer     = "event-portal"
)

const (
	RedisKeySessionRevoked = "session:revoked:"
)

const (
	QueueDefault = "default"

	TaskRegistrationConfirmation = "registration:confirmation"
	TaskMaxRetry                 = 3
	WorkerConcurrency            = 5
)

const (
	PhoneLength   = 10
	DefaultLocale = "en"
	ExportPrefix  = "exports/"
)
