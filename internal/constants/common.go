package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to production logs
	ServiceName = "cyphera-fees"

	// Object names in API responses
	ObjectFeeEstimate = "fee_estimate"
	ObjectFeeSchedule = "fee_schedule"
	ObjectNetwork     = "network"
	ObjectList        = "list"
)

// Defaults for environment configuration
const (
	DefaultPort            = "8000"
	DefaultFeeSchedulePath = "configs/fee_schedules.json"
	DefaultRateLimitRPS    = 100
	DefaultRateLimitBurst  = 200
	DefaultDecimals        = 18
)
