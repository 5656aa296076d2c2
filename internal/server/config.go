package server

import (
	"os"

	"github.com/cyphera/cyphera-fees/internal/constants"
	"github.com/cyphera/cyphera-fees/internal/helpers"
	"github.com/pkg/errors"
)

// Config holds the environment configuration of the API server
type Config struct {
	Stage           string
	Port            string
	FeeSchedulePath string
	GinMode         string

	CORSAllowedOrigins []string
	CORSAllowedMethods []string
	CORSAllowedHeaders []string

	RateLimitRPS   int
	RateLimitBurst int

	// TrustedProxies lists proxy IPs or CIDRs whose forwarding headers are
	// honoured. Empty means the peer address is always the client.
	TrustedProxies []string
}

// LoadConfig reads the configuration from the environment. Call
// godotenv.Load first when a .env file should be honoured.
func LoadConfig() (Config, error) {
	cfg := Config{
		Stage:              helpers.GetEnvWithDefault("STAGE", helpers.StageLocal),
		Port:               helpers.GetEnvWithDefault("PORT", constants.DefaultPort),
		FeeSchedulePath:    helpers.GetEnvWithDefault("FEE_SCHEDULE_PATH", constants.DefaultFeeSchedulePath),
		GinMode:            os.Getenv("GIN_MODE"),
		CORSAllowedOrigins: helpers.SplitAndTrim(helpers.GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		CORSAllowedMethods: helpers.SplitAndTrim(helpers.GetEnvWithDefault("CORS_ALLOWED_METHODS", "GET,POST,OPTIONS")),
		CORSAllowedHeaders: helpers.SplitAndTrim(helpers.GetEnvWithDefault("CORS_ALLOWED_HEADERS", "Origin,Content-Type,Accept,X-Correlation-ID")),
		RateLimitRPS:       helpers.GetEnvInt("RATE_LIMIT_RPS", constants.DefaultRateLimitRPS),
		RateLimitBurst:     helpers.GetEnvInt("RATE_LIMIT_BURST", constants.DefaultRateLimitBurst),
		TrustedProxies:     helpers.SplitAndTrim(os.Getenv("TRUSTED_PROXIES")),
	}

	if !helpers.IsValidStage(cfg.Stage) {
		return Config{}, errors.Errorf("invalid STAGE %q", cfg.Stage)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst <= 0 {
		return Config{}, errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return cfg, nil
}

// IsDevelopment reports whether request logging should be verbose
func (c Config) IsDevelopment() bool {
	return c.Stage != helpers.StageProd && c.GinMode != "release"
}
