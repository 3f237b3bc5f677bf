package config

import (
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
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
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                                  utils.GetEnvString("APP_ENV", "development"),
			Port:                                 utils.GetEnvString("APP_PORT", ":3000"),
			Version:                              utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:                              utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                             utils.GetEnvString("APP_TIMEZONE", "UTC"),
			AllowedOrigins:                       utils.GetEnvString("APP_ALLOWED_ORIGINS", "http://localhost:3000"),
			MaxRequests:                          utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeoutInSeconds:             utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutInSeconds:              utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
			RequestBodyLimitInMegabyte:           utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			ForgotPasswordRedirectDelayInSeconds: utils.GetEnvInt("APP_FORGOT_PASSWORD_REDIRECT_DELAY_IN_SECONDS", int(constvars.ForgotPasswordRedirectDelay.Seconds())),
		},
		Backend: AppBackend{
			BaseUrl:                 utils.GetEnvString("BACKEND_BASE_URL", "http://localhost:8080/api"),
			RequestTimeoutInSeconds: utils.GetEnvInt("BACKEND_REQUEST_TIMEOUT_IN_SECONDS", 15),
			MaxRequestsPerSecond:    utils.GetEnvInt("BACKEND_MAX_REQUESTS_PER_SECOND", 50),
			Burst:                   utils.GetEnvInt("BACKEND_BURST", 10),
		},
		Session: AppSession{
			CookieName:                 utils.GetEnvString("SESSION_COOKIE_NAME", "medibook_session"),
			CookieSecure:               utils.GetEnvBool("SESSION_COOKIE_SECURE", false),
			JWTSecret:                  utils.GetEnvString("SESSION_JWT_SECRET", "medibook-dev-secret"),
			SubmissionLockTTLInSeconds: utils.GetEnvInt("SESSION_SUBMISSION_LOCK_TTL_IN_SECONDS", 30),
		},
	}
}
