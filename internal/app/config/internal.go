package config

import "time"

type InternalConfig struct {
	App     App
	Backend AppBackend
	Session AppSession
}

type App struct {
	Env                                  string
	Port                                 string
	Version                              string
	Address                              string
	Timezone                             string
	AllowedOrigins                       string
	MaxRequests                          int
	ShutdownTimeoutInSeconds             int
	RequestTimeoutInSeconds              int
	RequestBodyLimitInMegabyte           int
	ForgotPasswordRedirectDelayInSeconds int
}

// AppBackend configures the client for the booking REST API.
type AppBackend struct {
	BaseUrl                 string
	RequestTimeoutInSeconds int
	MaxRequestsPerSecond    int
	Burst                   int
}

type AppSession struct {
	CookieName                 string
	CookieSecure               bool
	JWTSecret                  string
	SubmissionLockTTLInSeconds int
}

func (a App) ForgotPasswordRedirectDelay() time.Duration {
	return time.Duration(a.ForgotPasswordRedirectDelayInSeconds) * time.Second
}

func (a App) RequestTimeout() time.Duration {
	return time.Duration(a.RequestTimeoutInSeconds) * time.Second
}

func (b AppBackend) RequestTimeout() time.Duration {
	return time.Duration(b.RequestTimeoutInSeconds) * time.Second
}

func (s AppSession) SubmissionLockTTL() time.Duration {
	return time.Duration(s.SubmissionLockTTLInSeconds) * time.Second
}
