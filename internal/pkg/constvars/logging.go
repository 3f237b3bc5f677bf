package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingMethodKey      = "method"
	LoggingEndpointKey    = "endpoint"
	LoggingRemoteAddrKey  = "remote_addr"
	LoggingUserAgentKey   = "user_agent"
	LoggingQueryKey       = "query"
	LoggingStatusCodeKey  = "status_code"
	LoggingDurationKey    = "duration"
	LoggingSuccessKey     = "success"
	LoggingSessionIDKey   = "session_id"
	LoggingUsernameKey    = "username"
	LoggingRoleKey        = "role"
	LoggingFormKey        = "form"
	LoggingRedirectKey    = "redirect"
	LoggingRedisKey       = "redis_key"
	LoggingLockValueKey   = "lock_value"
	LoggingLockTTLKey     = "lock_ttl"
	LoggingLockStoredKey  = "lock_stored_value"
	LoggingBackendPathKey = "backend_path"
	LoggingResponseLength = "response_length"
	LoggingAppointmentKey = "appointment_id"
)
