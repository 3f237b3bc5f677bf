package constvars

// Validation messages mapper, keyed by validator tag. The first %s is always the field label.
var CustomValidationErrorMessages = map[string]string{
	"required":        "%s is required.",
	"notblank":        "%s is required.",
	"min":             "%s must be at least %s characters long.",
	"max":             "%s must be at most %s characters long.",
	"email_simple":    "Enter a valid email address.",
	"email_loose":     "Please enter a valid email address.",
	"oneof":           "%s must be one of: %s.",
	"eqfield":         "%s must match %s.",
	"gt":              "%s must be greater than %s.",
	"numeric":         "%s must be a number.",
	"date_ymd":        "%s must be a date in YYYY-MM-DD format.",
	"time_hhmm":       "%s must be a time in HH:MM format.",
	"not_past_date":   "%s cannot be in the past.",
	"not_future_date": "%s cannot be in the future.",
	"after_time":      "%s must be after %s.",
	"phone_number":    "Enter a valid phone number.",
	"card_number":     "Enter a valid card number.",
	"otp":             "%s must be 6 digits.",
	"required_if":     "%s is required.",
}

// Tags whose param is substituted after the label
var TagsWithParams = map[string]bool{
	"min":        true,
	"max":        true,
	"oneof":      true,
	"eqfield":    true,
	"gt":         true,
	"after_time": true,
}

const (
	ErrClientSomethingWrongWithApplication = "Something went wrong, please try again later."
	ErrClientCannotProcessRequest          = "We could not process your request."
	ErrClientPageNotFound                  = "The page you are looking for does not exist."
	ErrClientServerLongRespond             = "The server took too long to respond."
	ErrClientRequestInFlight               = "A request is already in progress."
	ErrClientNotLoggedIn                   = "You are not logged in."
	ErrClientTooManyRequests               = "Too many requests, please slow down."
)

const (
	ErrDevServerProcess           = "server failed to process the request"
	ErrDevCannotParseForm         = "failed to parse form body"
	ErrDevCannotMarshalJSON       = "failed to marshal JSON"
	ErrDevCannotParseJSON         = "failed to parse JSON"
	ErrDevCreateHTTPRequest       = "failed to create HTTP request"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevReadHTTPResponse        = "failed to read HTTP response body"
	ErrDevBackendRejected         = "backend rejected %s %s with status %d"
	ErrDevRedisGetNoData          = "no data found in redis for key %s"
	ErrDevRedisGetData            = "failed to get data from redis"
	ErrDevRedisSetData            = "failed to set data to redis"
	ErrDevRedisDeleteData         = "failed to delete data from redis"
	ErrDevSessionTokenInvalid     = "session token is invalid"
	ErrDevSessionTokenGenerate    = "failed to generate session token"
	ErrDevTemplateRender          = "failed to render template %s"
	ErrDevTemplateNotFound        = "template %s is not registered"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevValidationFailed        = "input validation failed"
	ErrDevSubmissionLockAcquire   = "failed to acquire submission lock"
	ErrDevSubmissionLockRelease   = "failed to release submission lock"
	ErrDevBackendRateLimiterWait  = "backend rate limiter wait aborted"
	ErrDevPanicRecovered          = "panic recovered while serving request"
	ErrDevTooManyRequests         = "client exceeded the request rate limit"
	ErrDevUnknownPanic            = "unknown panic value"
	ErrDevNavigationStateTooLarge = "navigation state exceeds allowed size"
)
