package constvars

import "time"

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
)

const (
	REQUEST_ID_PREFIX = "MDBK_WEB_"
)

// Keys inside a session namespace.
const (
	SessionKeyUser       = "user"
	SessionKeyNavigation = "nav"
	SessionRedisPrefix   = "medibook:session"
	SubmissionLockPrefix = "medibook:submission"
)

const (
	SessionJWTClaimID = "session_id"
)

const (
	ForgotPasswordRedirectDelay = 2 * time.Second
	// Pending navigation state nobody picked up is dropped after this.
	NavigationStateTTL = 10 * time.Minute
)

const (
	AppDateLayout = "2006-01-02"
	AppTimeLayout = "15:04"
)
