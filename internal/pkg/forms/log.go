package forms

import (
	"medibook-web/internal/pkg/constvars"

	"go.uber.org/zap"
)

// LogOutcome writes one line describing where state ended up.
func LogOutcome(log *zap.Logger, caller, requestID string, state *State) {
	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormKey, state.Name),
		zap.String("phase", state.Phase.String()),
	}

	switch {
	case state.Redirecting():
		log.Info(caller+" succeeded", append(fields, zap.String(constvars.LoggingRedirectKey, state.Redirect.Path))...)
	case state.HasErrors():
		log.Info(caller+" rejected invalid input", append(fields, zap.Int("field_errors", len(state.Errors)))...)
	case state.Rejected:
		log.Warn(caller+" rejected concurrent submission", fields...)
	default:
		log.Info(caller+" finished", append(fields, zap.String("message", state.Message))...)
	}
}
