package forms

import (
	"context"
	"errors"
	"fmt"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/utils"
)

// ErrInFlight is returned by a Guard when the same form already has a
// request running for the same session.
var ErrInFlight = errors.New("forms: submission already in flight")

// Guard is the busy flag shared across requests. Acquire must either return
// a release func or an error, never both.
type Guard interface {
	Acquire(ctx context.Context, form string) (release func(), err error)
}

type Submission[T any, V any] struct {
	Request T
	// Validate defaults to utils.ValidateForm.
	Validate       func(request T) map[string]string
	InvalidMessage string
	Fallback       string
	// FailureFormat wraps the server text or fallback, e.g. "Registration failed: %s".
	FailureFormat string
	Call          func(ctx context.Context, request T) responses.Result[V]
	OnSuccess     func(ctx context.Context, value V) (message string, navigation *Navigation, err error)
}

func (sub *Submission[T, V]) failureMessage(serverText string) string {
	message := serverText
	if message == "" {
		message = sub.Fallback
	}
	if sub.FailureFormat == "" {
		return message
	}
	return fmt.Sprintf(sub.FailureFormat, message)
}

// Submit drives state through one attempt. It never returns an error, every
// outcome is recorded on state.
func Submit[T any, V any](ctx context.Context, state *State, guard Guard, sub Submission[T, V]) *State {
	state.startValidating()

	validateFn := sub.Validate
	if validateFn == nil {
		validateFn = func(request T) map[string]string { return utils.ValidateForm(request) }
	}
	if fieldErrors := validateFn(sub.Request); len(fieldErrors) > 0 {
		state.invalid(fieldErrors, sub.InvalidMessage)
		return state
	}

	if guard != nil {
		release, err := guard.Acquire(ctx, state.Name)
		if err != nil {
			if errors.Is(err, ErrInFlight) {
				state.reject(constvars.ErrClientRequestInFlight)
				return state
			}
			state.fail(sub.failureMessage(""))
			return state
		}
		defer release()
	}

	state.startSubmitting()
	result := sub.Call(ctx, sub.Request)
	if !result.OK {
		state.fail(sub.failureMessage(result.Error))
		return state
	}

	var (
		message    string
		navigation *Navigation
	)
	if sub.OnSuccess != nil {
		var err error
		message, navigation, err = sub.OnSuccess(ctx, result.Value)
		if err != nil {
			state.fail(sub.failureMessage(""))
			return state
		}
	}
	state.succeed(message, navigation)
	return state
}
