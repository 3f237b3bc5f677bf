package forms

import (
	"context"
	"errors"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGuard struct {
	err      error
	acquired []string
	released int
}

func (g *stubGuard) Acquire(ctx context.Context, form string) (func(), error) {
	if g.err != nil {
		return nil, g.err
	}
	g.acquired = append(g.acquired, form)
	return func() { g.released++ }, nil
}

func loginSubmission(request *requests.LoginUser, call func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack]) Submission[*requests.LoginUser, responses.Ack] {
	return Submission[*requests.LoginUser, responses.Ack]{
		Request:        request,
		InvalidMessage: constvars.LoginInvalidMessage,
		Fallback:       constvars.LoginFallback,
		Call:           call,
		OnSuccess: func(ctx context.Context, value responses.Ack) (string, *Navigation, error) {
			return "ok", NavigateTo(constvars.RouteDoctorDashboard), nil
		},
	}
}

func TestSubmit_Validation(t *testing.T) {
	tests := []struct {
		name       string
		request    *requests.LoginUser
		wantErrors map[string]string
	}{
		{
			name:       "short username only",
			request:    &requests.LoginUser{Username: "ab", Password: "secret1"},
			wantErrors: map[string]string{"username": "Username must be at least 3 characters long."},
		},
		{
			name:       "short password with valid username",
			request:    &requests.LoginUser{Username: "alice", Password: "12345"},
			wantErrors: map[string]string{"password": "Password must be at least 6 characters long."},
		},
		{
			name:    "blank fields",
			request: &requests.LoginUser{Username: "   ", Password: ""},
			wantErrors: map[string]string{
				"username": "Username is required.",
				"password": "Password is required.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			state := NewState(constvars.FormLogin, nil)
			Submit(context.Background(), state, nil, loginSubmission(tt.request, func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
				called = true
				return responses.Ok(responses.Ack{})
			}))

			assert.False(t, called, "invalid input must never reach the network")
			assert.Equal(t, tt.wantErrors, state.Errors)
			assert.Equal(t, constvars.LoginInvalidMessage, state.Message)
			assert.Equal(t, PhaseIdle, state.Phase)
			assert.False(t, state.Busy)
		})
	}
}

func TestSubmit_BusyWhileInFlight(t *testing.T) {
	guard := &stubGuard{}
	state := NewState(constvars.FormLogin, nil)

	var busyDuringCall bool
	var phaseDuringCall Phase
	Submit(context.Background(), state, guard, loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
		func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
			busyDuringCall = state.Busy
			phaseDuringCall = state.Phase
			assert.Equal(t, 0, guard.released, "lock must be held during the call")
			return responses.Fail[responses.Ack]("")
		}))

	assert.True(t, busyDuringCall)
	assert.Equal(t, PhaseSubmitting, phaseDuringCall)
	assert.False(t, state.Busy, "busy flag must clear once the response is processed")
	assert.Equal(t, []string{constvars.FormLogin}, guard.acquired)
	assert.Equal(t, 1, guard.released)
}

func TestSubmit_Failure(t *testing.T) {
	t.Run("no server text uses fallback", func(t *testing.T) {
		state := NewState(constvars.FormLogin, nil)
		Submit(context.Background(), state, nil, loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
			func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
				return responses.Fail[responses.Ack]("")
			}))

		assert.Equal(t, constvars.LoginFallback, state.Message)
		assert.Equal(t, PhaseIdle, state.Phase)
		assert.Nil(t, state.Redirect)
	})

	t.Run("server text is shown verbatim", func(t *testing.T) {
		state := NewState(constvars.FormLogin, nil)
		Submit(context.Background(), state, nil, loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
			func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
				return responses.Fail[responses.Ack]("Invalid credentials")
			}))

		assert.Equal(t, "Invalid credentials", state.Message)
	})

	t.Run("failure format wraps the fallback", func(t *testing.T) {
		state := NewState(constvars.FormRegister, nil)
		sub := loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
			func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
				return responses.Fail[responses.Ack]("")
			})
		sub.Fallback = constvars.RegisterFallback
		sub.FailureFormat = constvars.RegisterFailureFormat
		Submit(context.Background(), state, nil, sub)

		assert.Equal(t, "Registration failed: Please try again.", state.Message)
	})

	t.Run("success hook error falls back", func(t *testing.T) {
		state := NewState(constvars.FormLogin, nil)
		sub := loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
			func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
				return responses.Ok(responses.Ack{})
			})
		sub.OnSuccess = func(ctx context.Context, value responses.Ack) (string, *Navigation, error) {
			return "", nil, errors.New("session store down")
		}
		Submit(context.Background(), state, nil, sub)

		assert.Equal(t, constvars.LoginFallback, state.Message)
		assert.False(t, state.Redirecting())
	})
}

func TestSubmit_SuccessRedirects(t *testing.T) {
	state := NewState(constvars.FormForgotPassword, nil)
	sub := loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
		func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
			return responses.Ok(responses.Ack{Message: "sent"})
		})
	sub.OnSuccess = func(ctx context.Context, value responses.Ack) (string, *Navigation, error) {
		return value.Message, NavigateTo(constvars.RouteResetPassword).WithState("email", "a@b.co").After(2 * time.Second), nil
	}
	Submit(context.Background(), state, nil, sub)

	require.NotNil(t, state.Redirect)
	assert.Equal(t, PhaseRedirecting, state.Phase)
	assert.Equal(t, "sent", state.Message)
	assert.Equal(t, "sent", state.Redirect.Flash, "flash defaults to the success message")
	assert.Equal(t, "a@b.co", state.Redirect.State["email"])
	assert.Equal(t, 2*time.Second, state.Redirect.Delay)
}

func TestSubmit_RejectsConcurrentSubmission(t *testing.T) {
	called := false
	state := NewState(constvars.FormLogin, nil)
	Submit(context.Background(), state, &stubGuard{err: ErrInFlight}, loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
		func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
			called = true
			return responses.Ok(responses.Ack{})
		}))

	assert.False(t, called)
	assert.True(t, state.Rejected)
	assert.False(t, state.Busy, "a rejected attempt leaves the form usable")
	assert.Equal(t, PhaseIdle, state.Phase)
	assert.Equal(t, constvars.ErrClientRequestInFlight, state.Message)
}

func TestSubmit_GuardFailureUsesFallback(t *testing.T) {
	state := NewState(constvars.FormLogin, nil)
	Submit(context.Background(), state, &stubGuard{err: errors.New("redis down")}, loginSubmission(&requests.LoginUser{Username: "alice", Password: "secret1"},
		func(ctx context.Context, request *requests.LoginUser) responses.Result[responses.Ack] {
			t.Fatal("call must not run without the lock")
			return responses.Result[responses.Ack]{}
		}))

	assert.Equal(t, constvars.LoginFallback, state.Message)
	assert.False(t, state.Busy)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "redirecting", PhaseRedirecting.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
