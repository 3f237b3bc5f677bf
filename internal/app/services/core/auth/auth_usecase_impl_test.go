package auth

import (
	"context"
	"errors"
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/mocks"
	"medibook-web/internal/app/models"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestUsecase() (*authUsecase, *mocks.BackendClient, *mocks.SessionContext) {
	client := new(mocks.BackendClient)
	session := new(mocks.SessionContext)
	uc := NewAuthUsecase(client, &config.InternalConfig{
		App: config.App{ForgotPasswordRedirectDelayInSeconds: 2},
	}, zap.NewNop())
	return uc.(*authUsecase), client, session
}

func TestAuthUsecase_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Doctor Goes To Doctor Dashboard", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.LoginUser{Username: "drwho", Password: "secret1"}
		client.On("Login", ctx, request).Return(responses.Ok(responses.LoginUser{
			Username: "drwho",
			Name:     "Dr Who",
			Role:     "DOCTOR",
			Fields:   map[string]interface{}{"username": "drwho", "name": "Dr Who", "role": "DOCTOR", "token": "abc"},
		}))
		session.On("Write", ctx, mock.MatchedBy(func(record *models.Session) bool {
			return record.Username == "drwho" && record.Role == models.RoleDoctor && record.Fields["token"] == "abc"
		})).Return(nil)

		state := uc.Login(ctx, session, forms.NewState(constvars.FormLogin, nil), request)

		require.True(t, state.Redirecting())
		assert.Equal(t, constvars.RouteDoctorDashboard, state.Redirect.Path)
		assert.Equal(t, "Welcome Dr Who! Redirecting to your dashboard...", state.Message)
		session.AssertExpectations(t)
	})

	t.Run("Unknown Role Goes Home", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.LoginUser{Username: "nurse1", Password: "secret1"}
		client.On("Login", ctx, request).Return(responses.Ok(responses.LoginUser{Role: "NURSE"}))
		session.On("Write", ctx, mock.MatchedBy(func(record *models.Session) bool {
			return record.Username == "nurse1" && record.Role == models.RoleUnknown
		})).Return(nil)

		state := uc.Login(ctx, session, forms.NewState(constvars.FormLogin, nil), request)

		require.True(t, state.Redirecting())
		assert.Equal(t, constvars.RouteHomeAlias, state.Redirect.Path)
		assert.Equal(t, "Welcome User! Redirecting to your dashboard...", state.Message)
	})

	t.Run("Failure Without Error Field Uses Fallback", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.LoginUser{Username: "alice", Password: "secret1"}
		client.On("Login", ctx, request).Return(responses.Fail[responses.LoginUser](""))

		state := uc.Login(ctx, session, forms.NewState(constvars.FormLogin, nil), request)

		assert.False(t, state.Redirecting())
		assert.Equal(t, constvars.LoginFallback, state.Message)
		session.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
	})

	t.Run("Invalid Input Never Calls Backend", func(t *testing.T) {
		uc, client, session := newTestUsecase()

		state := uc.Login(ctx, session, forms.NewState(constvars.FormLogin, nil), &requests.LoginUser{Username: "ab", Password: "secret1"})

		assert.Equal(t, constvars.LoginInvalidMessage, state.Message)
		assert.Equal(t, map[string]string{"username": "Username must be at least 3 characters long."}, state.Errors)
		client.AssertNotCalled(t, "Login", mock.Anything, mock.Anything)
	})

	t.Run("Session Write Failure", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.LoginUser{Username: "alice", Password: "secret1"}
		client.On("Login", ctx, request).Return(responses.Ok(responses.LoginUser{Role: "PATIENT"}))
		session.On("Write", ctx, mock.Anything).Return(errors.New("redis down"))

		state := uc.Login(ctx, session, forms.NewState(constvars.FormLogin, nil), request)

		assert.False(t, state.Redirecting())
		assert.Equal(t, constvars.LoginFallback, state.Message)
	})
}

func TestAuthUsecase_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Carries Username To Verify Email", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.RegisterUser{Username: "alice", Email: "alice@example.com", Password: "secret1"}
		client.On("Register", ctx, mock.MatchedBy(func(r *requests.RegisterUser) bool { return r.Role == "PATIENT" })).
			Return(responses.Ok(responses.Ack{}))

		state := uc.Register(ctx, session, forms.NewState(constvars.FormRegister, nil), request)

		require.True(t, state.Redirecting())
		assert.Equal(t, constvars.RouteVerifyEmail, state.Redirect.Path)
		assert.Equal(t, "alice", state.Redirect.State["username"])
		assert.Equal(t, constvars.RegisterSuccessMessage, state.Redirect.Flash)
	})

	t.Run("Failure Shows Server Message", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.RegisterUser{Username: "alice", Email: "alice@example.com", Password: "secret1", Role: "DOCTOR"}
		client.On("Register", ctx, request).Return(responses.Fail[responses.Ack]("Username already exists"))

		state := uc.Register(ctx, session, forms.NewState(constvars.FormRegister, nil), request)

		assert.Equal(t, "Registration failed: Username already exists", state.Message)
	})

	t.Run("Failure Without Message", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.RegisterUser{Username: "alice", Email: "alice@example.com", Password: "secret1", Role: "DOCTOR"}
		client.On("Register", ctx, request).Return(responses.Fail[responses.Ack](""))

		state := uc.Register(ctx, session, forms.NewState(constvars.FormRegister, nil), request)

		assert.Equal(t, "Registration failed: Please try again.", state.Message)
	})
}

func TestAuthUsecase_ForgotPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Redirects After Fixed Delay", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.ForgotPassword{Email: "alice@example.com"}
		client.On("ForgotPassword", ctx, request).Return(responses.Ok(responses.Ack{}))

		state := uc.ForgotPassword(ctx, session, forms.NewState(constvars.FormForgotPassword, nil), request)

		require.True(t, state.Redirecting())
		assert.Equal(t, constvars.RouteResetPassword, state.Redirect.Path)
		assert.Equal(t, 2*time.Second, state.Redirect.Delay)
		assert.Equal(t, "alice@example.com", state.Redirect.State["email"])
		assert.Equal(t, constvars.ForgotPasswordSuccessMessage, state.Message)
	})

	t.Run("Server String Becomes Message", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.ForgotPassword{Email: "alice@example.com"}
		client.On("ForgotPassword", ctx, request).Return(responses.Ok(responses.Ack{Message: "Token sent"}))

		state := uc.ForgotPassword(ctx, session, forms.NewState(constvars.FormForgotPassword, nil), request)

		assert.Equal(t, "Token sent", state.Message)
	})

	t.Run("Failure", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.ForgotPassword{Email: "alice@example.com"}
		client.On("ForgotPassword", ctx, request).Return(responses.Fail[responses.Ack](""))

		state := uc.ForgotPassword(ctx, session, forms.NewState(constvars.FormForgotPassword, nil), request)

		assert.Nil(t, state.Redirect)
		assert.Equal(t, "Error: Failed to send reset password token", state.Message)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		uc, client, session := newTestUsecase()

		state := uc.ForgotPassword(ctx, session, forms.NewState(constvars.FormForgotPassword, nil), &requests.ForgotPassword{Email: "nope"})

		assert.Equal(t, "Please enter a valid email address.", state.Error("email"))
		client.AssertNotCalled(t, "ForgotPassword", mock.Anything, mock.Anything)
	})
}

func TestAuthUsecase_VerifyAndReset(t *testing.T) {
	ctx := context.Background()

	t.Run("Verify Email Goes To Login", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		client.On("VerifyEmail", ctx, &requests.VerifyEmail{Username: "alice", Code: "123456"}).Return(responses.Ok(responses.Ack{}))

		state := uc.VerifyEmail(ctx, session, forms.NewState(constvars.FormVerifyEmail, nil), &requests.VerifyEmail{Username: "alice", Code: " 123456 "})

		require.True(t, state.Redirecting())
		assert.Equal(t, constvars.RouteLogin, state.Redirect.Path)
	})

	t.Run("Reset Password Failure", func(t *testing.T) {
		uc, client, session := newTestUsecase()
		request := &requests.ResetPassword{Email: "alice@example.com", OTP: "123456", NewPassword: "secret1", NewPasswordConfirmation: "secret1"}
		client.On("ResetPassword", ctx, request).Return(responses.Fail[responses.Ack]("OTP expired"))

		state := uc.ResetPassword(ctx, session, forms.NewState(constvars.FormResetPassword, nil), request)

		assert.Equal(t, "OTP expired", state.Message)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("Clears Session", func(t *testing.T) {
		uc, _, session := newTestUsecase()
		session.On("Clear", ctx).Return(nil)

		navigation, err := uc.Logout(ctx, session)

		require.NoError(t, err)
		assert.Equal(t, constvars.RouteLogin, navigation.Path)
		assert.Equal(t, constvars.LogoutSuccessMessage, navigation.Flash)
	})

	t.Run("Clear Failure", func(t *testing.T) {
		uc, _, session := newTestUsecase()
		session.On("Clear", ctx).Return(errors.New("redis down"))

		navigation, err := uc.Logout(ctx, session)

		assert.Error(t, err)
		assert.Nil(t, navigation)
	})
}
