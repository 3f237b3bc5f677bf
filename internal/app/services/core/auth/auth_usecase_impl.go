package auth

import (
	"context"
	"fmt"
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/models"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
	"medibook-web/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthClient     contracts.AuthClient
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewAuthUsecase(
	authClient contracts.AuthClient,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthClient:     authClient,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *authUsecase) Register(ctx context.Context, session contracts.SessionContext, state *forms.State, request *requests.RegisterUser) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	if request.Role == "" {
		request.Role = models.RegistrationRoles[0].String()
	}

	forms.Submit(ctx, state, session.Guard(), forms.Submission[*requests.RegisterUser, responses.Ack]{
		Request:       request,
		Fallback:      constvars.RegisterFallback,
		FailureFormat: constvars.RegisterFailureFormat,
		Call:          uc.AuthClient.Register,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			navigation := forms.NavigateTo(constvars.RouteVerifyEmail).WithState("username", request.Username)
			return constvars.RegisterSuccessMessage, navigation, nil
		},
	})

	forms.LogOutcome(uc.Log, "authUsecase.Register", requestID, state)
	return state
}

func (uc *authUsecase) Login(ctx context.Context, session contracts.SessionContext, state *forms.State, request *requests.LoginUser) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	forms.Submit(ctx, state, session.Guard(), forms.Submission[*requests.LoginUser, responses.LoginUser]{
		Request:        request,
		InvalidMessage: constvars.LoginInvalidMessage,
		Fallback:       constvars.LoginFallback,
		Call:           uc.AuthClient.Login,
		OnSuccess: func(ctx context.Context, user responses.LoginUser) (string, *forms.Navigation, error) {
			record := &models.Session{
				Username: user.Username,
				Name:     user.Name,
				Role:     models.ParseRole(user.Role),
				Fields:   user.Fields,
			}
			if record.Username == "" {
				record.Username = request.Username
			}

			err := session.Write(ctx, record)
			if err != nil {
				uc.Log.Error("authUsecase.Login error writing session record",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
				return "", nil, err
			}

			name := user.Name
			if name == "" {
				name = constvars.LoginWelcomeDefaultName
			}
			return fmt.Sprintf(constvars.LoginWelcomeFormat, name), forms.NavigateTo(record.Role.Dashboard()), nil
		},
	})

	forms.LogOutcome(uc.Log, "authUsecase.Login", requestID, state)
	return state
}

func (uc *authUsecase) ForgotPassword(ctx context.Context, session contracts.SessionContext, state *forms.State, request *requests.ForgotPassword) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ForgotPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	forms.Submit(ctx, state, session.Guard(), forms.Submission[*requests.ForgotPassword, responses.Ack]{
		Request:       request,
		Fallback:      constvars.ForgotPasswordFallback,
		FailureFormat: constvars.ForgotPasswordFailureFormat,
		Call:          uc.AuthClient.ForgotPassword,
		OnSuccess: func(ctx context.Context, ack responses.Ack) (string, *forms.Navigation, error) {
			message := ack.Message
			if message == "" {
				message = constvars.ForgotPasswordSuccessMessage
			}
			navigation := forms.NavigateTo(constvars.RouteResetPassword).
				WithState("email", request.Email).
				After(uc.InternalConfig.App.ForgotPasswordRedirectDelay())
			return message, navigation, nil
		},
	})

	forms.LogOutcome(uc.Log, "authUsecase.ForgotPassword", requestID, state)
	return state
}

func (uc *authUsecase) VerifyEmail(ctx context.Context, session contracts.SessionContext, state *forms.State, request *requests.VerifyEmail) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.VerifyEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	utils.SanitizeVerifyEmailRequest(request)
	forms.Submit(ctx, state, session.Guard(), forms.Submission[*requests.VerifyEmail, responses.Ack]{
		Request:  request,
		Fallback: constvars.VerifyEmailFallback,
		Call:     uc.AuthClient.VerifyEmail,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			return constvars.VerifyEmailSuccessMessage, forms.NavigateTo(constvars.RouteLogin), nil
		},
	})

	forms.LogOutcome(uc.Log, "authUsecase.VerifyEmail", requestID, state)
	return state
}

func (uc *authUsecase) ResetPassword(ctx context.Context, session contracts.SessionContext, state *forms.State, request *requests.ResetPassword) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ResetPassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeResetPasswordRequest(request)
	forms.Submit(ctx, state, session.Guard(), forms.Submission[*requests.ResetPassword, responses.Ack]{
		Request:  request,
		Fallback: constvars.ResetPasswordFallback,
		Call:     uc.AuthClient.ResetPassword,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			return constvars.ResetPasswordSuccessMessage, forms.NavigateTo(constvars.RouteLogin), nil
		},
	})

	forms.LogOutcome(uc.Log, "authUsecase.ResetPassword", requestID, state)
	return state
}

func (uc *authUsecase) Logout(ctx context.Context, session contracts.SessionContext) (*forms.Navigation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID()),
	)

	err := session.Clear(ctx)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error clearing session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return forms.NavigateTo(constvars.RouteLogin).WithFlash(constvars.LogoutSuccessMessage), nil
}
