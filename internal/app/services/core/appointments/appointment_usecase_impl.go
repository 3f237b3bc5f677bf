package appointments

import (
	"context"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/services/core/session"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
	"medibook-web/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentClient contracts.AppointmentClient
	Log               *zap.Logger
}

func NewAppointmentUsecase(appointmentClient contracts.AppointmentClient, logger *zap.Logger) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentClient: appointmentClient,
		Log:               logger,
	}
}

func (uc *appointmentUsecase) ListAppointments(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := session.CurrentUser(ctx, sessionCtx, state, constvars.ListAppointmentsFallback)
	if user == nil {
		return state
	}

	forms.Submit(ctx, state, nil, forms.Submission[*requests.ListAppointments, []responses.Appointment]{
		Request:  &requests.ListAppointments{Username: user.Username, Role: user.Role.String()},
		Fallback: constvars.ListAppointmentsFallback,
		Call:     uc.AppointmentClient.ListAppointments,
		OnSuccess: func(ctx context.Context, appointments []responses.Appointment) (string, *forms.Navigation, error) {
			state.Data = appointments
			return "", nil, nil
		},
	})

	forms.LogOutcome(uc.Log, "appointmentUsecase.ListAppointments", requestID, state)
	return state
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State, request *requests.CreateAppointment) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.DoctorUsername),
	)

	user := session.CurrentUser(ctx, sessionCtx, state, constvars.MakeAppointmentFallback)
	if user == nil {
		return state
	}

	utils.SanitizeCreateAppointmentRequest(request)
	request.PatientUsername = user.Username

	forms.Submit(ctx, state, sessionCtx.Guard(), forms.Submission[*requests.CreateAppointment, responses.Ack]{
		Request:  request,
		Fallback: constvars.MakeAppointmentFallback,
		Call:     uc.AppointmentClient.CreateAppointment,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			return constvars.MakeAppointmentSuccessMessage, forms.NavigateTo(constvars.RouteAppointments), nil
		},
	})

	forms.LogOutcome(uc.Log, "appointmentUsecase.CreateAppointment", requestID, state)
	return state
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State, request *requests.UpdateAppointment) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.UpdateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, request.AppointmentID),
	)

	utils.SanitizeUpdateAppointmentRequest(request)
	forms.Submit(ctx, state, sessionCtx.Guard(), forms.Submission[*requests.UpdateAppointment, responses.Ack]{
		Request:  request,
		Fallback: constvars.UpdateAppointmentFallback,
		Call:     uc.AppointmentClient.UpdateAppointment,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			return constvars.UpdateAppointmentSuccessMessage, forms.NavigateTo(constvars.RouteAppointments), nil
		},
	})

	forms.LogOutcome(uc.Log, "appointmentUsecase.UpdateAppointment", requestID, state)
	return state
}

func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State, request *requests.CancelAppointment) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, request.AppointmentID),
	)

	utils.SanitizeCancelAppointmentRequest(request)
	forms.Submit(ctx, state, sessionCtx.Guard(), forms.Submission[*requests.CancelAppointment, responses.Ack]{
		Request:  request,
		Fallback: constvars.CancelAppointmentFallback,
		Call:     uc.AppointmentClient.CancelAppointment,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			return constvars.CancelAppointmentSuccessMessage, forms.NavigateTo(constvars.RouteAppointments), nil
		},
	})

	forms.LogOutcome(uc.Log, "appointmentUsecase.CancelAppointment", requestID, state)
	return state
}
