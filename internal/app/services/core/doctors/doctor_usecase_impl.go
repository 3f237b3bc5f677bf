package doctors

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

type doctorUsecase struct {
	DoctorClient contracts.DoctorClient
	Log          *zap.Logger
}

func NewDoctorUsecase(doctorClient contracts.DoctorClient, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		DoctorClient: doctorClient,
		Log:          logger,
	}
}

// ListDoctors is public, the doctor directory does not need a session.
func (uc *doctorUsecase) ListDoctors(ctx context.Context, state *forms.State, request *requests.ListDoctors) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, request.Specialization),
	)

	forms.Submit(ctx, state, nil, forms.Submission[*requests.ListDoctors, []responses.Doctor]{
		Request:  request,
		Fallback: constvars.ListDoctorsFallback,
		Call:     uc.DoctorClient.ListDoctors,
		OnSuccess: func(ctx context.Context, doctors []responses.Doctor) (string, *forms.Navigation, error) {
			state.Data = doctors
			return "", nil, nil
		},
	})

	forms.LogOutcome(uc.Log, "doctorUsecase.ListDoctors", requestID, state)
	return state
}

func (uc *doctorUsecase) UpdateProfile(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State, request *requests.UpdateDoctorProfile) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := session.CurrentUser(ctx, sessionCtx, state, constvars.DoctorProfileFallback)
	if user == nil {
		return state
	}

	utils.SanitizeUpdateDoctorProfileRequest(request)
	request.Username = user.Username

	forms.Submit(ctx, state, sessionCtx.Guard(), forms.Submission[*requests.UpdateDoctorProfile, responses.Ack]{
		Request:  request,
		Fallback: constvars.DoctorProfileFallback,
		Call:     uc.DoctorClient.UpdateDoctorProfile,
		OnSuccess: func(ctx context.Context, ack responses.Ack) (string, *forms.Navigation, error) {
			return constvars.DoctorProfileSuccessMessage, nil, nil
		},
	})

	forms.LogOutcome(uc.Log, "doctorUsecase.UpdateProfile", requestID, state)
	return state
}
