package patients

import (
	"context"
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
	"medibook-web/internal/pkg/utils"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientClient contracts.PatientClient
	Log           *zap.Logger
}

func NewPatientUsecase(patientClient contracts.PatientClient, logger *zap.Logger) contracts.PatientUsecase {
	return &patientUsecase{
		PatientClient: patientClient,
		Log:           logger,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State, request *requests.CreatePatient) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeCreatePatientRequest(request)
	forms.Submit(ctx, state, sessionCtx.Guard(), forms.Submission[*requests.CreatePatient, responses.Ack]{
		Request:  request,
		Fallback: constvars.AddPatientFallback,
		Call:     uc.PatientClient.CreatePatient,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			return constvars.AddPatientSuccessMessage, forms.NavigateTo(constvars.RouteDoctorDashboard), nil
		},
	})

	forms.LogOutcome(uc.Log, "patientUsecase.CreatePatient", requestID, state)
	return state
}
