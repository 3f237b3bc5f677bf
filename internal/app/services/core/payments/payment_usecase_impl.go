package payments

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

type paymentUsecase struct {
	PaymentClient contracts.PaymentClient
	Log           *zap.Logger
}

func NewPaymentUsecase(paymentClient contracts.PaymentClient, logger *zap.Logger) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentClient: paymentClient,
		Log:           logger,
	}
}

func (uc *paymentUsecase) CreatePayment(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State, request *requests.CreatePayment) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, request.AppointmentID),
	)

	user := session.CurrentUser(ctx, sessionCtx, state, constvars.PaymentFallback)
	if user == nil {
		return state
	}

	utils.SanitizeCreatePaymentRequest(request)
	request.PatientUsername = user.Username

	forms.Submit(ctx, state, sessionCtx.Guard(), forms.Submission[*requests.CreatePayment, responses.Ack]{
		Request:  request,
		Fallback: constvars.PaymentFallback,
		Call:     uc.PaymentClient.CreatePayment,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			return constvars.PaymentSuccessMessage, forms.NavigateTo(constvars.RoutePatientDashboard), nil
		},
	})

	forms.LogOutcome(uc.Log, "paymentUsecase.CreatePayment", requestID, state)
	return state
}
