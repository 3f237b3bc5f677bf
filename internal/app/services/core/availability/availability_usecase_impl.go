package availability

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

type availabilityUsecase struct {
	AvailabilityClient contracts.AvailabilityClient
	Log                *zap.Logger
}

func NewAvailabilityUsecase(availabilityClient contracts.AvailabilityClient, logger *zap.Logger) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		AvailabilityClient: availabilityClient,
		Log:                logger,
	}
}

func (uc *availabilityUsecase) ListAvailability(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.ListAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := session.CurrentUser(ctx, sessionCtx, state, constvars.ListAvailabilityFallback)
	if user == nil {
		return state
	}

	uc.loadSlots(ctx, state, user.Username)
	forms.LogOutcome(uc.Log, "availabilityUsecase.ListAvailability", requestID, state)
	return state
}

func (uc *availabilityUsecase) CreateAvailability(ctx context.Context, sessionCtx contracts.SessionContext, state *forms.State, request *requests.CreateAvailability) *forms.State {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("availabilityUsecase.CreateAvailability called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := session.CurrentUser(ctx, sessionCtx, state, constvars.AvailabilityFallback)
	if user == nil {
		return state
	}

	utils.SanitizeCreateAvailabilityRequest(request)
	request.DoctorUsername = user.Username

	saved := false
	forms.Submit(ctx, state, sessionCtx.Guard(), forms.Submission[*requests.CreateAvailability, responses.Ack]{
		Request:  request,
		Fallback: constvars.AvailabilityFallback,
		Call:     uc.AvailabilityClient.CreateAvailability,
		OnSuccess: func(ctx context.Context, _ responses.Ack) (string, *forms.Navigation, error) {
			saved = true
			return constvars.AvailabilitySuccessMessage, nil, nil
		},
	})

	// The page shows the slot list under the form whatever the outcome.
	if saved {
		state.Values = make(map[string]string)
	}
	slots := forms.NewState(constvars.FormListAvailability, nil)
	uc.loadSlots(ctx, slots, user.Username)
	state.Data = slots.Data

	forms.LogOutcome(uc.Log, "availabilityUsecase.CreateAvailability", requestID, state)
	return state
}

func (uc *availabilityUsecase) loadSlots(ctx context.Context, state *forms.State, doctorUsername string) {
	forms.Submit(ctx, state, nil, forms.Submission[*requests.ListAvailability, []responses.Availability]{
		Request:  &requests.ListAvailability{DoctorUsername: doctorUsername},
		Fallback: constvars.ListAvailabilityFallback,
		Call:     uc.AvailabilityClient.ListAvailability,
		OnSuccess: func(ctx context.Context, slots []responses.Availability) (string, *forms.Navigation, error) {
			state.Data = slots
			return "", nil, nil
		},
	})
}
