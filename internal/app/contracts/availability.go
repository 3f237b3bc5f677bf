package contracts

import (
	"context"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
)

type AvailabilityUsecase interface {
	ListAvailability(ctx context.Context, session SessionContext, state *forms.State) *forms.State
	CreateAvailability(ctx context.Context, session SessionContext, state *forms.State, request *requests.CreateAvailability) *forms.State
}

type AvailabilityClient interface {
	ListAvailability(ctx context.Context, request *requests.ListAvailability) responses.Result[[]responses.Availability]
	CreateAvailability(ctx context.Context, request *requests.CreateAvailability) responses.Result[responses.Ack]
}
