package contracts

import (
	"context"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
)

type PaymentUsecase interface {
	CreatePayment(ctx context.Context, session SessionContext, state *forms.State, request *requests.CreatePayment) *forms.State
}

type PaymentClient interface {
	CreatePayment(ctx context.Context, request *requests.CreatePayment) responses.Result[responses.Ack]
}
