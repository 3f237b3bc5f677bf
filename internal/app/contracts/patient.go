package contracts

import (
	"context"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, session SessionContext, state *forms.State, request *requests.CreatePatient) *forms.State
}

type PatientClient interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) responses.Result[responses.Ack]
}
