package contracts

import (
	"context"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
)

type DoctorUsecase interface {
	ListDoctors(ctx context.Context, state *forms.State, request *requests.ListDoctors) *forms.State
	UpdateProfile(ctx context.Context, session SessionContext, state *forms.State, request *requests.UpdateDoctorProfile) *forms.State
}

type DoctorClient interface {
	ListDoctors(ctx context.Context, request *requests.ListDoctors) responses.Result[[]responses.Doctor]
	UpdateDoctorProfile(ctx context.Context, request *requests.UpdateDoctorProfile) responses.Result[responses.Ack]
}
