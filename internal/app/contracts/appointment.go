package contracts

import (
	"context"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
)

type AppointmentUsecase interface {
	ListAppointments(ctx context.Context, session SessionContext, state *forms.State) *forms.State
	CreateAppointment(ctx context.Context, session SessionContext, state *forms.State, request *requests.CreateAppointment) *forms.State
	UpdateAppointment(ctx context.Context, session SessionContext, state *forms.State, request *requests.UpdateAppointment) *forms.State
	CancelAppointment(ctx context.Context, session SessionContext, state *forms.State, request *requests.CancelAppointment) *forms.State
}

type AppointmentClient interface {
	ListAppointments(ctx context.Context, request *requests.ListAppointments) responses.Result[[]responses.Appointment]
	CreateAppointment(ctx context.Context, request *requests.CreateAppointment) responses.Result[responses.Ack]
	UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) responses.Result[responses.Ack]
	CancelAppointment(ctx context.Context, request *requests.CancelAppointment) responses.Result[responses.Ack]
}
