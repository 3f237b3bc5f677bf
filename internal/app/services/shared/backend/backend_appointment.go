package backend

import (
	"context"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"net/url"
)

func appointmentPath(appointmentID string) string {
	return constvars.BackendPathAppointments + "/" + url.PathEscape(appointmentID)
}

func (c *backendClient) ListAppointments(ctx context.Context, request *requests.ListAppointments) responses.Result[[]responses.Appointment] {
	query := url.Values{}
	if request.Username != "" {
		query.Set("username", request.Username)
	}
	if request.Role != "" {
		query.Set("role", request.Role)
	}

	return do(ctx, c, call{
		caller: "backendClient.ListAppointments",
		method: constvars.MethodGet,
		path:   constvars.BackendPathAppointments,
		query:  query,
	}, decodeList[responses.Appointment])
}

func (c *backendClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.CreateAppointment",
		method: constvars.MethodPost,
		path:   constvars.BackendPathAppointments,
		body:   request,
	}, decodeAck)
}

func (c *backendClient) UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.UpdateAppointment",
		method: constvars.MethodPut,
		path:   appointmentPath(request.AppointmentID),
		body:   request,
	}, decodeAck)
}

func (c *backendClient) CancelAppointment(ctx context.Context, request *requests.CancelAppointment) responses.Result[responses.Ack] {
	query := url.Values{}
	if request.Reason != "" {
		query.Set("reason", request.Reason)
	}

	return do(ctx, c, call{
		caller: "backendClient.CancelAppointment",
		method: constvars.MethodDelete,
		path:   appointmentPath(request.AppointmentID),
		query:  query,
	}, decodeAck)
}
