package backend

import (
	"context"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"net/url"
)

func (c *backendClient) ListDoctors(ctx context.Context, request *requests.ListDoctors) responses.Result[[]responses.Doctor] {
	query := url.Values{}
	if request.Specialization != "" {
		query.Set("specialization", request.Specialization)
	}

	return do(ctx, c, call{
		caller: "backendClient.ListDoctors",
		method: constvars.MethodGet,
		path:   constvars.BackendPathDoctors,
		query:  query,
	}, decodeList[responses.Doctor])
}

func (c *backendClient) UpdateDoctorProfile(ctx context.Context, request *requests.UpdateDoctorProfile) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.UpdateDoctorProfile",
		method: constvars.MethodPut,
		path:   constvars.BackendPathDoctors + "/" + url.PathEscape(request.Username),
		body:   request,
	}, decodeAck)
}

func (c *backendClient) CreatePatient(ctx context.Context, request *requests.CreatePatient) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.CreatePatient",
		method: constvars.MethodPost,
		path:   constvars.BackendPathPatients,
		body:   request,
	}, decodeAck)
}

func (c *backendClient) ListAvailability(ctx context.Context, request *requests.ListAvailability) responses.Result[[]responses.Availability] {
	query := url.Values{}
	if request.DoctorUsername != "" {
		query.Set("doctorUsername", request.DoctorUsername)
	}

	return do(ctx, c, call{
		caller: "backendClient.ListAvailability",
		method: constvars.MethodGet,
		path:   constvars.BackendPathAvailability,
		query:  query,
	}, decodeList[responses.Availability])
}

func (c *backendClient) CreateAvailability(ctx context.Context, request *requests.CreateAvailability) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.CreateAvailability",
		method: constvars.MethodPost,
		path:   constvars.BackendPathAvailability,
		body:   request,
	}, decodeAck)
}

func (c *backendClient) CreatePayment(ctx context.Context, request *requests.CreatePayment) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.CreatePayment",
		method: constvars.MethodPost,
		path:   constvars.BackendPathPayments,
		body:   request,
	}, decodeAck)
}
