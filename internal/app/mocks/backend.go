package mocks

import (
	"context"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type BackendClient struct {
	mock.Mock
}

func result[T any](args mock.Arguments) responses.Result[T] {
	return args.Get(0).(responses.Result[T])
}

func (m *BackendClient) Register(ctx context.Context, request *requests.RegisterUser) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) Login(ctx context.Context, request *requests.LoginUser) responses.Result[responses.LoginUser] {
	return result[responses.LoginUser](m.Called(ctx, request))
}

func (m *BackendClient) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) VerifyEmail(ctx context.Context, request *requests.VerifyEmail) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) ResetPassword(ctx context.Context, request *requests.ResetPassword) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) ListAppointments(ctx context.Context, request *requests.ListAppointments) responses.Result[[]responses.Appointment] {
	return result[[]responses.Appointment](m.Called(ctx, request))
}

func (m *BackendClient) CreateAppointment(ctx context.Context, request *requests.CreateAppointment) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) UpdateAppointment(ctx context.Context, request *requests.UpdateAppointment) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) CancelAppointment(ctx context.Context, request *requests.CancelAppointment) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) ListDoctors(ctx context.Context, request *requests.ListDoctors) responses.Result[[]responses.Doctor] {
	return result[[]responses.Doctor](m.Called(ctx, request))
}

func (m *BackendClient) UpdateDoctorProfile(ctx context.Context, request *requests.UpdateDoctorProfile) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) CreatePatient(ctx context.Context, request *requests.CreatePatient) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) ListAvailability(ctx context.Context, request *requests.ListAvailability) responses.Result[[]responses.Availability] {
	return result[[]responses.Availability](m.Called(ctx, request))
}

func (m *BackendClient) CreateAvailability(ctx context.Context, request *requests.CreateAvailability) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}

func (m *BackendClient) CreatePayment(ctx context.Context, request *requests.CreatePayment) responses.Result[responses.Ack] {
	return result[responses.Ack](m.Called(ctx, request))
}
