package backend

import (
	"context"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"net/url"
)

func (c *backendClient) Register(ctx context.Context, request *requests.RegisterUser) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller:     "backendClient.Register",
		method:     constvars.MethodPost,
		path:       constvars.BackendPathRegister,
		body:       request,
		errorField: constvars.BackendMessageField,
	}, decodeAck)
}

func (c *backendClient) Login(ctx context.Context, request *requests.LoginUser) responses.Result[responses.LoginUser] {
	return do(ctx, c, call{
		caller:     "backendClient.Login",
		method:     constvars.MethodPost,
		path:       constvars.BackendPathLogin,
		body:       request,
		errorField: constvars.BackendErrorField,
	}, decodeLoginUser)
}

// ForgotPassword carries the email in the query string and sends no body.
func (c *backendClient) ForgotPassword(ctx context.Context, request *requests.ForgotPassword) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller:     "backendClient.ForgotPassword",
		method:     constvars.MethodPost,
		path:       constvars.BackendPathForgotPassword,
		query:      url.Values{"email": []string{request.Email}},
		errorField: constvars.BackendErrorField,
	}, decodeAck)
}

func (c *backendClient) VerifyEmail(ctx context.Context, request *requests.VerifyEmail) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.VerifyEmail",
		method: constvars.MethodPost,
		path:   constvars.BackendPathVerifyEmail,
		body:   request,
	}, decodeAck)
}

func (c *backendClient) ResetPassword(ctx context.Context, request *requests.ResetPassword) responses.Result[responses.Ack] {
	return do(ctx, c, call{
		caller: "backendClient.ResetPassword",
		method: constvars.MethodPost,
		path:   constvars.BackendPathResetPassword,
		body:   request,
	}, decodeAck)
}
