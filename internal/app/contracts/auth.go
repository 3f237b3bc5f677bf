package contracts

import (
	"context"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/forms"
)

type AuthUsecase interface {
	Register(ctx context.Context, session SessionContext, state *forms.State, request *requests.RegisterUser) *forms.State
	Login(ctx context.Context, session SessionContext, state *forms.State, request *requests.LoginUser) *forms.State
	ForgotPassword(ctx context.Context, session SessionContext, state *forms.State, request *requests.ForgotPassword) *forms.State
	VerifyEmail(ctx context.Context, session SessionContext, state *forms.State, request *requests.VerifyEmail) *forms.State
	ResetPassword(ctx context.Context, session SessionContext, state *forms.State, request *requests.ResetPassword) *forms.State
	Logout(ctx context.Context, session SessionContext) (*forms.Navigation, error)
}

type AuthClient interface {
	Register(ctx context.Context, request *requests.RegisterUser) responses.Result[responses.Ack]
	Login(ctx context.Context, request *requests.LoginUser) responses.Result[responses.LoginUser]
	ForgotPassword(ctx context.Context, request *requests.ForgotPassword) responses.Result[responses.Ack]
	VerifyEmail(ctx context.Context, request *requests.VerifyEmail) responses.Result[responses.Ack]
	ResetPassword(ctx context.Context, request *requests.ResetPassword) responses.Result[responses.Ack]
}
