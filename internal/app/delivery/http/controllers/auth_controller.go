package controllers

import (
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"net/http"

	"go.uber.org/zap"
)

var (
	registerForm       = pageForm[requests.RegisterUser]{page: views.PageRegister, title: "Register", form: constvars.FormRegister, secret: []string{"password"}}
	loginForm          = pageForm[requests.LoginUser]{page: views.PageLogin, title: "Login", form: constvars.FormLogin, secret: []string{"password"}}
	forgotPasswordForm = pageForm[requests.ForgotPassword]{page: views.PageForgotPassword, title: "Forgot Password", form: constvars.FormForgotPassword}
	verifyEmailForm    = pageForm[requests.VerifyEmail]{page: views.PageVerifyEmail, title: "Verify Email", form: constvars.FormVerifyEmail, prefill: []string{"username"}}
	resetPasswordForm  = pageForm[requests.ResetPassword]{
		page:    views.PageResetPassword,
		title:   "Reset Password",
		form:    constvars.FormResetPassword,
		prefill: []string{"email"},
		secret:  []string{"new_password", "new_password_confirmation"},
	}
)

type AuthController struct {
	Log         *zap.Logger
	Presenter   *Presenter
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, presenter *Presenter, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		Presenter:   presenter,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) ShowRegister(w http.ResponseWriter, r *http.Request) {
	registerForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	registerForm.submit(ctrl.Presenter, w, r, ctrl.AuthUsecase.Register)
}

func (ctrl *AuthController) ShowLogin(w http.ResponseWriter, r *http.Request) {
	loginForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	loginForm.submit(ctrl.Presenter, w, r, ctrl.AuthUsecase.Login)
}

func (ctrl *AuthController) ShowForgotPassword(w http.ResponseWriter, r *http.Request) {
	forgotPasswordForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AuthController) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	forgotPasswordForm.submit(ctrl.Presenter, w, r, ctrl.AuthUsecase.ForgotPassword)
}

func (ctrl *AuthController) ShowVerifyEmail(w http.ResponseWriter, r *http.Request) {
	verifyEmailForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AuthController) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	verifyEmailForm.submit(ctrl.Presenter, w, r, ctrl.AuthUsecase.VerifyEmail)
}

func (ctrl *AuthController) ShowResetPassword(w http.ResponseWriter, r *http.Request) {
	resetPasswordForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AuthController) ResetPassword(w http.ResponseWriter, r *http.Request) {
	resetPasswordForm.submit(ctrl.Presenter, w, r, ctrl.AuthUsecase.ResetPassword)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.Presenter.Session(w, r)
	if !ok {
		return
	}

	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AuthController.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	navigation, err := ctrl.AuthUsecase.Logout(r.Context(), session)
	if err != nil {
		ctrl.Presenter.Fail(w, r, err)
		return
	}
	ctrl.Presenter.Redirect(w, r, session, navigation)
}
