package routers

import (
	"medibook-web/internal/app/delivery/http/controllers"
	"medibook-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, authController *controllers.AuthController) {
	router.Get(constvars.RouteRegister, authController.ShowRegister)
	router.Post(constvars.RouteRegister, authController.Register)
	router.Get(constvars.RouteVerifyEmail, authController.ShowVerifyEmail)
	router.Post(constvars.RouteVerifyEmail, authController.VerifyEmail)
	router.Get(constvars.RouteLogin, authController.ShowLogin)
	router.Post(constvars.RouteLogin, authController.Login)
	router.Post(constvars.RouteLogout, authController.Logout)
	router.Get(constvars.RouteForgotPassword, authController.ShowForgotPassword)
	router.Post(constvars.RouteForgotPassword, authController.ForgotPassword)
	router.Get(constvars.RouteResetPassword, authController.ShowResetPassword)
	router.Post(constvars.RouteResetPassword, authController.ResetPassword)
}
