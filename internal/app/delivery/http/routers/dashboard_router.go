package routers

import (
	"medibook-web/internal/app/delivery/http/controllers"
	"medibook-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, dashboardController *controllers.DashboardController) {
	router.Get(constvars.RouteHome, dashboardController.Home)
	router.Get(constvars.RouteHomeAlias, dashboardController.Home)
	router.Get(constvars.RouteDoctorDashboard, dashboardController.DoctorDashboard)
	router.Get(constvars.RoutePatientDashboard, dashboardController.PatientDashboard)
	router.Get(constvars.RouteAdminDashboard, dashboardController.AdminDashboard)
}
