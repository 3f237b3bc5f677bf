package routers

import (
	"medibook-web/internal/app/delivery/http/controllers"
	"medibook-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get(constvars.RouteAppointments, appointmentController.ListAppointments)
	router.Get(constvars.RouteMakeAppointment, appointmentController.ShowMakeAppointment)
	router.Post(constvars.RouteMakeAppointment, appointmentController.MakeAppointment)
	router.Get(constvars.RouteUpdateAppointment, appointmentController.ShowUpdateAppointment)
	router.Post(constvars.RouteUpdateAppointment, appointmentController.UpdateAppointment)
	router.Get(constvars.RouteCancelAppointment, appointmentController.ShowCancelAppointment)
	router.Post(constvars.RouteCancelAppointment, appointmentController.CancelAppointment)
}
