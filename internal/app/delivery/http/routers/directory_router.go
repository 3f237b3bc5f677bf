package routers

import (
	"medibook-web/internal/app/delivery/http/controllers"
	"medibook-web/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get(constvars.RouteViewDoctors, doctorController.ViewDoctors)
	router.Get(constvars.RouteDoctorProfile, doctorController.ShowProfile)
	router.Post(constvars.RouteDoctorProfile, doctorController.UpdateProfile)
}

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get(constvars.RouteAddPatient, patientController.ShowAddPatient)
	router.Post(constvars.RouteAddPatient, patientController.AddPatient)
}

func attachAvailabilityRoutes(router chi.Router, availabilityController *controllers.AvailabilityController) {
	router.Get(constvars.RouteAvailability, availabilityController.ShowAvailability)
	router.Post(constvars.RouteAvailability, availabilityController.CreateAvailability)
}

func attachPaymentRoutes(router chi.Router, paymentController *controllers.PaymentController) {
	router.Get(constvars.RoutePayments, paymentController.ShowPayment)
	router.Post(constvars.RoutePayments, paymentController.CreatePayment)
}
