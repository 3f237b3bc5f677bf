package controllers

import (
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/forms"
	"net/http"

	"go.uber.org/zap"
)

var (
	makeAppointmentForm   = pageForm[requests.CreateAppointment]{page: views.PageMakeAppointment, title: "Book Appointment", form: constvars.FormMakeAppointment, prefill: []string{"doctor_username"}}
	updateAppointmentForm = pageForm[requests.UpdateAppointment]{page: views.PageUpdateAppointment, title: "Reschedule Appointment", form: constvars.FormUpdateAppointment, prefill: []string{"appointment_id"}}
	cancelAppointmentForm = pageForm[requests.CancelAppointment]{page: views.PageCancelAppointment, title: "Cancel Appointment", form: constvars.FormCancelAppointment, prefill: []string{"appointment_id"}}
)

type AppointmentController struct {
	Log                *zap.Logger
	Presenter          *Presenter
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, presenter *Presenter, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		Presenter:          presenter,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) ListAppointments(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.Presenter.Session(w, r)
	if !ok {
		return
	}

	state := ctrl.AppointmentUsecase.ListAppointments(r.Context(), session, forms.NewState(constvars.FormListAppointments, nil))
	ctrl.Presenter.Show(w, r, session, views.PageAppointments, "Appointments", state)
}

func (ctrl *AppointmentController) ShowMakeAppointment(w http.ResponseWriter, r *http.Request) {
	makeAppointmentForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AppointmentController) MakeAppointment(w http.ResponseWriter, r *http.Request) {
	makeAppointmentForm.submit(ctrl.Presenter, w, r, ctrl.AppointmentUsecase.CreateAppointment)
}

func (ctrl *AppointmentController) ShowUpdateAppointment(w http.ResponseWriter, r *http.Request) {
	updateAppointmentForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	updateAppointmentForm.submit(ctrl.Presenter, w, r, ctrl.AppointmentUsecase.UpdateAppointment)
}

func (ctrl *AppointmentController) ShowCancelAppointment(w http.ResponseWriter, r *http.Request) {
	cancelAppointmentForm.show(ctrl.Presenter, w, r)
}

func (ctrl *AppointmentController) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	cancelAppointmentForm.submit(ctrl.Presenter, w, r, ctrl.AppointmentUsecase.CancelAppointment)
}
