package controllers

import (
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"net/http"

	"go.uber.org/zap"
)

var addPatientForm = pageForm[requests.CreatePatient]{page: views.PageAddPatient, title: "Add Patient", form: constvars.FormAddPatient}

type PatientController struct {
	Log            *zap.Logger
	Presenter      *Presenter
	PatientUsecase contracts.PatientUsecase
}

func NewPatientController(logger *zap.Logger, presenter *Presenter, patientUsecase contracts.PatientUsecase) *PatientController {
	return &PatientController{
		Log:            logger,
		Presenter:      presenter,
		PatientUsecase: patientUsecase,
	}
}

func (ctrl *PatientController) ShowAddPatient(w http.ResponseWriter, r *http.Request) {
	addPatientForm.show(ctrl.Presenter, w, r)
}

func (ctrl *PatientController) AddPatient(w http.ResponseWriter, r *http.Request) {
	addPatientForm.submit(ctrl.Presenter, w, r, ctrl.PatientUsecase.CreatePatient)
}
