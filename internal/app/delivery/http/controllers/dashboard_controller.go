package controllers

import (
	"medibook-web/internal/app/config"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/responses"
	"medibook-web/internal/pkg/utils"
	"net/http"
)

// DashboardController serves the pages without a form of their own.
type DashboardController struct {
	Presenter      *Presenter
	InternalConfig *config.InternalConfig
}

func NewDashboardController(presenter *Presenter, internalConfig *config.InternalConfig) *DashboardController {
	return &DashboardController{
		Presenter:      presenter,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DashboardController) Home(w http.ResponseWriter, r *http.Request) {
	ctrl.show(w, r, views.PageHome, "Welcome to MediBook")
}

func (ctrl *DashboardController) DoctorDashboard(w http.ResponseWriter, r *http.Request) {
	ctrl.show(w, r, views.PageDoctorDashboard, "Doctor Dashboard")
}

func (ctrl *DashboardController) PatientDashboard(w http.ResponseWriter, r *http.Request) {
	ctrl.show(w, r, views.PagePatientDashboard, "Patient Dashboard")
}

func (ctrl *DashboardController) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	ctrl.show(w, r, views.PageAdminDashboard, "Admin Dashboard")
}

func (ctrl *DashboardController) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthCheckSuccess, responses.HealthCheck{
		Version: ctrl.InternalConfig.App.Version,
		Env:     ctrl.InternalConfig.App.Env,
	})
}

func (ctrl *DashboardController) show(w http.ResponseWriter, r *http.Request, page, title string) {
	session, ok := ctrl.Presenter.Session(w, r)
	if !ok {
		return
	}
	ctrl.Presenter.Show(w, r, session, page, title, nil)
}
