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

var availabilityForm = pageForm[requests.CreateAvailability]{page: views.PageAvailability, title: "Availability", form: constvars.FormAvailability}

type AvailabilityController struct {
	Log                 *zap.Logger
	Presenter           *Presenter
	AvailabilityUsecase contracts.AvailabilityUsecase
}

func NewAvailabilityController(logger *zap.Logger, presenter *Presenter, availabilityUsecase contracts.AvailabilityUsecase) *AvailabilityController {
	return &AvailabilityController{
		Log:                 logger,
		Presenter:           presenter,
		AvailabilityUsecase: availabilityUsecase,
	}
}

func (ctrl *AvailabilityController) ShowAvailability(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.Presenter.Session(w, r)
	if !ok {
		return
	}

	state := ctrl.AvailabilityUsecase.ListAvailability(r.Context(), session, forms.NewState(constvars.FormAvailability, nil))
	ctrl.Presenter.Show(w, r, session, views.PageAvailability, "Availability", state)
}

func (ctrl *AvailabilityController) CreateAvailability(w http.ResponseWriter, r *http.Request) {
	availabilityForm.submit(ctrl.Presenter, w, r, ctrl.AvailabilityUsecase.CreateAvailability)
}
