package controllers

import (
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"medibook-web/internal/pkg/forms"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

var doctorProfileForm = pageForm[requests.UpdateDoctorProfile]{page: views.PageDoctorProfile, title: "Doctor Profile", form: constvars.FormDoctorProfile}

type DoctorController struct {
	Log           *zap.Logger
	Presenter     *Presenter
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, presenter *Presenter, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		Presenter:     presenter,
		DoctorUsecase: doctorUsecase,
	}
}

// ViewDoctors is a GET form, the filter travels in the query string.
func (ctrl *DoctorController) ViewDoctors(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.Presenter.Session(w, r)
	if !ok {
		return
	}

	request := &requests.ListDoctors{Specialization: strings.TrimSpace(r.URL.Query().Get("specialization"))}
	state := forms.NewState(constvars.FormViewDoctors, map[string]string{"specialization": request.Specialization})
	state = ctrl.DoctorUsecase.ListDoctors(r.Context(), state, request)
	ctrl.Presenter.Show(w, r, session, views.PageViewDoctors, "Doctors", state)
}

func (ctrl *DoctorController) ShowProfile(w http.ResponseWriter, r *http.Request) {
	doctorProfileForm.show(ctrl.Presenter, w, r)
}

func (ctrl *DoctorController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	doctorProfileForm.submit(ctrl.Presenter, w, r, ctrl.DoctorUsecase.UpdateProfile)
}
