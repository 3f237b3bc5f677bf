package controllers

import (
	"medibook-web/internal/app/contracts"
	"medibook-web/internal/app/delivery/http/views"
	"medibook-web/internal/pkg/constvars"
	"medibook-web/internal/pkg/dto/requests"
	"net/http"

	"go.uber.org/zap"
)

var paymentForm = pageForm[requests.CreatePayment]{
	page:    views.PagePayments,
	title:   "Payments",
	form:    constvars.FormPayment,
	prefill: []string{"appointment_id"},
	secret:  []string{"card_number"},
}

type PaymentController struct {
	Log            *zap.Logger
	Presenter      *Presenter
	PaymentUsecase contracts.PaymentUsecase
}

func NewPaymentController(logger *zap.Logger, presenter *Presenter, paymentUsecase contracts.PaymentUsecase) *PaymentController {
	return &PaymentController{
		Log:            logger,
		Presenter:      presenter,
		PaymentUsecase: paymentUsecase,
	}
}

func (ctrl *PaymentController) ShowPayment(w http.ResponseWriter, r *http.Request) {
	paymentForm.show(ctrl.Presenter, w, r)
}

func (ctrl *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	paymentForm.submit(ctrl.Presenter, w, r, ctrl.PaymentUsecase.CreatePayment)
}
