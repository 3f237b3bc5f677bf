package requests

const (
	PaymentMethodCard      = "CARD"
	PaymentMethodCash      = "CASH"
	PaymentMethodInsurance = "INSURANCE"
)

type CreatePayment struct {
	AppointmentID   string  `json:"appointmentId" form:"appointment_id" label:"Appointment ID" validate:"notblank"`
	Amount          float64 `json:"amount" form:"amount" label:"Amount" validate:"gt=0"`
	Method          string  `json:"method" form:"method" label:"Payment method" validate:"oneof=CARD CASH INSURANCE"`
	CardHolder      string  `json:"cardHolder,omitempty" form:"card_holder" label:"Card holder" validate:"required_if=Method CARD"`
	CardNumber      string  `json:"cardNumber,omitempty" form:"card_number" label:"Card number" validate:"required_if=Method CARD,card_number"`
	PatientUsername string  `json:"patientUsername" form:"-"`
}
