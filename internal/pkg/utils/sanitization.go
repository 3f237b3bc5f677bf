package utils

import (
	"medibook-web/internal/pkg/dto/requests"
	"strings"
)

var digitSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

func SanitizeVerifyEmailRequest(request *requests.VerifyEmail) {
	request.Code = strings.TrimSpace(request.Code)
}

func SanitizeResetPasswordRequest(request *requests.ResetPassword) {
	request.OTP = strings.TrimSpace(request.OTP)
}

func SanitizeCreateAppointmentRequest(request *requests.CreateAppointment) {
	request.DoctorUsername = strings.TrimSpace(request.DoctorUsername)
	request.Date = strings.TrimSpace(request.Date)
	request.Time = strings.TrimSpace(request.Time)
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeUpdateAppointmentRequest(request *requests.UpdateAppointment) {
	request.AppointmentID = strings.TrimSpace(request.AppointmentID)
	request.Date = strings.TrimSpace(request.Date)
	request.Time = strings.TrimSpace(request.Time)
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeCancelAppointmentRequest(request *requests.CancelAppointment) {
	request.AppointmentID = strings.TrimSpace(request.AppointmentID)
	request.Reason = strings.TrimSpace(request.Reason)
}

func SanitizeUpdateDoctorProfileRequest(request *requests.UpdateDoctorProfile) {
	request.FullName = strings.TrimSpace(request.FullName)
	request.Specialization = strings.TrimSpace(request.Specialization)
	request.Phone = digitSeparators.Replace(strings.TrimSpace(request.Phone))
	request.Bio = strings.TrimSpace(request.Bio)
}

func SanitizeCreatePatientRequest(request *requests.CreatePatient) {
	request.FullName = strings.TrimSpace(request.FullName)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
	request.Phone = digitSeparators.Replace(strings.TrimSpace(request.Phone))
	request.Gender = strings.ToUpper(strings.TrimSpace(request.Gender))
}

func SanitizeCreateAvailabilityRequest(request *requests.CreateAvailability) {
	request.Date = strings.TrimSpace(request.Date)
	request.StartTime = strings.TrimSpace(request.StartTime)
	request.EndTime = strings.TrimSpace(request.EndTime)
}

func SanitizeCreatePaymentRequest(request *requests.CreatePayment) {
	request.AppointmentID = strings.TrimSpace(request.AppointmentID)
	request.Method = strings.ToUpper(strings.TrimSpace(request.Method))
	request.CardHolder = strings.TrimSpace(request.CardHolder)
	request.CardNumber = digitSeparators.Replace(request.CardNumber)
	if request.Method != requests.PaymentMethodCard {
		request.CardHolder = ""
		request.CardNumber = ""
	}
}
