package requests

type CreateAppointment struct {
	DoctorUsername  string `json:"doctorUsername" form:"doctor_username" label:"Doctor" validate:"notblank,min=3"`
	PatientUsername string `json:"patientUsername" form:"-"`
	Date            string `json:"date" form:"date" label:"Date" validate:"date_ymd,not_past_date"`
	Time            string `json:"time" form:"time" label:"Time" validate:"time_hhmm"`
	Reason          string `json:"reason,omitempty" form:"reason" label:"Reason" validate:"max=500"`
}

type UpdateAppointment struct {
	AppointmentID string `json:"-" form:"appointment_id" label:"Appointment ID" validate:"notblank"`
	Date          string `json:"date" form:"date" label:"Date" validate:"date_ymd,not_past_date"`
	Time          string `json:"time" form:"time" label:"Time" validate:"time_hhmm"`
	Reason        string `json:"reason,omitempty" form:"reason" label:"Reason" validate:"max=500"`
}

type CancelAppointment struct {
	AppointmentID string `json:"-" form:"appointment_id" label:"Appointment ID" validate:"notblank"`
	Reason        string `json:"-" form:"reason" label:"Reason" validate:"max=500"`
}

type ListAppointments struct {
	Username string
	Role     string
}
