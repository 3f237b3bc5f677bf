package requests

type CreateAvailability struct {
	DoctorUsername string `json:"doctorUsername" form:"-"`
	Date           string `json:"date" form:"date" label:"Date" validate:"date_ymd,not_past_date"`
	StartTime      string `json:"startTime" form:"start_time" label:"Start time" validate:"time_hhmm"`
	EndTime        string `json:"endTime" form:"end_time" label:"End time" validate:"time_hhmm,after_time=StartTime"`
}

type ListAvailability struct {
	DoctorUsername string
}
