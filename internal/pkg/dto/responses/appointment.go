package responses

type Appointment struct {
	ID              string `json:"id"`
	DoctorUsername  string `json:"doctorUsername"`
	PatientUsername string `json:"patientUsername"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	Reason          string `json:"reason,omitempty"`
	Status          string `json:"status,omitempty"`
}

type Availability struct {
	ID             string `json:"id,omitempty"`
	DoctorUsername string `json:"doctorUsername"`
	Date           string `json:"date"`
	StartTime      string `json:"startTime"`
	EndTime        string `json:"endTime"`
}
