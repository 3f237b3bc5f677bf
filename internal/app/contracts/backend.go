package contracts

// BackendClient is the whole REST surface of the booking backend. Every
// call returns a responses.Result, transport failures included.
type BackendClient interface {
	AuthClient
	AppointmentClient
	DoctorClient
	PatientClient
	AvailabilityClient
	PaymentClient
}
