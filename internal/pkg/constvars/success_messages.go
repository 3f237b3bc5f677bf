package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	HealthCheckSuccess = "service is healthy"
)

// Form outcomes
const (
	RegisterSuccessMessage          = "Registration successful! Redirecting to Verify Email..."
	RegisterFailureFormat           = "Registration failed: %s"
	RegisterFallback                = "Please try again."
	LoginInvalidMessage             = "Please fix the errors before submitting."
	LoginWelcomeFormat              = "Welcome %s! Redirecting to your dashboard..."
	LoginWelcomeDefaultName         = "User"
	LoginFallback                   = "Login failed. Please check your credentials."
	ForgotPasswordSuccessMessage    = "Reset password link sent successfully!"
	ForgotPasswordFailureFormat     = "Error: %s"
	ForgotPasswordFallback          = "Failed to send reset password token"
	VerifyEmailSuccessMessage       = "Email verified successfully! You can now log in."
	VerifyEmailFallback             = "Email verification failed. Please try again."
	ResetPasswordSuccessMessage     = "Password reset successfully! Please log in with your new password."
	ResetPasswordFallback           = "Failed to reset password."
	LogoutSuccessMessage            = "You have been logged out."
	MakeAppointmentSuccessMessage   = "Appointment booked successfully!"
	MakeAppointmentFallback         = "Failed to book appointment."
	UpdateAppointmentSuccessMessage = "Appointment updated successfully!"
	UpdateAppointmentFallback       = "Failed to update appointment."
	CancelAppointmentSuccessMessage = "Appointment cancelled successfully!"
	CancelAppointmentFallback       = "Failed to cancel appointment."
	ListAppointmentsFallback        = "Failed to load appointments."
	ListDoctorsFallback             = "Failed to load doctors."
	DoctorProfileSuccessMessage     = "Profile updated successfully!"
	DoctorProfileFallback           = "Failed to update profile."
	AddPatientSuccessMessage        = "Patient added successfully!"
	AddPatientFallback              = "Failed to add patient."
	AvailabilitySuccessMessage      = "Availability saved successfully!"
	AvailabilityFallback            = "Failed to save availability."
	ListAvailabilityFallback        = "Failed to load availability."
	PaymentSuccessMessage           = "Payment completed successfully!"
	PaymentFallback                 = "Payment failed. Please try again."
	LoginRequiredMessage            = "Please log in to continue."
)
