package constvars

// Frontend pages
const (
	RouteHome              = "/"
	RouteHomeAlias         = "/home"
	RouteRegister          = "/register"
	RouteVerifyEmail       = "/verify-email"
	RouteLogin             = "/login"
	RouteLogout            = "/logout"
	RouteForgotPassword    = "/forgot-password"
	RouteResetPassword     = "/reset-password"
	RouteDoctorDashboard   = "/doctor-dashboard"
	RoutePatientDashboard  = "/patient-dashboard"
	RouteAdminDashboard    = "/admin-dashboard"
	RouteAvailability      = "/availability"
	RouteAppointments      = "/appointments"
	RouteDoctorProfile     = "/doctor-profile"
	RouteAddPatient        = "/add-patient"
	RouteMakeAppointment   = "/make-appointment"
	RouteViewDoctors       = "/view-doctors"
	RouteUpdateAppointment = "/update-appointment"
	RouteCancelAppointment = "/cancel-appointment"
	RoutePayments          = "/payments"
	RouteHealthz           = "/healthz"
)

// Backend endpoints, relative to the backend base URL
const (
	BackendPathRegister       = "/auth/register"
	BackendPathLogin          = "/auth/login"
	BackendPathForgotPassword = "/auth/reset-password"
	BackendPathResetPassword  = "/auth/update-password"
	BackendPathVerifyEmail    = "/auth/verify-email"
	BackendPathAppointments   = "/appointments"
	BackendPathDoctors        = "/doctors"
	BackendPathPatients       = "/patients"
	BackendPathAvailability   = "/availability"
	BackendPathPayments       = "/payments"
)

// Failure body fields that carry server text
const (
	BackendErrorField   = "error"
	BackendMessageField = "message"
)

// Form names, used for busy locks and logging
const (
	FormRegister          = "register"
	FormLogin             = "login"
	FormForgotPassword    = "forgot_password"
	FormResetPassword     = "reset_password"
	FormVerifyEmail       = "verify_email"
	FormMakeAppointment   = "make_appointment"
	FormUpdateAppointment = "update_appointment"
	FormCancelAppointment = "cancel_appointment"
	FormListAppointments  = "appointments"
	FormViewDoctors       = "view_doctors"
	FormDoctorProfile     = "doctor_profile"
	FormAddPatient        = "add_patient"
	FormAvailability      = "availability"
	FormListAvailability  = "availability_list"
	FormPayment           = "payment"
)
