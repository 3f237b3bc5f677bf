package requests

type RegisterUser struct {
	Username string `json:"username" form:"username" label:"Username" validate:"notblank,min=3"`
	Email    string `json:"email" form:"email" label:"Email" validate:"notblank,email_simple"`
	Password string `json:"password" form:"password" label:"Password" validate:"notblank,min=6"`
	Role     string `json:"role" form:"role" label:"Role" validate:"oneof=PATIENT DOCTOR"`
}

type LoginUser struct {
	Username string `json:"username" form:"username" label:"Username" validate:"notblank,min=3"`
	Password string `json:"password" form:"password" label:"Password" validate:"notblank,min=6"`
}

// ForgotPassword is sent as a query parameter, the backend receives no body.
type ForgotPassword struct {
	Email string `json:"-" form:"email" label:"Email" validate:"email_loose"`
}

type VerifyEmail struct {
	Username string `json:"username" form:"username" label:"Username" validate:"notblank,min=3"`
	Code     string `json:"code" form:"code" label:"Verification code" validate:"notblank,otp"`
}

type ResetPassword struct {
	Email                   string `json:"email" form:"email" label:"Email" validate:"email_loose"`
	OTP                     string `json:"otp" form:"otp" label:"OTP" validate:"notblank,otp"`
	NewPassword             string `json:"newPassword" form:"new_password" label:"New password" validate:"notblank,min=6"`
	NewPasswordConfirmation string `json:"-" form:"new_password_confirmation" label:"Password confirmation" validate:"eqfield=NewPassword"`
}
