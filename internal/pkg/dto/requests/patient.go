package requests

type CreatePatient struct {
	FullName    string `json:"fullName" form:"full_name" label:"Full name" validate:"notblank,min=3"`
	Email       string `json:"email" form:"email" label:"Email" validate:"notblank,email_simple"`
	Phone       string `json:"phone" form:"phone" label:"Phone" validate:"notblank,phone_number"`
	DateOfBirth string `json:"dateOfBirth" form:"date_of_birth" label:"Date of birth" validate:"date_ymd,not_future_date"`
	Gender      string `json:"gender" form:"gender" label:"Gender" validate:"oneof=MALE FEMALE OTHER"`
}
