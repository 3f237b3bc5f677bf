package requests

type ListDoctors struct {
	Specialization string `form:"specialization"`
}

type UpdateDoctorProfile struct {
	Username       string `json:"-" form:"-"`
	FullName       string `json:"fullName" form:"full_name" label:"Full name" validate:"notblank,min=3"`
	Specialization string `json:"specialization" form:"specialization" label:"Specialization" validate:"notblank"`
	Phone          string `json:"phone" form:"phone" label:"Phone" validate:"notblank,phone_number"`
	Bio            string `json:"bio,omitempty" form:"bio" label:"Bio" validate:"max=1000"`
}
