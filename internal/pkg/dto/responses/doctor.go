package responses

type Doctor struct {
	Username       string `json:"username"`
	FullName       string `json:"fullName"`
	Specialization string `json:"specialization"`
	Phone          string `json:"phone,omitempty"`
	Bio            string `json:"bio,omitempty"`
}
