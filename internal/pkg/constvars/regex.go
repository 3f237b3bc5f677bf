package constvars

const (
	// RegexEmailSimple is the registration rule: local@domain.tld with no whitespace.
	RegexEmailSimple = `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	// RegexEmailLoose is unanchored on purpose, it only has to appear somewhere in the input.
	RegexEmailLoose      = `\S+@\S+\.\S+`
	RegexDateYYYYMMDD    = `^\d{4}-\d{2}-\d{2}$`
	RegexTimeHHMM        = `^([01]\d|2[0-3]):[0-5]\d$`
	RegexNumeric         = `^\d+$`
	RegexPhoneNumber     = `^\+?[0-9]{8,15}$`
	RegexCardNumber      = `^\d{13,19}$`
	RegexVerificationOTP = `^\d{6}$`
)
