package utils

import (
	"errors"
	"fmt"
	"medibook-web/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	emailSimpleRegex = regexp.MustCompile(constvars.RegexEmailSimple)
	emailLooseRegex  = regexp.MustCompile(constvars.RegexEmailLoose)
	timeHHMMRegex    = regexp.MustCompile(constvars.RegexTimeHHMM)
	phoneNumberRegex = regexp.MustCompile(constvars.RegexPhoneNumber)
	cardNumberRegex  = regexp.MustCompile(constvars.RegexCardNumber)
	otpRegex         = regexp.MustCompile(constvars.RegexVerificationOTP)
)

// FormErrorKey holds errors that do not belong to a single field.
const FormErrorKey = "_form"

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := field.Tag.Get("form")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("notblank", validateNotBlank)
	validate.RegisterValidation("email_simple", validateRegex(emailSimpleRegex))
	validate.RegisterValidation("email_loose", validateRegex(emailLooseRegex))
	validate.RegisterValidation("time_hhmm", validateRegex(timeHHMMRegex))
	validate.RegisterValidation("phone_number", validateRegex(phoneNumberRegex))
	validate.RegisterValidation("otp", validateRegex(otpRegex))
	validate.RegisterValidation("card_number", validateCardNumber)
	validate.RegisterValidation("date_ymd", validateDate)
	validate.RegisterValidation("not_past_date", validateNotPastDate)
	validate.RegisterValidation("not_future_date", validateNotFutureDate)
	validate.RegisterValidation("after_time", validateAfterTime)
}

// ValidateForm returns one message per failing form field, keyed by the
// field's form name. A nil map means the input is valid.
func ValidateForm(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{FormErrorKey: constvars.ErrClientCannotProcessRequest}
	}

	structType := reflect.TypeOf(s)
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}

	fieldErrors := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		if _, exists := fieldErrors[fieldErr.Field()]; exists {
			continue
		}
		fieldErrors[fieldErr.Field()] = FormatValidationError(structType, fieldErr)
	}
	return fieldErrors
}

func FormatValidationError(structType reflect.Type, fieldErr validator.FieldError) string {
	label := fieldLabel(structType, fieldErr.StructField())
	tag := fieldErr.Tag()

	message, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return fmt.Sprintf("%s is invalid.", label)
	}
	if !strings.Contains(message, "%s") {
		return message
	}
	if !constvars.TagsWithParams[tag] {
		return fmt.Sprintf(message, label)
	}

	param := fieldErr.Param()
	switch tag {
	case "oneof":
		param = strings.Join(strings.Fields(param), ", ")
	case "eqfield", "after_time":
		param = fieldLabel(structType, param)
	}
	return fmt.Sprintf(message, label, param)
}

func fieldLabel(structType reflect.Type, fieldName string) string {
	field, ok := structType.FieldByName(fieldName)
	if !ok {
		return fieldName
	}
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	return field.Name
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateRegex(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func validateCardNumber(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	if number == "" {
		return true
	}
	if !cardNumberRegex.MatchString(number) {
		return false
	}
	return luhnValid(number)
}

func luhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit := int(number[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}

func validateDate(fl validator.FieldLevel) bool {
	_, err := time.ParseInLocation(constvars.AppDateLayout, fl.Field().String(), time.Local)
	return err == nil
}

// Unparseable dates pass here so that date_ymd reports them alone.
func validateNotPastDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation(constvars.AppDateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return true
	}
	return !date.Before(Today())
}

func validateNotFutureDate(fl validator.FieldLevel) bool {
	date, err := time.ParseInLocation(constvars.AppDateLayout, fl.Field().String(), time.Local)
	if err != nil {
		return true
	}
	return !date.After(Today())
}

func validateAfterTime(fl validator.FieldLevel) bool {
	other := fl.Parent().FieldByName(fl.Param())
	if !other.IsValid() {
		return false
	}

	end, err := time.Parse(constvars.AppTimeLayout, fl.Field().String())
	if err != nil {
		return true
	}
	start, err := time.Parse(constvars.AppTimeLayout, other.String())
	if err != nil {
		return true
	}
	return end.After(start)
}

// Today is midnight of the current day in the app timezone.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}
