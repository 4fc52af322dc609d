package validation

import (
	"reflect"
	"strings"

	validatorv10 "github.com/go-playground/validator/v10"
)

// New returns a validator that reports field names by their json tag, so
// error messages match the wire payload.
func New() *validatorv10.Validate {
	v := validatorv10.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// MissingFields extracts the json names of fields that failed validation.
func MissingFields(err error) []string {
	ve, ok := err.(validatorv10.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Field())
	}
	return fields
}

// Message builds the itemized rejection message for a validation failure.
func Message(err error) string {
	fields := MissingFields(err)
	if len(fields) == 0 {
		return "payload tidak valid"
	}
	return strings.Join(fields, ", ") + " wajib diisi"
}
