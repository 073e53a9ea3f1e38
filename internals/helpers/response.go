package helper

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors mengubah validator.ValidationErrors jadi map field → pesan.
// Return nil kalau err bukan error validasi.
func ValidationErrors(err error) map[string][]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}

	out := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := fe.Field()
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " is required"
		case "email":
			msg = "invalid email format"
		case "min":
			msg = field + " must be at least " + fe.Param()
		case "max":
			msg = field + " must be at most " + fe.Param()
		case "oneof":
			msg = field + " must be one of: " + fe.Param()
		case "gte":
			msg = field + " must be >= " + fe.Param()
		default:
			msg = "invalid value"
		}
		out[field] = append(out[field], msg)
	}
	return out
}
