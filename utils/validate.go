package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs field-level validation and returns a human-readable
// concatenation of every violation, or the empty string when the value is
// valid.
func ValidateStruct(v interface{}) string {
	err := validate.Struct(v)
	if err == nil {
		return ""
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed on the '%s' constraint", fe.Field(), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
