package handlerUtil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FirstError turns a validator failure into a message naming the first bad
// field, e.g. `"amount" must be a positive number`. Other errors pass through.
func FirstError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	return fmt.Errorf("%q %s", fieldPath(fe), reason(fe))
}

// fieldPath drops the leading struct name from the namespace so nested batch
// elements read as transactions[2].amount.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		if fe.Param() == "0" {
			return "must be a positive number"
		}
		return "must be greater than " + fe.Param()
	case "isodate":
		return "must be a valid ISO 8601 date"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
