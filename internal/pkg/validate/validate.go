/*
Package validate wraps go-playground/validator for request payload validation.

Validation is not fail-fast: a failed check reports every violated field in one
pass, using the JSON wire names, so clients can fix all problems in a single
round trip.
*/
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"salachat/internal/pkg/errs"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations by JSON field name, not Go struct field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Struct validates dst against its `validate` tags. On failure it returns the
// invalid-parameters error listing every violated field.
func Struct(dst any) *errs.CustomError {
	err := validate.Struct(dst)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.NewError(errs.ErrUnknown)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field())
	}

	return errs.NewValidationError(fields)
}
