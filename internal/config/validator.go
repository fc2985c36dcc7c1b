package config

import (
	"ExpenseTracker/internal/entity"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// NewValidator reports fields by their JSON name and knows the isodate tag.
func NewValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, ok := entity.NormalizeDate(fl.Field().String())
		return ok
	})

	return validate
}
