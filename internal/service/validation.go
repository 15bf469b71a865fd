package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"

	apperrors "atlas-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// collectValidation runs struct validation on req and appends every failure
// to verr. Errors other than validation failures are returned as is.
func collectValidation(v *validator.Validate, req interface{}, verr *apperrors.ValidationError) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		verr.Add(fieldPath(fe), msgForTag(fe))
	}
	return nil
}

// fieldPath drops the root struct name from the namespace: "ProjectDraft.images[0].url" -> "images[0].url"
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func msgForTag(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%v is required", field)
	case "email":
		return "Invalid email"
	case "url":
		return fmt.Sprintf("%v must be a valid URL", field)
	case "min":
		return fmt.Sprintf("%v must be at least %v characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%v must be at most %v characters", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%v must be greater than or equal to %v", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%v must be less than or equal to %v", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%v must be one of [%v]", field, fe.Param())
	}
	return fmt.Sprintf("%v is invalid", field)
}

// checkLength adds a violation when value is longer than max runes. A
// non-positive max disables the check.
func checkLength(verr *apperrors.ValidationError, field, value string, max int) {
	if max > 0 && utf8.RuneCountInString(value) > max {
		verr.Add(field, fmt.Sprintf("%s must be at most %d characters", field, max))
	}
}
