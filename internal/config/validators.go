package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// register adds the custom rules used by Config together with their messages,
// and makes messages name fields by their label tag.
func register(v *validator.Validator) error {
	rules := []struct {
		tag, message string
		fn           func(validator.FieldLevel) bool
	}{
		{"exclusive", "{0} is mutually exclusive with {1}", validateExclusive},
		{"either", "one of {0} or {1} is required", validateEither},
		{"single", "{0} requires exactly one input file", validateSingle},
	}

	for _, rule := range rules {
		if err := v.RegisterValidationAndTranslation(rule.tag, rule.fn, rule.message); err != nil {
			return fmt.Errorf("registering %s validation: %w", rule.tag, err)
		}
	}

	v.Validator().RegisterTagNameFunc(label)

	return nil
}

// label returns the name a field is reported by: its label tag, or its Go name.
func label(fld reflect.StructField) string {
	const splitSize = 2

	name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
	if name == "" || name == "-" {
		return fld.Name
	}

	return name
}

// sibling returns the field named by the rule parameter, looked up by Go name
// or by label, in the struct holding the field under validation.
func sibling(fl validator.FieldLevel) reflect.Value {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}

	if parent.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	if field := parent.FieldByName(fl.Param()); field.IsValid() {
		return field
	}

	for i := range parent.NumField() {
		if label(parent.Type().Field(i)) == fl.Param() {
			return parent.Field(i)
		}
	}

	return reflect.Value{}
}

// validateExclusive checks if two fields are mutually exclusive.
// Returns false if both fields have non-empty values.
func validateExclusive(fl validator.FieldLevel) bool {
	field := fl.Field()
	other := sibling(fl)

	if !field.IsValid() || !other.IsValid() {
		return true
	}

	return field.IsZero() || other.IsZero()
}

// validateEither requires at least one of two fields to be set.
func validateEither(fl validator.FieldLevel) bool {
	other := sibling(fl)

	return !fl.Field().IsZero() || (other.IsValid() && !other.IsZero())
}

// validateSingle allows a set field only when the list named by the parameter
// holds exactly one entry.
func validateSingle(fl validator.FieldLevel) bool {
	if fl.Field().IsZero() {
		return true
	}

	list := sibling(fl)

	return list.IsValid() && list.Kind() == reflect.Slice && list.Len() == 1
}
