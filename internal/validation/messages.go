package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern  = regexp.MustCompile(`^\+?[0-9\s\-()]+$`)
	postalPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
)

// fieldPath converts a validation error namespace into the JSON path of the
// offending field: "NormalizedCompany.configuration.theme.base1" becomes
// "configuration.theme.base1". The leading segment is the Go struct type and
// never part of the wire shape.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

// messageFor renders a human-readable message for one violated rule
func messageFor(fe validator.FieldError) string {
	// Commission bounds read better in domain terms
	if fe.Field() == "commissionRate" {
		switch fe.Tag() {
		case "gte":
			return "Commission rate cannot be negative"
		case "lte":
			return "Commission rate cannot exceed 100%"
		}
	}
	if fe.Field() == "managerId" && fe.Tag() == "required_if" {
		return "Manager is required"
	}

	switch fe.Tag() {
	case "required", "required_if":
		return "This field is required"
	case "email":
		return "Invalid email address"
	case "url":
		return "Invalid URL"
	case "hexcolor":
		return "Invalid hex color"
	case "phone":
		return "Invalid phone format"
	case "uspostal":
		return "Invalid postal code"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Must be at most %s characters", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid value for %s", fe.Field())
	}
}
