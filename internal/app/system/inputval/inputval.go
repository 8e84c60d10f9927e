// Package inputval validates request input structs declaratively.
//
// Rules are declared with struct tags:
//
//	type submitInput struct {
//	    Name  string `json:"name" validate:"required,min=2" label:"Name"`
//	    Email string `json:"email_primary" validate:"required,email" label:"Primary email"`
//	}
//
// Supported rules: required, min=N, max=N, email, digits=N, oneof=A B.
// Optional fields are declared as *string; a nil pointer skips every rule,
// a non-nil pointer is validated like a plain string (minus required).
//
// Validate never touches the data store; it only inspects the given value.
package inputval

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// FieldError describes one failed constraint on one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result collects the field errors from one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any constraint failed.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" when validation passed.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All returns every error message joined with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field error. Handlers use it for policy checks that do not
// fit a struct tag (for example a config-dependent pin format).
func (r *Result) Add(field, message string) {
	r.Errors = append(r.Errors, FieldError{Field: field, Message: message})
}

// Validate checks every tagged field of input, which must be a struct or a
// pointer to one. Fields without a validate tag are ignored.
func Validate(input any) *Result {
	res := &Result{}

	v := reflect.ValueOf(input)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return res
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		rules := sf.Tag.Get("validate")
		if rules == "" || !sf.IsExported() {
			continue
		}

		val, present := fieldValue(v.Field(i))
		label := sf.Tag.Get("label")
		if label == "" {
			label = sf.Name
		}
		name := fieldName(sf)

		for _, rule := range strings.Split(rules, ",") {
			rule = strings.TrimSpace(rule)
			if rule == "" {
				continue
			}
			if rule == "required" {
				if !present || strings.TrimSpace(val) == "" {
					res.Add(name, label+" is required.")
					break
				}
				continue
			}
			// Remaining rules only apply to values that were supplied.
			if !present || strings.TrimSpace(val) == "" {
				continue
			}
			if msg := applyRule(rule, val, label); msg != "" {
				res.Add(name, msg)
				break
			}
		}
	}

	return res
}

// fieldValue extracts a string from a string or *string field.
// present is false for a nil pointer (the field was omitted).
func fieldValue(v reflect.Value) (val string, present bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Pointer:
		if v.IsNil() {
			return "", false
		}
		if v.Elem().Kind() == reflect.String {
			return v.Elem().String(), true
		}
	}
	return "", false
}

func fieldName(sf reflect.StructField) string {
	if tag := sf.Tag.Get("json"); tag != "" {
		if name := strings.Split(tag, ",")[0]; name != "" && name != "-" {
			return name
		}
	}
	return strings.ToLower(sf.Name)
}

func applyRule(rule, val, label string) string {
	name, param, _ := strings.Cut(rule, "=")
	switch name {
	case "min":
		n, err := strconv.Atoi(param)
		if err == nil && len(val) < n {
			return fmt.Sprintf("%s must be at least %d characters.", label, n)
		}
	case "max":
		n, err := strconv.Atoi(param)
		if err == nil && len(val) > n {
			return fmt.Sprintf("%s must be at most %d characters.", label, n)
		}
	case "email":
		if !IsValidEmail(val) {
			return "A valid email address is required."
		}
	case "digits":
		n, err := strconv.Atoi(param)
		if err == nil && !isDigits(val, n) {
			return fmt.Sprintf("%s must be exactly %d digits.", label, n)
		}
	case "oneof":
		allowed := strings.Fields(param)
		for _, a := range allowed {
			if val == a {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s.", label, strings.Join(allowed, ", "))
	}
	return ""
}

func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
