// Package validation contains the input validation rules for the application.
//
// It wraps go-playground/validator with the per-field rules of the task
// resource and turns rule failures into an ordered list of violations with
// fixed user-facing messages. Violations come out in field declaration order
// and only the first failing rule per field is reported. Validation has no
// side effects; it only inspects the submitted values.
package validation

import (
	"encoding/json"
	"errors"
	"strings"

	"TareasWebService/commands"

	"github.com/go-playground/validator/v10"
)

// Fixed user-facing messages, one per rule kind.
const (
	MsgTitleRequired      = "El título es obligatorio"
	MsgTitleTooLong       = "El título no puede tener más de 255 caracteres"
	MsgDescriptionTooLong = "La descripción no puede tener más de 1000 caracteres"
	MsgCompletedBoolean   = "El campo completed debe ser un booleano"
)

// Violation names a field and the fixed reason it failed validation.
type Violation struct {
	Msg   string `json:"msg"`
	Field string `json:"field"`
}

// Validator evaluates the task field rules.
type Validator struct {
	validate *validator.Validate
}

// New returns a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()
	// required accepts all-whitespace titles; notblank does not.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &Validator{validate: v}
}

// CreateTask checks a create command against its declared rules:
// title required and at most 255 characters, description optional and
// at most 1000 characters.
func (v *Validator) CreateTask(cmd commands.CreateTaskCommand) []Violation {
	err := v.validate.Struct(cmd)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []Violation{{Msg: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, violationFor(fe.Field(), fe.Tag()))
	}
	return violations
}

// UpdateTask checks a patch command. Every field is optional; rules apply
// only to fields present in the request, evaluated in declaration order.
func (v *Validator) UpdateTask(cmd commands.UpdateTaskCommand) []Violation {
	var violations []Violation
	if cmd.Title != nil {
		if vi, ok := v.field("Title", *cmd.Title, "notblank,max=255"); !ok {
			violations = append(violations, vi)
		}
	}
	if cmd.Description != nil {
		if vi, ok := v.field("Description", *cmd.Description, "max=1000"); !ok {
			violations = append(violations, vi)
		}
	}
	return violations
}

// field evaluates a single value against a chained rule set and reports the
// first failing rule, if any.
func (v *Validator) field(name, value, rules string) (Violation, bool) {
	err := v.validate.Var(value, rules)
	if err == nil {
		return Violation{}, true
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return violationFor(name, fieldErrs[0].Tag()), false
	}
	return Violation{Msg: err.Error(), Field: strings.ToLower(name)}, false
}

// FromDecodeError converts a JSON type mismatch on a declared field into a
// violation, so a non-boolean "completed" value surfaces as a validation
// failure rather than a generic bad-request. Other decode errors are not
// validation failures and return false.
func FromDecodeError(err error) ([]Violation, bool) {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil, false
	}
	switch typeErr.Field {
	case "completed":
		return []Violation{{Msg: MsgCompletedBoolean, Field: "completed"}}, true
	case "title":
		return []Violation{{Msg: MsgTitleRequired, Field: "title"}}, true
	default:
		return nil, false
	}
}

func violationFor(field, tag string) Violation {
	name := strings.ToLower(field)
	switch field {
	case "Title":
		if tag == "max" {
			return Violation{Msg: MsgTitleTooLong, Field: name}
		}
		return Violation{Msg: MsgTitleRequired, Field: name}
	case "Description":
		return Violation{Msg: MsgDescriptionTooLong, Field: name}
	}
	return Violation{Msg: "El campo " + name + " no es válido", Field: name}
}
