package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/taskdeck/internal/api/shared"
)

// validate is the package-level validator instance. Field names in
// violations use the JSON tag names so clients see wire names, not Go names.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateCreateTask checks a create request against the create rule set
// and returns every violation. The request should be normalized first.
// This function is pure: it never touches the store.
func ValidateCreateTask(req *CreateTaskRequest) []shared.FieldError {
	violations := collectViolations(validate.Struct(req))

	// The struct tags cannot express "must parse as an ISO-8601 date",
	// so check it explicitly once presence has passed.
	if req.DueDate != "" {
		if _, err := ParseDueDate(req.DueDate); err != nil {
			violations = append(violations, shared.FieldError{
				Field:   "dueDate",
				Message: "Due date must be a valid date",
			})
		}
	}

	return violations
}

// ValidateUpdateTask checks an update request against the update rule set:
// every field is optional, but a supplied field must still satisfy its
// create-time constraint. Returns every violation.
//
// Supplied-but-empty fields need explicit checks: the omitempty tag skips
// the remaining rules once it sees an empty dereferenced value, which would
// silently accept an empty title or priority.
func ValidateUpdateTask(req *UpdateTaskRequest) []shared.FieldError {
	violations := collectViolations(validate.Struct(req))

	if req.Title != nil && *req.Title == "" {
		violations = append(violations, shared.FieldError{
			Field:   "title",
			Message: "Title cannot be empty",
		})
	}
	if req.Priority != nil && *req.Priority == "" {
		violations = append(violations, shared.FieldError{
			Field:   "priority",
			Message: "Priority must be Low, Medium, or High",
		})
	}
	if req.Status != nil && *req.Status == "" {
		violations = append(violations, shared.FieldError{
			Field:   "status",
			Message: "Status must be Pending or Completed",
		})
	}
	if req.DueDate != nil {
		if _, err := ParseDueDate(*req.DueDate); err != nil {
			violations = append(violations, shared.FieldError{
				Field:   "dueDate",
				Message: "Due date must be a valid date",
			})
		}
	}

	return violations
}

// collectViolations converts validator errors into the wire's
// {field, message} shape, preserving struct field order.
func collectViolations(err error) []shared.FieldError {
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []shared.FieldError{{Field: "", Message: "Invalid request"}}
	}

	violations := make([]shared.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		violations = append(violations, shared.FieldError{
			Field:   fe.Field(),
			Message: violationMessage(fe.Field(), fe.Tag()),
		})
	}
	return violations
}

// violationMessage maps a field and validation tag to the user-facing
// message for that rule.
func violationMessage(field, tag string) string {
	switch field {
	case "title":
		switch tag {
		case "required":
			return "Title is required"
		case "max":
			return "Title cannot exceed 100 characters"
		}
	case "description":
		if tag == "max" {
			return "Description cannot exceed 500 characters"
		}
	case "priority":
		if tag == "oneof" {
			return "Priority must be Low, Medium, or High"
		}
	case "dueDate":
		if tag == "required" {
			return "Due date is required"
		}
	case "status":
		if tag == "oneof" {
			return "Status must be Pending or Completed"
		}
	}
	return "Invalid " + field
}
