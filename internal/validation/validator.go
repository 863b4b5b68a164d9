package validation

import (
	"fmt"

	"github.com/client-service-manager/internal/models"
	"github.com/google/uuid"
)

// FieldError represents a single validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error implements the error interface for a field error list
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("%s: %s", e[0].Field, e[0].Message)
}

// Required checks that each named field has a non-empty value in the
// submitted form values
func Required(values map[string]string, fields ...string) Errors {
	var errs Errors
	for _, f := range fields {
		if values[f] == "" {
			errs = append(errs, FieldError{Field: f, Message: fmt.Sprintf("%s is required", f)})
		}
	}
	return errs
}

// ValidateClientForm validates a client create/edit form
func ValidateClientForm(values map[string]string) Errors {
	return Required(values, "nombre", "telefono")
}

// ValidateAddressForm validates an address create/edit form
func ValidateAddressForm(values map[string]string) Errors {
	return Required(values, "direccion")
}

// ValidateServiceForm validates a service create form, including the
// schedule timestamp format. Notes are optional.
func ValidateServiceForm(values map[string]string) Errors {
	errs := Required(values, "direccion", "servicio", "fecha_hora")
	if len(errs) > 0 {
		return errs
	}

	if _, err := models.ParseScheduleInput(values["fecha_hora"]); err != nil {
		errs = append(errs, FieldError{
			Field:   "fecha_hora",
			Message: fmt.Sprintf("must match %s", models.ScheduleInputLayout),
		})
	}
	return errs
}

// ValidateServiceEditForm validates a service edit form. The schedule
// is not editable, so only the text fields are checked.
func ValidateServiceEditForm(values map[string]string) Errors {
	return Required(values, "direccion", "servicio")
}

// IsValidUUID checks if a string is a valid UUID
func IsValidUUID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
