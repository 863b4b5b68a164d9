package validation_test

import (
	"testing"

	"github.com/client-service-manager/internal/models"
	"github.com/client-service-manager/internal/validation"
)

func TestValidateClientForm(t *testing.T) {
	tests := []struct {
		name       string
		values     map[string]string
		wantErrors int
	}{
		{
			name:       "valid",
			values:     map[string]string{"nombre": "Ana", "telefono": "555-1111"},
			wantErrors: 0,
		},
		{
			name:       "missing name",
			values:     map[string]string{"telefono": "555-1111"},
			wantErrors: 1,
		},
		{
			name:       "missing both",
			values:     map[string]string{},
			wantErrors: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validation.ValidateClientForm(tt.values)
			if len(errs) != tt.wantErrors {
				t.Errorf("Expected %d errors, got %d: %v", tt.wantErrors, len(errs), errs)
			}
		})
	}
}

func TestValidateServiceForm(t *testing.T) {
	valid := map[string]string{
		"direccion":  "Calle 1",
		"servicio":   "Limpieza",
		"fecha_hora": "2024-05-01 14:30",
	}
	if errs := validation.ValidateServiceForm(valid); len(errs) != 0 {
		t.Errorf("Expected valid form, got %v", errs)
	}

	// Notes are optional
	withNotes := map[string]string{
		"direccion":  "Calle 1",
		"servicio":   "Limpieza",
		"notas":      "traer escalera",
		"fecha_hora": "2024-05-01 14:30",
	}
	if errs := validation.ValidateServiceForm(withNotes); len(errs) != 0 {
		t.Errorf("Expected valid form with notes, got %v", errs)
	}

	badTime := map[string]string{
		"direccion":  "Calle 1",
		"servicio":   "Limpieza",
		"fecha_hora": "01/05/2024 2pm",
	}
	errs := validation.ValidateServiceForm(badTime)
	if len(errs) != 1 || errs[0].Field != "fecha_hora" {
		t.Errorf("Expected fecha_hora error, got %v", errs)
	}
}

func TestScheduleRoundTrip(t *testing.T) {
	parsed, err := models.ParseScheduleInput("2024-05-01 14:30")
	if err != nil {
		t.Fatalf("ParseScheduleInput failed: %v", err)
	}

	wire := models.FormatScheduleWire(parsed)
	if wire != "2024-05-01T14:30:00.000000Z" {
		t.Errorf("Expected wire format with microseconds and Z, got %q", wire)
	}

	display := models.FormatScheduleDisplay(wire)
	if display != "01-05-2024 14:30" {
		t.Errorf("Expected display format DD-MM-YYYY HH:MM, got %q", display)
	}
}

func TestFormatScheduleDisplay_Unparseable(t *testing.T) {
	// Hand-edited sheet values render as-is
	if got := models.FormatScheduleDisplay("mañana temprano"); got != "mañana temprano" {
		t.Errorf("Expected pass-through, got %q", got)
	}
	if got := models.FormatScheduleDisplay(""); got != "" {
		t.Errorf("Expected empty pass-through, got %q", got)
	}
}

func TestIsValidUUID(t *testing.T) {
	if !validation.IsValidUUID("a8098c1a-f86e-11da-bd1a-00112444be1e") {
		t.Error("Expected valid UUID")
	}
	if validation.IsValidUUID("not-a-uuid") {
		t.Error("Expected invalid UUID")
	}
}
