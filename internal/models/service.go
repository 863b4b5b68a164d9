package models

import "time"

// Service represents one row of the services sheet. AddressText is a
// denormalized copy of the address at scheduling time, not a live
// reference to the addresses sheet.
type Service struct {
	ClientID    string `json:"client_id"`
	AddressText string `json:"address"`
	ServiceType string `json:"service_type"`
	Notes       string `json:"notes"`
	ScheduledAt string `json:"scheduled_at"` // stored wire format
	RowID       string `json:"row_id"`
}

// Services sheet column layout (1-based, row_id last).
const (
	ServiceColClientID = iota + 1
	ServiceColAddressText
	ServiceColServiceType
	ServiceColNotes
	ServiceColScheduledAt
	ServiceColRowID
)

// ScheduledAtHeader is the header of the timestamp column in the
// services sheet.
const ScheduledAtHeader = "Fecha_Hora"

// Timestamp layouts for Service.ScheduledAt. Forms submit the input
// layout, the sheet stores the wire layout, views render the display
// layout.
const (
	ScheduleInputLayout   = "2006-01-02 15:04"
	ScheduleWireLayout    = "2006-01-02T15:04:05.000000Z"
	ScheduleDisplayLayout = "02-01-2006 15:04"
)

// ParseScheduleInput parses a form-submitted schedule timestamp
func ParseScheduleInput(value string) (time.Time, error) {
	return time.Parse(ScheduleInputLayout, value)
}

// FormatScheduleWire renders a timestamp in the stored wire format
func FormatScheduleWire(t time.Time) string {
	return t.UTC().Format(ScheduleWireLayout)
}

// FormatScheduleDisplay converts a stored timestamp to the display
// format. Values that do not parse are returned unchanged, so a sheet
// edited by hand still renders something.
func FormatScheduleDisplay(stored string) string {
	if stored == "" {
		return ""
	}
	t, err := time.Parse(ScheduleWireLayout, stored)
	if err != nil {
		return stored
	}
	return t.Format(ScheduleDisplayLayout)
}

// ServiceUpdate holds the editable service fields. The client id,
// schedule and row id are never touched by an edit.
type ServiceUpdate struct {
	AddressText string
	ServiceType string
	Notes       string
}
