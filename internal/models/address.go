package models

// Address represents one row of the addresses sheet
type Address struct {
	ClientID string `json:"client_id"`
	Text     string `json:"address"`
	RowID    string `json:"row_id"`
}

// Addresses sheet column layout (1-based). Unlike the clients sheet,
// the row id column comes last.
const (
	AddressColClientID = iota + 1
	AddressColText
	AddressColRowID
)

// AddressRowIDHeader is the header of the row id column in the addresses
// sheet. Address detail lookups scan this column instead of using the
// store's direct search, matching the sheet as it exists in production.
const AddressRowIDHeader = "🔒 Row ID"

// ChildClientIDKey is the header under which child sheets store the
// owning client's row id.
const ChildClientIDKey = "ID_Cliente"
