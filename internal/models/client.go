package models

// Client represents one row of the clients sheet
type Client struct {
	RowID     string `json:"row_id"`
	Name      string `json:"name"`
	Condition string `json:"condition"`
	Phone     string `json:"phone"`
}

// Clients sheet column layout (1-based, row_id first).
// The header row is the stored contract; each sheet keeps its own order.
const (
	ClientColRowID = iota + 1
	ClientColName
	ClientColCondition
	ClientColPhone
)

// ClientUpdate holds the editable client fields
type ClientUpdate struct {
	Name      string
	Condition string
	Phone     string
}
