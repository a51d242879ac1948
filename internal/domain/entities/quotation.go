package entities

import "time"

// QuotationStatus represents the approval lifecycle of a quotation.
//
// Domain notes:
//   - All three states are mutually reachable; approve/reject availability is
//     keyed to "is this already the target status", not to a one-way funnel.
//   - Transitions are validated by the status workflow, never by storage.

type QuotationStatus string

const (
	QuotationStatusPending  QuotationStatus = "Pending"
	QuotationStatusApproved QuotationStatus = "Approved"
	QuotationStatusRejected QuotationStatus = "Rejected"
)

// IsValid reports whether s is one of the three known statuses.
func (s QuotationStatus) IsValid() bool {
	switch s {
	case QuotationStatusPending, QuotationStatusApproved, QuotationStatusRejected:
		return true
	}
	return false
}

// LineItem is a priced row of a quotation. Amount is the computed
// qty x rate value carried on the record.
type LineItem struct {
	Sr     int     `json:"sr"`
	Item   string  `json:"item"`
	SKU    string  `json:"sku"`
	Qty    float64 `json:"qty"`
	Unit   string  `json:"unit"`
	Rate   float64 `json:"rate"`
	Amount float64 `json:"amount"`
}

// StatusHistoryEntry is one append-only audit record of a status change.
//
// Invariant: entries are ordered by ChangedAt ascending and the last entry's
// Status equals the owning quotation's current Status.
type StatusHistoryEntry struct {
	Status    QuotationStatus `json:"status"`
	ChangedBy string          `json:"changedBy"`
	ChangedAt time.Time       `json:"changedAt"`
	Reason    string          `json:"reason,omitempty"`
}

// Quotation is the canonical record persisted by the quotation repository.
//
// Storage model (DynamoDB):
//   - PK: id
//   - Comments, replies and status history are embedded in the document;
//     the quotation is the single aggregate written as a whole.
type Quotation struct {
	ID              string               `json:"id"`
	Client          string               `json:"client"`
	Amount          float64              `json:"amount"`
	Status          QuotationStatus      `json:"status"`
	LastUpdated     time.Time            `json:"last_updated"`
	Description     string               `json:"description,omitempty"`
	LineItems       []LineItem           `json:"lineItems,omitempty"`
	Subtotal        float64              `json:"subtotal,omitempty"`
	GST             float64              `json:"gst,omitempty"`
	Freight         float64              `json:"freight,omitempty"`
	RejectionReason string               `json:"rejectionReason,omitempty"`
	StatusHistory   []StatusHistoryEntry `json:"statusHistory,omitempty"`
	Comments        []Comment            `json:"comments"`
}
