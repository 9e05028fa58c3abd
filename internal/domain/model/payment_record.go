package model

import "time"

// PaymentRecord is one append-only audit row per successful verification.
// The entitlement document itself is last-write-wins, so this log is the only
// place older payments remain visible.
type PaymentRecord struct {
	ID        string
	Subject   string
	OrderID   string
	PaymentID string
	Plan      string
	Amount    int64
	CreatedAt time.Time
}
