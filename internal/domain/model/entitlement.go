package model

import "time"

// PaymentMethodRazorpay identifies the gateway in entitlement records.
const PaymentMethodRazorpay = "razorpay"

// Entitlement is the per-subject paid-access record. A repeated successful
// verification overwrites PaidAt and the payment info unconditionally (last
// write wins); no payment history is kept on this record.
type Entitlement struct {
	Subject       string
	Paid          bool
	PaidAt        time.Time
	Plan          string
	PlanAmount    int64
	PaymentMethod string
	OrderID       string
	PaymentID     string
}
