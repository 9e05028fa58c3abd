package model

// OrderRequest is the client payload for creating a gateway order.
// Amount is in the smallest currency unit (paise for INR).
type OrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Plan     string `json:"plan"`
	InviteID string `json:"inviteId"`
}

// VerificationRequest mirrors the gateway's checkout callback convention; the
// razorpay_* field names must match the wire format exactly.
type VerificationRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	Plan      string `json:"plan"`
	Amount    int64  `json:"amount"`
	InviteID  string `json:"inviteId"`
}
