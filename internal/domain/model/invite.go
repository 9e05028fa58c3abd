package model

import "time"

// Invite is an advisory redeemable reference tying a payment to a promotional
// or referral code. Consumption is best-effort: it is not a single-use lock.
type Invite struct {
	ID     string
	Used   bool
	UsedAt time.Time
}
