package order

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
	StatusExpired Status = "expired"
)

// Terminal reports whether s is a final state. Orders never leave a
// terminal state.
func (s Status) Terminal() bool {
	switch s {
	case StatusPaid, StatusFailed, StatusExpired:
		return true
	}
	return false
}

// Order tracks a single payment attempt. The ID is synthesized at
// payment-creation time as order_<product_id>_<unix_seconds>.
type Order struct {
	ID        string
	UserID    string
	ProductID string
	Amount    float64
	Currency  string
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}
