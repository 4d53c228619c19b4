package seller

import "time"

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusApproved VerificationStatus = "approved"
	StatusRejected VerificationStatus = "rejected"
)

type Seller struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Mobile             string             `json:"mobile"`
	HomeAddress        string             `json:"home_address"`
	PickupAddress      string             `json:"pickup_address"`
	BusinessName       string             `json:"business_name"`
	PANCard            string             `json:"pan_card"`
	BankAccountNumber  string             `json:"bank_account_number"`
	IFSCCode           string             `json:"ifsc_code"`
	GSTIN              string             `json:"gstin,omitempty"`
	PhotoURL           string             `json:"photo_url,omitempty"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	VerificationNotes  string             `json:"verification_notes,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type SellerCreate struct {
	UserID            string `json:"user_id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Mobile            string `json:"mobile"`
	HomeAddress       string `json:"home_address"`
	PickupAddress     string `json:"pickup_address"`
	BusinessName      string `json:"business_name"`
	PANCard           string `json:"pan_card"`
	BankAccountNumber string `json:"bank_account_number"`
	IFSCCode          string `json:"ifsc_code"`
	GSTIN             string `json:"gstin,omitempty"`
	PhotoURL          string `json:"photo_url,omitempty"`
}

// SellerUpdate carries a partial profile update; only non-nil fields apply.
type SellerUpdate struct {
	Name              *string `json:"name"`
	Mobile            *string `json:"mobile"`
	HomeAddress       *string `json:"home_address"`
	PickupAddress     *string `json:"pickup_address"`
	BusinessName      *string `json:"business_name"`
	PANCard           *string `json:"pan_card"`
	BankAccountNumber *string `json:"bank_account_number"`
	IFSCCode          *string `json:"ifsc_code"`
	GSTIN             *string `json:"gstin"`
	PhotoURL          *string `json:"photo_url"`
}
