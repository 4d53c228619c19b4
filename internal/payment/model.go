package payment

// PaymentRequest is the client-facing body for creating a payment.
type PaymentRequest struct {
	ProductID string  `json:"product_id"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
}

// createRequest is the wire body sent to the Cryptomus /payment endpoint.
// Field order matters: the serialized bytes are the signed payload.
type createRequest struct {
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	OrderID           string `json:"order_id"`
	URLReturn         string `json:"url_return"`
	URLCallback       string `json:"url_callback"`
	IsPaymentMultiple bool   `json:"is_payment_multiple"`
	Lifetime          int    `json:"lifetime"`
	ToCurrency        string `json:"to_currency"`
}

type PaymentResponse struct {
	PaymentURL string `json:"payment_url"`
	OrderID    string `json:"order_id"`
	Status     string `json:"status"`
}

// CallbackPayload is the status notification Cryptomus posts back. Only
// order_id and status are required; the rest is informational.
type CallbackPayload struct {
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status"`
	PaymentID string  `json:"payment_id,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
}

type CallbackResult struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Processed bool   `json:"processed"`
}
