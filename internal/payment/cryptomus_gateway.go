package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"nova-ecart-be/internal/logger"

	"go.uber.org/zap"
)

const (
	// paymentLifetime is how long a created invoice stays payable.
	paymentLifetime = 7200 // seconds

	gatewayTimeout = 10 * time.Second
)

// Gateway creates payment invoices with the external processor.
type Gateway interface {
	CreatePayment(ctx context.Context, productID string, amount float64, currency string) (*PaymentResponse, error)
}

type GatewayConfig struct {
	BaseURL    string
	MerchantID string
	APIKey     string
	SiteURL    string
	APIURL     string
}

type cryptomusGateway struct {
	baseURL    string
	merchantID string
	apiKey     string
	siteURL    string
	apiURL     string
	httpClient *http.Client
}

func NewCryptomusGateway(cfg GatewayConfig) Gateway {
	if cfg.APIKey == "" {
		logger.L().Warn("Cryptomus API key is empty")
	}

	return &cryptomusGateway{
		baseURL:    cfg.BaseURL,
		merchantID: cfg.MerchantID,
		apiKey:     cfg.APIKey,
		siteURL:    cfg.SiteURL,
		apiURL:     cfg.APIURL,
		httpClient: &http.Client{
			Timeout: gatewayTimeout,
		},
	}
}

// NewOrderID synthesizes the order identifier for a payment attempt.
func NewOrderID(productID string, t time.Time) string {
	return fmt.Sprintf("order_%s_%d", productID, t.Unix())
}

func (c *cryptomusGateway) CreatePayment(ctx context.Context, productID string, amount float64, currency string) (*PaymentResponse, error) {
	orderID := NewOrderID(productID, time.Now())

	log := logger.FromCtx(ctx).With(
		zap.String("order_id", orderID),
		zap.String("product_id", productID),
		zap.Float64("amount", amount),
		zap.String("currency", currency),
	)

	body := createRequest{
		Amount:            strconv.FormatFloat(amount, 'f', -1, 64),
		Currency:          currency,
		OrderID:           orderID,
		URLReturn:         c.siteURL + "/store?payment=success",
		URLCallback:       c.apiURL + "/api/cryptomus/callback",
		IsPaymentMultiple: false,
		Lifetime:          paymentLifetime,
		ToCurrency:        currency,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal payment request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/payment", bytes.NewBuffer(payload))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("merchant", c.merchantID)
	req.Header.Set("sign", Sign(payload, c.apiKey))

	log.Info("Sending payment request to Cryptomus")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("Cryptomus request failed", zap.Error(err))
		return nil, &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, &GatewayError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		log.Error("Cryptomus returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var res struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Cryptomus response", zap.Error(err))
		return nil, &GatewayError{Err: err}
	}

	log.Info("Cryptomus payment created", zap.String("payment_url", res.URL))

	return &PaymentResponse{
		PaymentURL: res.URL,
		OrderID:    orderID,
		Status:     "pending",
	}, nil
}
