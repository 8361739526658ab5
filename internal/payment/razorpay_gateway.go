package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"storepay-be/internal/logger"

	"go.uber.org/zap"
)

const razorpayBaseURL = "https://api.razorpay.com"

type razorpayGateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
}

// ----------------- Constructor -----------------

// NewRazorpayGateway builds the HTTP client for Razorpay's Orders API.
// baseURL may be empty, in which case the production endpoint is used.
func NewRazorpayGateway(keyID, keySecret, baseURL string) Gateway {
	if keyID == "" || keySecret == "" {
		logger.L().Warn("Razorpay credentials are empty")
	}
	if baseURL == "" {
		baseURL = razorpayBaseURL
	}

	return &razorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// razorpayOrderRequest mirrors the Orders API body.
type razorpayOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes"`
}

// razorpayOrderResponse holds the fields we rely on; anything else in
// the response is ignored. A response missing these is an error, not
// a partial success.
type razorpayOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// ----------------- CreateOrder -----------------

func (g *razorpayGateway) CreateOrder(ctx context.Context, order OrderRequest) (*OrderRecord, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("receipt", order.Receipt),
		zap.Int64("amount", order.AmountMinor),
		zap.String("currency", order.Currency),
	)

	body := razorpayOrderRequest{
		Amount:   order.AmountMinor,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Notes:    order.Notes,
	}
	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error("Failed to marshal order request", zap.Error(err))
		return nil, &GatewayError{Op: "create order", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", g.baseURL+"/v1/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return nil, &GatewayError{Op: "create order", Cause: err}
	}

	req.SetBasicAuth(g.keyID, g.keySecret)
	req.Header.Add("Content-Type", "application/json")

	log.Info("Creating Razorpay order")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("Razorpay request failed", zap.Error(err))
		return nil, &GatewayError{Op: "create order", Cause: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return nil, &GatewayError{Op: "create order", Cause: fmt.Errorf("read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Error("Razorpay returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &GatewayError{Op: "create order", Cause: fmt.Errorf("status %d: %s", resp.StatusCode, string(bodyBytes))}
	}

	var res razorpayOrderResponse
	if err := json.Unmarshal(bodyBytes, &res); err != nil {
		log.Error("Failed decoding Razorpay response", zap.Error(err))
		return nil, &GatewayError{Op: "create order", Cause: err}
	}

	if res.ID == "" {
		log.Error("Razorpay response missing order id", zap.ByteString("response", bodyBytes))
		return nil, &GatewayError{Op: "create order", Cause: errors.New("response missing order id")}
	}

	log.Info("Razorpay order created", zap.String("order_id", res.ID))

	return &OrderRecord{
		OrderID:     res.ID,
		AmountMinor: res.Amount,
		Currency:    res.Currency,
	}, nil
}
