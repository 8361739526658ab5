package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

// MockRoundTripper allows us to mock the HTTP response
type MockRoundTripper func(req *http.Request) *http.Response

func (f MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

type MockRoundTripperWithError func(req *http.Request) (*http.Response, error)

func (f MockRoundTripperWithError) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestRazorpayGateway_CreateOrder(t *testing.T) {
	keyID := "rzp_test_key"
	keySecret := "rzp_test_secret"
	gw := NewRazorpayGateway(keyID, keySecret, "").(*razorpayGateway)

	order := OrderRequest{
		AmountMinor: 500,
		Currency:    "INR",
		Receipt:     "order_1700000000000_ab12cd34",
		Notes:       map[string]string{"productId": "prod_2", "userId": "user_123"},
	}

	t.Run("Success", func(t *testing.T) {
		respBody := `{
			"id": "order_abc",
			"entity": "order",
			"amount": 500,
			"currency": "INR",
			"receipt": "order_1700000000000_ab12cd34",
			"status": "created"
		}`

		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "POST", req.Method)
			assert.Equal(t, "https://api.razorpay.com/v1/orders", req.URL.String())

			// Verify Auth
			user, pass, ok := req.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, keyID, user)
			assert.Equal(t, keySecret, pass)

			// Verify the amount crosses the wire exactly as computed
			var sent razorpayOrderRequest
			body, _ := io.ReadAll(req.Body)
			assert.NoError(t, json.Unmarshal(body, &sent))
			assert.Equal(t, int64(500), sent.Amount)
			assert.Equal(t, "INR", sent.Currency)
			assert.Equal(t, order.Receipt, sent.Receipt)
			assert.Equal(t, "user_123", sent.Notes["userId"])

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(respBody)),
				Header:     make(http.Header),
			}
		})

		rec, err := gw.CreateOrder(context.Background(), order)
		assert.NoError(t, err)
		assert.NotNil(t, rec)
		assert.Equal(t, "order_abc", rec.OrderID)
		assert.Equal(t, int64(500), rec.AmountMinor)
		assert.Equal(t, "INR", rec.Currency)
	})

	t.Run("Success_StatusCreated", func(t *testing.T) {
		respBody := `{"id": "order_def", "amount": 500, "currency": "INR"}`

		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusCreated,
				Body:       io.NopCloser(bytes.NewBufferString(respBody)),
				Header:     make(http.Header),
			}
		})

		rec, err := gw.CreateOrder(context.Background(), order)
		assert.NoError(t, err)
		assert.Equal(t, "order_def", rec.OrderID)
	})

	t.Run("APIError", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusUnauthorized,
				Body:       io.NopCloser(bytes.NewBufferString(`{"error": {"code": "BAD_REQUEST_ERROR"}}`)),
				Header:     make(http.Header),
			}
		})

		_, err := gw.CreateOrder(context.Background(), order)
		assert.Error(t, err)

		var gwErr *GatewayError
		assert.ErrorAs(t, err, &gwErr)
		assert.Contains(t, err.Error(), "status 401")
	})

	t.Run("NetworkError", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripperWithError(func(req *http.Request) (*http.Response, error) {
			return nil, errors.New("connection refused")
		})

		_, err := gw.CreateOrder(context.Background(), order)
		assert.Error(t, err)

		var gwErr *GatewayError
		assert.ErrorAs(t, err, &gwErr)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("InvalidJSONResponse", func(t *testing.T) {
		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{invalid-json`)),
				Header:     make(http.Header),
			}
		})

		_, err := gw.CreateOrder(context.Background(), order)
		assert.Error(t, err)
	})

	t.Run("MissingOrderID", func(t *testing.T) {
		// A 200 with no id is a gateway failure, not a partial success.
		gw.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"amount": 500, "currency": "INR"}`)),
				Header:     make(http.Header),
			}
		})

		_, err := gw.CreateOrder(context.Background(), order)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing order id")
	})

	t.Run("CustomBaseURL", func(t *testing.T) {
		custom := NewRazorpayGateway(keyID, keySecret, "http://127.0.0.1:9999").(*razorpayGateway)
		custom.httpClient.Transport = MockRoundTripper(func(req *http.Request) *http.Response {
			assert.Equal(t, "http://127.0.0.1:9999/v1/orders", req.URL.String())
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString(`{"id": "order_x", "amount": 500, "currency": "INR"}`)),
				Header:     make(http.Header),
			}
		})

		rec, err := custom.CreateOrder(context.Background(), order)
		assert.NoError(t, err)
		assert.Equal(t, "order_x", rec.OrderID)
	})
}

func TestNewRazorpayGateway(t *testing.T) {
	t.Run("EmptyCredentials", func(t *testing.T) {
		gw := NewRazorpayGateway("", "", "")
		assert.NotNil(t, gw)
	})
}
