package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// VerifySignature checks that signature is the HMAC-SHA256 of
// "orderID|paymentID" keyed by secret, hex-encoded lowercase. The
// comparison is constant-time: this check is the sole authentication
// gate on payment completion. orderID and paymentID are compared
// exactly as supplied, no normalization.
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
