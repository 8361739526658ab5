package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newReceipt generates a per-attempt receipt identifier. The uuid
// suffix keeps two initiations in the same millisecond from colliding
// on the gateway's idempotency key.
func newReceipt() string {
	return fmt.Sprintf("order_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
