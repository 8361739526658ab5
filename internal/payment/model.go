package payment

// OrderRequest is what we ask the gateway to create. Amounts are in
// the currency's minor unit (paise for INR), never fractional.
type OrderRequest struct {
	AmountMinor int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// OrderRecord is the gateway's answer, immutable once returned. It is
// not persisted; its lifetime ends with the response to the caller.
type OrderRecord struct {
	OrderID     string
	AmountMinor int64
	Currency    string
}

// InitiationResult is handed back to the storefront so it can open the
// hosted checkout. KeyID is the public key identifier; the secret
// never appears here.
type InitiationResult struct {
	OrderID     string
	AmountMinor int64
	Currency    string
	KeyID       string
}
