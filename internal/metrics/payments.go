package metrics

// Payments counts payment attempt outcomes for the lifetime of the
// process. Counters only, no per-order state.
type Payments struct {
	Initiated      Counter
	InitiateFailed Counter
	Verified       Counter
	Rejected       Counter
}

type PaymentsSnapshot struct {
	Initiated      uint64 `json:"initiated"`
	InitiateFailed uint64 `json:"initiate_failed"`
	Verified       uint64 `json:"verified"`
	Rejected       uint64 `json:"rejected"`
}

func (p *Payments) Snapshot() PaymentsSnapshot {
	return PaymentsSnapshot{
		Initiated:      p.Initiated.Load(),
		InitiateFailed: p.InitiateFailed.Load(),
		Verified:       p.Verified.Load(),
		Rejected:       p.Rejected.Load(),
	}
}
