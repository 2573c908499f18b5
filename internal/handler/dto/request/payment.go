package request

// Amount is recorded as given. The ledger accepts any numeric value,
// negative included, so corrections and refund-style entries can be
// written as ordinary settlements.
type RecordPaymentRequest struct {
	Amount float64 `json:"amount"`
	Method string  `json:"method" binding:"required"`
}
