package request

// OpenRegisterRequest is the payload for a manual register open.
// Amounts arrive as decimal strings to avoid float rounding on the wire.
type OpenRegisterRequest struct {
	OpeningBalance string `json:"opening_balance"`
	ExchangeRate   string `json:"exchange_rate"`
}
