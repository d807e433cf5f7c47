package notifier

type PushPayload struct {
	Recipient  string  `json:"recipient"` // trader или merchant id
	Role       string  `json:"role"`      // "trader" | "merchant"
	PayoutID   string  `json:"payout_id"`
	NumericID  int64   `json:"numeric_id"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	Bank       string  `json:"bank"`
	Wallet     string  `json:"wallet"`
}
