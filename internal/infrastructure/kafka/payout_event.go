package publisher

// PayoutEvent - live-обновление по выплате, ключ сообщения = payout_id
type PayoutEvent struct {
	PayoutID   string  `json:"payout_id"`
	NumericID  int64   `json:"numeric_id"`
	MerchantID string  `json:"merchant_id"`
	TraderID   string  `json:"trader_id,omitempty"`
	Event      string  `json:"event"`
	Status     string  `json:"status"`
	Amount     float64 `json:"amount"`
	AmountUsdt float64 `json:"amount_usdt"`
	Bank       string  `json:"bank"`
	Wallet     string  `json:"wallet"`
}

type RateAdjustmentEvent struct {
	PayoutID      string  `json:"payout_id"`
	AdminID       string  `json:"admin_id"`
	OldRateDelta  float64 `json:"old_rate_delta"`
	NewRateDelta  float64 `json:"new_rate_delta"`
	OldFeePercent float64 `json:"old_fee_percent"`
	NewFeePercent float64 `json:"new_fee_percent"`
}
