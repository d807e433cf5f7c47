package domain

import "context"

type PayoutRepository interface {
	CreatePayout(payout *Payout) error
	GetPayoutByID(payoutID string) (*Payout, error)
	GetTraderPayouts(traderID string, filters PayoutFilters) ([]*Payout, int64, error)
	GetMerchantPayouts(merchantID string, filters PayoutFilters) ([]*Payout, int64, error)
	FindExpiredPayouts() ([]*Payout, error)
	GetRateAudits(payoutID string, limit int) ([]*PayoutRateAudit, error)
}

type TraderRepository interface {
	GetTraderByID(traderID string) (*Trader, error)
	// EligibleTraders - не забанен, трафик включён, balanceRub >= amount,
	// id не входит в exclude. FIFO по дате регистрации.
	EligibleTraders(amount float64, exclude []string) ([]*Trader, error)
	CountEligibleTraders(amount float64) (int64, error)
}

type MerchantRepository interface {
	GetMerchantByID(merchantID string) (*Merchant, error)
}

// Store - единица работы. Все переходы статусов и связанные с ними
// балансовые мутации выполняются внутри одной транзакции InPayoutTx:
// строка выплаты читается с блокировкой FOR UPDATE, частичное применение
// (баланс сдвинут, статус нет) невозможно структурно.
type Store interface {
	InPayoutTx(ctx context.Context, payoutID string, fn func(tx TxStore) error) error
}

// TxStore - операции, доступные внутри транзакции. Freeze/Unfreeze/Settle -
// единственный способ менять балансовые поля трейдера.
type TxStore interface {
	Payout() *Payout
	SavePayout(payout *Payout) error

	Trader(traderID string) (*Trader, error)
	CountActivePayouts(traderID string) (int64, error)

	Freeze(traderID string, amountRub float64) error
	Unfreeze(traderID string, amountRub float64) error
	Settle(traderID string, amountRub, creditUsdt, profitUsdt float64) error

	AddCancellation(c *PayoutCancellation) error
	UpsertBlacklist(payoutID, traderID string) error
	AddRateAudit(a *PayoutRateAudit) error
}
