package domain

import "time"

type PayoutStatus string

const (
	PayoutStatusCreated   PayoutStatus = "CREATED"
	PayoutStatusActive    PayoutStatus = "ACTIVE"
	PayoutStatusChecking  PayoutStatus = "CHECKING"
	PayoutStatusCompleted PayoutStatus = "COMPLETED"
	PayoutStatusCancelled PayoutStatus = "CANCELLED"
	PayoutStatusDisputed  PayoutStatus = "DISPUTED"
	PayoutStatusExpired   PayoutStatus = "EXPIRED"
)

// IsTerminal - из терминального статуса переходов нет
func (s PayoutStatus) IsTerminal() bool {
	return s == PayoutStatusCompleted || s == PayoutStatusCancelled || s == PayoutStatusExpired
}

type PayoutDirection string

const (
	DirectionIn  PayoutDirection = "IN"
	DirectionOut PayoutDirection = "OUT"
)

type Payout struct {
	ID        string
	NumericID int64

	MerchantID string
	TraderID   string // пустая строка = выплата в пуле

	// Money. Amount - сумма в рублях, источник истины.
	Amount            float64
	AmountUsdt        float64
	Total             float64
	TotalUsdt         float64
	Rate              float64
	MerchantRate      float64
	RateDelta         float64
	FeePercent        float64
	SumToWriteOffUsdt float64 // авторитетная сумма списания, 0 пока трейдер не привязан

	Direction PayoutDirection

	Wallet string
	Bank   string
	IsCard bool

	ExternalReference  string
	MerchantWebhookURL string
	MerchantMetadata   string

	Status         PayoutStatus
	ProcessingTime int // minutes
	ExpireAt       time.Time
	AcceptedAt     *time.Time
	ConfirmedAt    *time.Time
	CancelledAt    *time.Time

	CancelReason     string
	CancelReasonCode string
	DisputeMessage   string
	DisputeFiles     []string
	ProofFiles       []string

	// Трейдеры, которые уже держали выплату и отказались
	PreviousTraderIDs []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SettlementUsdt - сумма USDT, зачисляемая трейдеру при завершении
func (p *Payout) SettlementUsdt() float64 {
	if p.SumToWriteOffUsdt > 0 {
		return p.SumToWriteOffUsdt
	}
	return p.TotalUsdt
}

type PayoutFilters struct {
	Statuses  []PayoutStatus
	Direction PayoutDirection
	Search    string
	DateFrom  time.Time
	DateTo    time.Time
	Limit     int
	Offset    int
}
