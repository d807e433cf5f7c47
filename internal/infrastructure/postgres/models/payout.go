package models

import (
	"time"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/lib/pq"
)

type PayoutModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	NumericID int64  `gorm:"autoIncrement;uniqueIndex"`

	MerchantID string  `gorm:"type:uuid;index;not null"`
	Merchant   MerchantModel `gorm:"foreignKey:MerchantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	TraderID   *string `gorm:"type:uuid;index"`

	Amount            float64 `gorm:"index:idx_payout_amount"`
	AmountUsdt        float64
	Total             float64
	TotalUsdt         float64
	Rate              float64
	MerchantRate      float64
	RateDelta         float64
	FeePercent        float64
	SumToWriteOffUsdt float64

	Direction string `gorm:"default:OUT"`

	Wallet string
	Bank   string
	IsCard bool

	ExternalReference  string
	MerchantWebhookURL string
	MerchantMetadata   string `gorm:"type:jsonb"`

	Status         domain.PayoutStatus `gorm:"index:idx_payout_status_expires"`
	ProcessingTime int                 `gorm:"default:15"`
	ExpireAt       time.Time           `gorm:"index:idx_payout_status_expires"`
	AcceptedAt     *time.Time
	ConfirmedAt    *time.Time
	CancelledAt    *time.Time

	CancelReason     string
	CancelReasonCode string
	DisputeMessage   string
	DisputeFiles     pq.StringArray `gorm:"type:text[]"`
	ProofFiles       pq.StringArray `gorm:"type:text[]"`

	PreviousTraderIDs pq.StringArray `gorm:"type:text[]"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (PayoutModel) TableName() string {
	return "payouts"
}
