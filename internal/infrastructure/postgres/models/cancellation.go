package models

import (
	"time"

	"github.com/lib/pq"
)

type PayoutCancellationModel struct {
	ID         string `gorm:"primaryKey"`
	PayoutID   string `gorm:"type:uuid;index;not null"`
	TraderID   string `gorm:"type:uuid;index;not null"`
	Reason     string
	ReasonCode string
	Files      pq.StringArray `gorm:"type:text[]"`
	CreatedAt  time.Time
}

func (PayoutCancellationModel) TableName() string {
	return "payout_cancellations"
}

type PayoutBlacklistModel struct {
	PayoutID  string `gorm:"primaryKey;type:uuid"`
	TraderID  string `gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time
}

func (PayoutBlacklistModel) TableName() string {
	return "payout_blacklist"
}

type PayoutRateAuditModel struct {
	ID            uint   `gorm:"primaryKey"`
	PayoutID      string `gorm:"type:uuid;index;not null"`
	AdminID       string `gorm:"type:uuid;not null"`
	OldRateDelta  float64
	NewRateDelta  float64
	OldFeePercent float64
	NewFeePercent float64
	Timestamp     time.Time `gorm:"autoCreateTime"`
}

func (PayoutRateAuditModel) TableName() string {
	return "payout_rate_audits"
}
