package models

import "time"

type TraderModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	NumericID int64  `gorm:"autoIncrement;uniqueIndex"`
	Email     string `gorm:"uniqueIndex"`

	// Две пары сохранения: available/frozen по каждой валюте.
	// Меняются только внутри транзакции соответствующего перехода статуса.
	BalanceRub  float64 `gorm:"default:0"`
	FrozenRub   float64 `gorm:"default:0"`
	BalanceUsdt float64 `gorm:"default:0"`
	FrozenUsdt  float64 `gorm:"default:0"`

	ProfitFromPayouts float64 `gorm:"default:0"`

	Banned                 bool  `gorm:"default:false"`
	TrafficEnabled         bool  `gorm:"default:true"`
	MaxSimultaneousPayouts int64 `gorm:"default:5"`

	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (TraderModel) TableName() string {
	return "traders"
}

type MerchantModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Name          string
	ApiKeyPublic  string
	ApiKeyPrivate string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (MerchantModel) TableName() string {
	return "merchants"
}
