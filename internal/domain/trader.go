package domain

import "time"

// Trader - наш срез пользовательской записи: четыре балансовых поля
// и параметры допуска к трафику
type Trader struct {
	ID        string
	NumericID int64
	Email     string

	BalanceRub  float64
	FrozenRub   float64
	BalanceUsdt float64
	FrozenUsdt  float64

	ProfitFromPayouts float64

	Banned                 bool
	TrafficEnabled         bool
	MaxSimultaneousPayouts int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Merchant struct {
	ID            string
	Name          string
	ApiKeyPublic  string
	ApiKeyPrivate string
	CreatedAt     time.Time
}
