package domain

import "time"

// PayoutCancellation - append-only история отказов трейдеров
type PayoutCancellation struct {
	ID         string
	PayoutID   string
	TraderID   string
	Reason     string
	ReasonCode string
	Files      []string
	CreatedAt  time.Time
}

// PayoutBlacklist - пара (выплата, трейдер): трейдеру выплата больше не предлагается
type PayoutBlacklist struct {
	PayoutID  string
	TraderID  string
	CreatedAt time.Time
}

// PayoutRateAudit - снапшот корректировки курса админом, write-once
type PayoutRateAudit struct {
	ID            uint
	PayoutID      string
	AdminID       string
	OldRateDelta  float64
	NewRateDelta  float64
	OldFeePercent float64
	NewFeePercent float64
	Timestamp     time.Time
}
