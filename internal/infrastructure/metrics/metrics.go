package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PayoutMetrics содержит все метрики по выплатам
type PayoutMetrics struct {
	// Счетчики создаваемых выплат
	PayoutsCreatedTotal       prometheus.CounterVec
	PayoutsCreatedAmountTotal prometheus.CounterVec

	// Успешно завершенные выплаты (COMPLETED)
	PayoutsCompletedTotal       prometheus.CounterVec
	PayoutsCompletedAmountTotal prometheus.CounterVec

	// Отмененные выплаты (CANCELLED)
	PayoutsCancelledTotal prometheus.CounterVec

	// Возвраты в пул и протухшие
	PayoutsReturnedToPoolTotal prometheus.CounterVec
	PayoutsExpiredTotal        prometheus.Counter

	// Метрики по статусам
	PayoutStatusGauge prometheus.GaugeVec

	// Время от accept до завершения
	PayoutProcessingDuration prometheus.HistogramVec

	// Ошибки
	PayoutErrorsTotal prometheus.CounterVec
}

// NewPayoutMetrics создает новый экземпляр метрик
func NewPayoutMetrics() *PayoutMetrics {
	return &PayoutMetrics{
		PayoutsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_created_total",
				Help: "Общее количество созданных выплат",
			},
			[]string{"merchant_id", "direction"},
		),

		PayoutsCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_created_amount_total",
				Help: "Общая сумма созданных выплат в рублях",
			},
			[]string{"merchant_id"},
		),

		PayoutsCompletedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_completed_total",
				Help: "Общее количество завершенных выплат",
			},
			[]string{"merchant_id", "trader_id"},
		),

		PayoutsCompletedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_completed_amount_total",
				Help: "Общая сумма завершенных выплат в рублях",
			},
			[]string{"merchant_id"},
		),

		PayoutsCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_cancelled_total",
				Help: "Общее количество отмененных выплат",
			},
			[]string{"merchant_id", "by"},
		),

		PayoutsReturnedToPoolTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payouts_returned_to_pool_total",
				Help: "Выплаты, возвращенные трейдерами в пул",
			},
			[]string{"reason_code"},
		),

		PayoutsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payouts_expired_total",
				Help: "Выплаты, протухшие без акцепта",
			},
		),

		PayoutStatusGauge: *promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "payouts_by_status",
				Help: "Текущее количество выплат по статусам",
			},
			[]string{"status"},
		),

		PayoutProcessingDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "payout_processing_duration_seconds",
				Help:    "Время от акцепта до завершения выплаты",
				Buckets: prometheus.ExponentialBuckets(30, 2, 10),
			},
			[]string{"merchant_id"},
		),

		PayoutErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payout_errors_total",
				Help: "Ошибки операций над выплатами",
			},
			[]string{"operation"},
		),
	}
}
