package usecase

import (
	"time"

	"github.com/chasepay/payout-service/internal/domain"
)

func (uc *DefaultPayoutUsecase) recordCreated(payout *domain.Payout) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PayoutsCreatedTotal.WithLabelValues(payout.MerchantID, string(payout.Direction)).Inc()
	uc.Metrics.PayoutsCreatedAmountTotal.WithLabelValues(payout.MerchantID).Add(payout.Amount)
	uc.Metrics.PayoutStatusGauge.WithLabelValues(string(domain.PayoutStatusCreated)).Inc()
}

func (uc *DefaultPayoutUsecase) recordCompleted(payout *domain.Payout) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PayoutsCompletedTotal.WithLabelValues(payout.MerchantID, payout.TraderID).Inc()
	uc.Metrics.PayoutsCompletedAmountTotal.WithLabelValues(payout.MerchantID).Add(payout.Amount)
	if payout.AcceptedAt != nil {
		uc.Metrics.PayoutProcessingDuration.
			WithLabelValues(payout.MerchantID).
			Observe(time.Since(*payout.AcceptedAt).Seconds())
	}
}

func (uc *DefaultPayoutUsecase) recordCancelled(payout *domain.Payout, by string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PayoutsCancelledTotal.WithLabelValues(payout.MerchantID, by).Inc()
}

func (uc *DefaultPayoutUsecase) recordReturnedToPool(reasonCode string) {
	if uc.Metrics == nil {
		return
	}
	if reasonCode == "" {
		reasonCode = "unspecified"
	}
	uc.Metrics.PayoutsReturnedToPoolTotal.WithLabelValues(reasonCode).Inc()
}

func (uc *DefaultPayoutUsecase) recordExpired() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PayoutsExpiredTotal.Inc()
}

func (uc *DefaultPayoutUsecase) recordError(operation string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.PayoutErrorsTotal.WithLabelValues(operation).Inc()
}
