package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/freezing"
	publisher "github.com/chasepay/payout-service/internal/infrastructure/kafka"
)

const maxRateDelta = 20

// AdjustPayoutRate - админская корректировка дельты курса и комиссии.
// Пересчет всегда от курса мерчанта, а не от текущего скорректированного,
// иначе дельты накапливались бы. Каждая корректировка оставляет audit запись.
func (uc *DefaultPayoutUsecase) AdjustPayoutRate(ctx context.Context, payoutID, adminID string, rateDelta, feePercent *float64) (*domain.Payout, error) {
	var adjusted *domain.Payout
	var audit *domain.PayoutRateAudit

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.Direction != domain.DirectionOut {
			return fmt.Errorf("%w: rate adjustment only allowed for OUT payouts", domain.ErrValidation)
		}
		if payout.Status != domain.PayoutStatusCreated && payout.Status != domain.PayoutStatusActive {
			return fmt.Errorf("%w: cannot adjust rate for payout in status %s", domain.ErrInvalidStatus, payout.Status)
		}
		if rateDelta != nil && math.Abs(*rateDelta) > maxRateDelta {
			return fmt.Errorf("%w: rate delta must be between -%d and %d", domain.ErrValidation, maxRateDelta, maxRateDelta)
		}
		if feePercent != nil && *feePercent > 100 {
			return fmt.Errorf("%w: fee percent cannot exceed 100", domain.ErrValidation)
		}

		oldRateDelta := payout.RateDelta
		oldFeePercent := payout.FeePercent
		newRateDelta := oldRateDelta
		if rateDelta != nil {
			newRateDelta = *rateDelta
		}
		newFeePercent := oldFeePercent
		if feePercent != nil {
			newFeePercent = *feePercent
		}

		merchantRate := payout.MerchantRate
		if merchantRate == 0 {
			merchantRate = payout.Rate
		}
		newRate := merchantRate + newRateDelta
		amountUsdt := freezing.FrozenAmount(payout.Amount, newRate)
		commission := freezing.Commission(amountUsdt, newFeePercent)

		payout.RateDelta = newRateDelta
		payout.FeePercent = newFeePercent
		payout.Rate = newRate
		payout.AmountUsdt = amountUsdt
		payout.Total = freezing.CeilUp2(payout.Amount * (1 + newFeePercent/100))
		payout.TotalUsdt = amountUsdt + commission

		if err := tx.SavePayout(payout); err != nil {
			return err
		}

		audit = &domain.PayoutRateAudit{
			PayoutID:      payoutID,
			AdminID:       adminID,
			OldRateDelta:  oldRateDelta,
			NewRateDelta:  newRateDelta,
			OldFeePercent: oldFeePercent,
			NewFeePercent: newFeePercent,
		}
		if err := tx.AddRateAudit(audit); err != nil {
			return err
		}
		adjusted = payout
		return nil
	})
	if err != nil {
		uc.recordError("adjust_rate")
		return nil, err
	}

	slog.Info("payout rate adjusted", "payout_id", payoutID, "admin_id", adminID,
		"rate_delta", adjusted.RateDelta, "fee_percent", adjusted.FeePercent)

	if uc.Broadcast != nil {
		go func() {
			if err := uc.Broadcast.PublishRateAdjustment(publisher.RateAdjustmentEvent{
				PayoutID:      payoutID,
				AdminID:       adminID,
				OldRateDelta:  audit.OldRateDelta,
				NewRateDelta:  audit.NewRateDelta,
				OldFeePercent: audit.OldFeePercent,
				NewFeePercent: audit.NewFeePercent,
			}); err != nil {
				slog.Error("failed to publish RateAdjustmentEvent", "payout_id", payoutID, "error", err.Error())
			}
		}()
	}
	uc.emitStatusChange(adjusted, "RATE_ADJUSTED", adjusted.TraderID)
	return adjusted, nil
}

// UpdatePayoutRate - мерчант меняет свой курс и/или сумму, пока выплату
// никто не принял
func (uc *DefaultPayoutUsecase) UpdatePayoutRate(ctx context.Context, payoutID, merchantID string, merchantRate, amount *float64) (*domain.Payout, error) {
	var updated *domain.Payout

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.MerchantID != merchantID {
			return domain.ErrUnauthorized
		}
		if payout.Status != domain.PayoutStatusCreated {
			return fmt.Errorf("%w: cannot update rate after payout is accepted", domain.ErrInvalidStatus)
		}

		if merchantRate != nil {
			payout.MerchantRate = *merchantRate
			payout.Rate = *merchantRate + payout.RateDelta
		}
		if amount != nil {
			if *amount <= 0 || math.IsNaN(*amount) || math.IsInf(*amount, 0) {
				return fmt.Errorf("%w: amount must be a positive finite number", domain.ErrValidation)
			}
			payout.Amount = *amount
		}

		if merchantRate != nil || amount != nil {
			payout.AmountUsdt = freezing.FrozenAmount(payout.Amount, payout.Rate)
			commission := freezing.Commission(payout.AmountUsdt, payout.FeePercent)
			payout.Total = freezing.CeilUp2(payout.Amount * (1 + payout.FeePercent/100))
			payout.TotalUsdt = payout.AmountUsdt + commission
		}

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		updated = payout
		return nil
	})
	if err != nil {
		uc.recordError("update_rate")
		return nil, err
	}

	return updated, nil
}
