package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/jaevor/go-nanoid"
)

// CancelPayoutByTrader - трейдер отказывается от взятой выплаты. Запись об
// отказе, блэклист, сброс выплаты обратно в пул и разморозка - один
// атомарный блок. Трейдер попадает в exclusion list и больше эту выплату
// не увидит.
func (uc *DefaultPayoutUsecase) CancelPayoutByTrader(ctx context.Context, payoutID, traderID, reason, reasonCode string, files []string) (*domain.Payout, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}

	var returned *domain.Payout

	err = uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.TraderID != traderID {
			return domain.ErrUnauthorized
		}
		if payout.Status != domain.PayoutStatusActive && payout.Status != domain.PayoutStatusChecking {
			return fmt.Errorf("%w: cannot cancel payout in status %s", domain.ErrInvalidStatus, payout.Status)
		}

		if err := tx.AddCancellation(&domain.PayoutCancellation{
			ID:         idGenerator(),
			PayoutID:   payoutID,
			TraderID:   traderID,
			Reason:     reason,
			ReasonCode: reasonCode,
			Files:      files,
			CreatedAt:  uc.Now(),
		}); err != nil {
			return err
		}
		if err := tx.UpsertBlacklist(payoutID, traderID); err != nil {
			return err
		}

		amount := payout.Amount
		payout.Status = domain.PayoutStatusCreated
		payout.TraderID = ""
		payout.AcceptedAt = nil
		payout.ConfirmedAt = nil
		payout.CancelReason = reason
		payout.CancelReasonCode = reasonCode
		payout.DisputeFiles = files
		payout.DisputeMessage = reason
		payout.SumToWriteOffUsdt = 0
		payout.PreviousTraderIDs = append(payout.PreviousTraderIDs, traderID)

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		if err := tx.Unfreeze(traderID, amount); err != nil {
			return err
		}
		returned = payout
		return nil
	})
	if err != nil {
		uc.recordError("cancel_by_trader")
		return nil, err
	}

	slog.Info("payout returned to pool", "payout_id", payoutID, "trader_id", traderID, "reason_code", reasonCode)
	uc.recordReturnedToPool(reasonCode)
	uc.emitStatusChange(returned, "returned_to_pool", traderID)
	uc.offerToEligibleTraders(returned)
	return returned, nil
}

// CancelPayoutByMerchant - мерчант снимает ещё не взятую выплату.
// Только из CREATED, балансовых эффектов нет - заморозки ещё не было.
func (uc *DefaultPayoutUsecase) CancelPayoutByMerchant(ctx context.Context, payoutID, merchantID, reasonCode string) (*domain.Payout, error) {
	var cancelled *domain.Payout

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.MerchantID != merchantID {
			return domain.ErrUnauthorized
		}
		if payout.Status != domain.PayoutStatusCreated {
			return fmt.Errorf("%w: cannot cancel payout in status %s", domain.ErrInvalidStatus, payout.Status)
		}

		cancelledAt := uc.Now()
		payout.Status = domain.PayoutStatusCancelled
		payout.CancelledAt = &cancelledAt
		payout.CancelReasonCode = reasonCode
		payout.CancelReason = fmt.Sprintf("Cancelled by merchant: %s", reasonCode)

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		cancelled = payout
		return nil
	})
	if err != nil {
		uc.recordError("cancel_by_merchant")
		return nil, err
	}

	uc.recordCancelled(cancelled, "merchant")
	uc.emitStatusChange(cancelled, "CANCELLED", "")
	return cancelled, nil
}

// CancelPayout - принудительная отмена после акцепта (админ/мерчант).
// В отличие от отказа трейдера, выплата не возвращается в пул, а умирает
// в CANCELLED; заморозка, если была, откатывается.
func (uc *DefaultPayoutUsecase) CancelPayout(ctx context.Context, payoutID, callerID, reason string, isMerchant bool) (*domain.Payout, error) {
	var cancelled *domain.Payout
	var releasedTraderID string

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if isMerchant && payout.MerchantID != callerID {
			return domain.ErrUnauthorized
		}
		if !isMerchant && payout.TraderID != callerID {
			return domain.ErrUnauthorized
		}
		if payout.Status == domain.PayoutStatusCompleted || payout.Status == domain.PayoutStatusCancelled {
			return fmt.Errorf("%w: cannot cancel completed or already cancelled payout", domain.ErrInvalidStatus)
		}

		// Откат заморозки только если трейдер успел принять
		if payout.TraderID != "" && payout.Status != domain.PayoutStatusCreated {
			if err := tx.Unfreeze(payout.TraderID, payout.Amount); err != nil {
				return err
			}
			releasedTraderID = payout.TraderID
		}

		cancelledAt := uc.Now()
		payout.Status = domain.PayoutStatusCancelled
		payout.CancelledAt = &cancelledAt
		payout.CancelReason = reason

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		cancelled = payout
		return nil
	})
	if err != nil {
		uc.recordError("cancel")
		return nil, err
	}

	by := "trader"
	if isMerchant {
		by = "merchant"
	}
	slog.Info("payout cancelled", "payout_id", payoutID, "by", by, "released_trader", releasedTraderID)
	uc.recordCancelled(cancelled, by)
	uc.emitStatusChange(cancelled, "CANCELLED", cancelled.TraderID)
	return cancelled, nil
}
