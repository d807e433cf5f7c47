package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chasepay/payout-service/internal/domain"
)

// AcceptPayout - трейдер забирает выплату из пула. Смена статуса и заморозка
// balanceRub -> frozenRub идут одной транзакцией над заблокированной строкой:
// из N конкурентных вызовов выигрывает ровно один.
func (uc *DefaultPayoutUsecase) AcceptPayout(ctx context.Context, payoutID, traderID string) (*domain.Payout, error) {
	var accepted *domain.Payout
	var expired *domain.Payout

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.TraderID != "" && payout.TraderID != traderID {
			return domain.ErrAlreadyAccepted
		}
		if payout.Status != domain.PayoutStatusCreated {
			return fmt.Errorf("%w: payout is %s", domain.ErrInvalidStatus, payout.Status)
		}

		now := uc.Now()
		if now.After(payout.ExpireAt) {
			// Дедлайн прошёл: фиксируем EXPIRED и коммитим, сам вызов провалится
			payout.Status = domain.PayoutStatusExpired
			if err := tx.SavePayout(payout); err != nil {
				return err
			}
			expired = payout
			return nil
		}

		trader, err := tx.Trader(traderID)
		if err != nil {
			return err
		}
		if trader.BalanceRub < payout.Amount {
			return fmt.Errorf("%w: required %.2f, available %.2f",
				domain.ErrInsufficientBalance, payout.Amount, trader.BalanceRub)
		}

		activeCount, err := tx.CountActivePayouts(traderID)
		if err != nil {
			return err
		}
		if activeCount >= trader.MaxSimultaneousPayouts {
			return fmt.Errorf("%w (%d)", domain.ErrPayoutLimitReached, trader.MaxSimultaneousPayouts)
		}

		acceptedAt := now
		payout.TraderID = traderID
		payout.AcceptedAt = &acceptedAt
		payout.Status = domain.PayoutStatusActive
		payout.SumToWriteOffUsdt = payout.TotalUsdt
		payout.ExpireAt = now.Add(time.Duration(payout.ProcessingTime) * time.Minute)

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		if err := tx.Freeze(traderID, payout.Amount); err != nil {
			return err
		}
		accepted = payout
		return nil
	})
	if err != nil {
		uc.recordError("accept")
		return nil, err
	}

	if expired != nil {
		uc.recordExpired()
		uc.emitStatusChange(expired, "EXPIRED", "")
		return nil, domain.ErrPayoutExpired
	}

	slog.Info("payout accepted", "payout_id", payoutID, "trader_id", traderID)
	uc.emitStatusChange(accepted, "ACTIVE", traderID)
	return accepted, nil
}

// ReassignPayout - системное назначение при редистрибуции: та же заморозка,
// но без арбитража "кто первый" - инициатор не трейдер, а платформа
func (uc *DefaultPayoutUsecase) ReassignPayout(ctx context.Context, payoutID, traderID string) (*domain.Payout, error) {
	var reassigned *domain.Payout

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.Status != domain.PayoutStatusCreated || payout.TraderID != "" {
			return fmt.Errorf("%w: payout cannot be reassigned in current state", domain.ErrInvalidStatus)
		}

		trader, err := tx.Trader(traderID)
		if err != nil {
			return err
		}
		if trader.BalanceRub < payout.Amount {
			return fmt.Errorf("%w: required %.2f, available %.2f",
				domain.ErrInsufficientBalance, payout.Amount, trader.BalanceRub)
		}

		acceptedAt := uc.Now()
		payout.TraderID = traderID
		payout.AcceptedAt = &acceptedAt
		payout.Status = domain.PayoutStatusActive
		payout.SumToWriteOffUsdt = payout.TotalUsdt

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		if err := tx.Freeze(traderID, payout.Amount); err != nil {
			return err
		}
		reassigned = payout
		return nil
	})
	if err != nil {
		uc.recordError("reassign")
		return nil, err
	}

	slog.Info("payout reassigned", "payout_id", payoutID, "trader_id", traderID)
	uc.emitStatusChange(reassigned, "ACTIVE", traderID)
	return reassigned, nil
}
