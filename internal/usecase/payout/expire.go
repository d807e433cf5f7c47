package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chasepay/payout-service/internal/domain"
)

// CancelExpiredPayouts - периодический свип: CREATED выплаты с прошедшим
// дедлайном помечаются EXPIRED. Заморозки ещё не было, балансовых эффектов
// нет. Статус перепроверяется под блокировкой - выплату могли успеть принять
// между выборкой и транзакцией.
func (uc *DefaultPayoutUsecase) CancelExpiredPayouts(ctx context.Context) error {
	payouts, err := uc.PayoutRepo.FindExpiredPayouts()
	if err != nil {
		return fmt.Errorf("failed to find expired payouts: %w", err)
	}

	for _, candidate := range payouts {
		var expired *domain.Payout

		err := uc.Store.InPayoutTx(ctx, candidate.ID, func(tx domain.TxStore) error {
			payout := tx.Payout()
			if payout.Status != domain.PayoutStatusCreated || uc.Now().Before(payout.ExpireAt) {
				return nil
			}
			payout.Status = domain.PayoutStatusExpired
			if err := tx.SavePayout(payout); err != nil {
				return err
			}
			expired = payout
			return nil
		})
		if err != nil {
			slog.Error("failed to expire payout", "payout_id", candidate.ID, "error", err.Error())
			uc.recordError("expire")
			continue
		}

		if expired != nil {
			slog.Info("payout expired", "payout_id", expired.ID, "numeric_id", expired.NumericID)
			uc.recordExpired()
			uc.emitStatusChange(expired, "EXPIRED", "")
		}
	}

	return nil
}
