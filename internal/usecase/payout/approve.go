package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chasepay/payout-service/internal/domain"
)

// ApprovePayout - мерчант (или авто-таймаут) подтверждает выплату.
// Замороженные рубли списываются, трейдеру зачисляется расчетная сумма USDT -
// одна транзакция со сменой статуса.
func (uc *DefaultPayoutUsecase) ApprovePayout(ctx context.Context, payoutID, merchantID string) (*domain.Payout, error) {
	var completed *domain.Payout

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.MerchantID != merchantID {
			return domain.ErrUnauthorized
		}
		if payout.Status != domain.PayoutStatusChecking {
			return fmt.Errorf("%w: payout is %s, expected CHECKING", domain.ErrInvalidStatus, payout.Status)
		}
		if payout.TraderID == "" {
			return domain.ErrNoTraderAssigned
		}

		settlement := payout.SettlementUsdt()
		profit := settlement - payout.AmountUsdt
		if profit < 0 {
			// проскальзывание поглощает платформа, трейдеру минус не пишем
			profit = 0
		}

		payout.Status = domain.PayoutStatusCompleted

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		if err := tx.Settle(payout.TraderID, payout.Amount, settlement, profit); err != nil {
			return err
		}
		completed = payout
		return nil
	})
	if err != nil {
		uc.recordError("approve")
		return nil, err
	}

	slog.Info("payout completed", "payout_id", payoutID, "trader_id", completed.TraderID, "settlement_usdt", completed.SettlementUsdt())
	uc.recordCompleted(completed)
	uc.emitStatusChange(completed, "COMPLETED", completed.TraderID)
	return completed, nil
}
