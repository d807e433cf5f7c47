package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chasepay/payout-service/internal/domain"
)

// CreateDispute - мерчант оспаривает выплату на проверке. Балансы не
// трогаются: разморозка/списание откладываются до ручного разбора.
func (uc *DefaultPayoutUsecase) CreateDispute(ctx context.Context, payoutID, merchantID string, files []string, message string) (*domain.Payout, error) {
	var disputed *domain.Payout

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.MerchantID != merchantID {
			return domain.ErrUnauthorized
		}
		if payout.Status != domain.PayoutStatusChecking {
			return fmt.Errorf("%w: can only dispute payouts in CHECKING status", domain.ErrInvalidStatus)
		}

		payout.Status = domain.PayoutStatusDisputed
		payout.DisputeFiles = files
		payout.DisputeMessage = message

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		disputed = payout
		return nil
	})
	if err != nil {
		uc.recordError("dispute")
		return nil, err
	}

	slog.Info("dispute created", "payout_id", payoutID, "merchant_id", merchantID)
	uc.emitStatusChange(disputed, "DISPUTED", disputed.TraderID)
	return disputed, nil
}
