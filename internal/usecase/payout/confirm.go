package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chasepay/payout-service/internal/domain"
)

// ConfirmPayout - трейдер прикладывает пруфы перевода, выплата уходит на
// проверку мерчанту. Балансы не трогаются.
func (uc *DefaultPayoutUsecase) ConfirmPayout(ctx context.Context, payoutID, traderID string, proofFiles []string) (*domain.Payout, error) {
	var confirmed *domain.Payout

	err := uc.Store.InPayoutTx(ctx, payoutID, func(tx domain.TxStore) error {
		payout := tx.Payout()

		if payout.TraderID != traderID {
			return domain.ErrUnauthorized
		}
		if payout.Status != domain.PayoutStatusActive {
			return fmt.Errorf("%w: payout is %s, expected ACTIVE", domain.ErrInvalidStatus, payout.Status)
		}

		confirmedAt := uc.Now()
		payout.Status = domain.PayoutStatusChecking
		payout.ProofFiles = proofFiles
		payout.ConfirmedAt = &confirmedAt

		if err := tx.SavePayout(payout); err != nil {
			return err
		}
		confirmed = payout
		return nil
	})
	if err != nil {
		uc.recordError("confirm")
		return nil, err
	}

	slog.Info("payout confirmed", "payout_id", payoutID, "trader_id", traderID, "proof_files", len(proofFiles))
	uc.emitStatusChange(confirmed, "CHECKING", traderID)
	return confirmed, nil
}
