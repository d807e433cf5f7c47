package usecase

import (
	"log/slog"

	"github.com/chasepay/payout-service/internal/domain"
	publisher "github.com/chasepay/payout-service/internal/infrastructure/kafka"
	"github.com/chasepay/payout-service/internal/infrastructure/notifier"
)

// emitStatusChange - вебхук мерчанту, live-broadcast и пуши по смене статуса.
// Выполняется после коммита транзакции; любая ошибка логируется и глотается,
// откатить леджер отсюда нельзя.
func (uc *DefaultPayoutUsecase) emitStatusChange(payout *domain.Payout, event string, notifyTraderID string) {
	go func() {
		if uc.Webhook != nil && payout.MerchantWebhookURL != "" {
			merchant, err := uc.MerchantRepo.GetMerchantByID(payout.MerchantID)
			if err != nil {
				slog.Error("failed to fetch merchant for webhook", "merchant_id", payout.MerchantID, "error", err.Error())
				merchant = nil
			}
			uc.Webhook.Send(payout, merchant, event)
		}

		if uc.Broadcast != nil {
			if err := uc.Broadcast.PublishPayout(publisher.PayoutEvent{
				PayoutID:   payout.ID,
				NumericID:  payout.NumericID,
				MerchantID: payout.MerchantID,
				TraderID:   payout.TraderID,
				Event:      event,
				Status:     string(payout.Status),
				Amount:     payout.Amount,
				AmountUsdt: payout.AmountUsdt,
				Bank:       payout.Bank,
				Wallet:     payout.Wallet,
			}); err != nil {
				slog.Error("failed to publish PayoutEvent", "payout_id", payout.ID, "event", event, "error", err.Error())
			}
		}

		if uc.Push != nil {
			if notifyTraderID != "" {
				uc.Push.Notify(notifier.PushPayload{
					Recipient: notifyTraderID,
					Role:      "trader",
					PayoutID:  payout.ID,
					NumericID: payout.NumericID,
					Status:    string(payout.Status),
					Amount:    payout.Amount,
					Bank:      payout.Bank,
					Wallet:    payout.Wallet,
				})
			}
			uc.Push.Notify(notifier.PushPayload{
				Recipient: payout.MerchantID,
				Role:      "merchant",
				PayoutID:  payout.ID,
				NumericID: payout.NumericID,
				Status:    string(payout.Status),
				Amount:    payout.Amount,
				Bank:      payout.Bank,
				Wallet:    payout.Wallet,
			})
		}
	}()
}

// offerToEligibleTraders - разослать пуши трейдерам, которым выплата доступна.
// Только уведомления, никакого назначения: арбитраж происходит в Accept.
func (uc *DefaultPayoutUsecase) offerToEligibleTraders(payout *domain.Payout) {
	if uc.Push == nil {
		return
	}
	go func() {
		traders, err := uc.Distribution.EligibleTraders(payout)
		if err != nil {
			slog.Error("failed to compute eligible traders", "payout_id", payout.ID, "error", err.Error())
			return
		}
		slog.Info("distributing payout", "payout_id", payout.ID, "eligible_traders", len(traders))
		for _, trader := range traders {
			uc.Push.Notify(notifier.PushPayload{
				Recipient: trader.ID,
				Role:      "trader",
				PayoutID:  payout.ID,
				NumericID: payout.NumericID,
				Status:    string(payout.Status),
				Amount:    payout.Amount,
				Bank:      payout.Bank,
				Wallet:    payout.Wallet,
			})
		}
	}()
}
