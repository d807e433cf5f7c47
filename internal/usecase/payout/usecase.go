package usecase

import (
	"time"

	"github.com/chasepay/payout-service/internal/domain"
	publisher "github.com/chasepay/payout-service/internal/infrastructure/kafka"
	"github.com/chasepay/payout-service/internal/infrastructure/metrics"
	"github.com/chasepay/payout-service/internal/infrastructure/notifier"
)

// Broadcaster - live-канал обновлений по выплатам
type Broadcaster interface {
	PublishPayout(event publisher.PayoutEvent) error
	PublishRateAdjustment(event publisher.RateAdjustmentEvent) error
}

// WebhookSender - подписанный HMAC вебхук мерчанту
type WebhookSender interface {
	Send(payout *domain.Payout, merchant *domain.Merchant, event string)
}

// PushNotifier - внешний диспетчер пуш-уведомлений
type PushNotifier interface {
	Notify(payload notifier.PushPayload)
}

type DefaultPayoutUsecase struct {
	PayoutRepo   domain.PayoutRepository
	MerchantRepo domain.MerchantRepository
	Store        domain.Store
	Distribution domain.DistributionPolicy

	// Сайд-каналы, могут отсутствовать. Проверяются один раз в notify.go.
	Webhook   WebhookSender
	Broadcast Broadcaster
	Push      PushNotifier

	Metrics *metrics.PayoutMetrics

	DefaultProcessingTime int // minutes

	Now func() time.Time
}

func NewDefaultPayoutUsecase(
	payoutRepo domain.PayoutRepository,
	merchantRepo domain.MerchantRepository,
	store domain.Store,
	distribution domain.DistributionPolicy,
	webhookSender WebhookSender,
	broadcaster Broadcaster,
	push PushNotifier,
	payoutMetrics *metrics.PayoutMetrics) *DefaultPayoutUsecase {

	return &DefaultPayoutUsecase{
		PayoutRepo:            payoutRepo,
		MerchantRepo:          merchantRepo,
		Store:                 store,
		Distribution:          distribution,
		Webhook:               webhookSender,
		Broadcast:             broadcaster,
		Push:                  push,
		Metrics:               payoutMetrics,
		DefaultProcessingTime: 15,
		Now:                   time.Now,
	}
}
