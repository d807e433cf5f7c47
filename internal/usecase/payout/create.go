package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/freezing"
	"github.com/google/uuid"
)

// CreatePayout - заявка мерчанта на выплату. Падает с ErrNoEligibleTraders,
// если ни один трейдер сейчас не проходит по балансу: тихой деградации
// дистрибуции нет, запись в этом случае не создаётся.
func (uc *DefaultPayoutUsecase) CreatePayout(ctx context.Context, input *domain.CreatePayoutInput) (*domain.Payout, error) {
	slog.Info("CreatePayout started", "merchant_id", input.MerchantID, "amount", input.Amount)

	if input.Amount <= 0 || math.IsNaN(input.Amount) || math.IsInf(input.Amount, 0) {
		return nil, fmt.Errorf("%w: amount must be a positive finite number", domain.ErrValidation)
	}

	if _, err := uc.MerchantRepo.GetMerchantByID(input.MerchantID); err != nil {
		return nil, err
	}

	direction := input.Direction
	if direction == "" {
		direction = domain.DirectionOut
	}

	merchantRate := input.MerchantRate
	if merchantRate == 0 {
		merchantRate = 100 // дефолтный курс, если мерчант не передал свой
	}
	rate := merchantRate
	if direction == domain.DirectionOut {
		rate = merchantRate + input.RateDelta
	}

	// Суммы к заморозке и итог с комиссией, округления детерминированные
	amountUsdt := freezing.FrozenAmount(input.Amount, rate)
	commission := freezing.Commission(amountUsdt, input.FeePercent)
	totalUsdt := amountUsdt + commission
	total := freezing.CeilUp2(input.Amount * (1 + input.FeePercent/100))

	ok, err := uc.Distribution.HasCapacity(input.Amount)
	if err != nil {
		return nil, err
	}
	if !ok {
		slog.Error("failed to create payout", "msg", "no traders with sufficient RUB balance", "required", input.Amount)
		return nil, fmt.Errorf("%w: required %.2f RUB", domain.ErrNoEligibleTraders, input.Amount)
	}

	processingTime := input.ProcessingTime
	if processingTime <= 0 {
		processingTime = uc.DefaultProcessingTime
	}
	now := uc.Now()

	payout := &domain.Payout{
		ID:                 uuid.New().String(),
		MerchantID:         input.MerchantID,
		Amount:             input.Amount,
		AmountUsdt:         amountUsdt,
		Total:              total,
		TotalUsdt:          totalUsdt,
		Rate:               rate,
		MerchantRate:       merchantRate,
		RateDelta:          input.RateDelta,
		FeePercent:         input.FeePercent,
		Direction:          direction,
		Wallet:             input.Wallet,
		Bank:               input.Bank,
		IsCard:             input.IsCard,
		ExternalReference:  input.ExternalReference,
		MerchantWebhookURL: input.WebhookURL,
		MerchantMetadata:   input.Metadata,
		Status:             domain.PayoutStatusCreated,
		ProcessingTime:     processingTime,
		ExpireAt:           now.Add(time.Duration(processingTime) * time.Minute),
	}

	if err := uc.PayoutRepo.CreatePayout(payout); err != nil {
		uc.recordError("create")
		return nil, err
	}

	uc.recordCreated(payout)
	uc.emitStatusChange(payout, "CREATED", "")
	uc.offerToEligibleTraders(payout)

	slog.Info("CreatePayout finished", "payout_id", payout.ID, "numeric_id", payout.NumericID)
	return payout, nil
}
