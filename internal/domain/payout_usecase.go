package domain

import "context"

type PayoutUsecase interface {
	CreatePayout(ctx context.Context, input *CreatePayoutInput) (*Payout, error)
	AcceptPayout(ctx context.Context, payoutID, traderID string) (*Payout, error)
	ConfirmPayout(ctx context.Context, payoutID, traderID string, proofFiles []string) (*Payout, error)
	ApprovePayout(ctx context.Context, payoutID, merchantID string) (*Payout, error)
	CancelPayoutByTrader(ctx context.Context, payoutID, traderID, reason, reasonCode string, files []string) (*Payout, error)
	CancelPayoutByMerchant(ctx context.Context, payoutID, merchantID, reasonCode string) (*Payout, error)
	CancelPayout(ctx context.Context, payoutID, callerID, reason string, isMerchant bool) (*Payout, error)
	CreateDispute(ctx context.Context, payoutID, merchantID string, files []string, message string) (*Payout, error)
	AdjustPayoutRate(ctx context.Context, payoutID, adminID string, rateDelta, feePercent *float64) (*Payout, error)
	UpdatePayoutRate(ctx context.Context, payoutID, merchantID string, merchantRate, amount *float64) (*Payout, error)
	ReassignPayout(ctx context.Context, payoutID, traderID string) (*Payout, error)

	GetPayoutByID(payoutID string) (*Payout, error)
	GetTraderPayouts(traderID string, filters PayoutFilters) ([]*Payout, int64, error)
	GetMerchantPayouts(merchantID string, filters PayoutFilters) ([]*Payout, int64, error)

	CancelExpiredPayouts(ctx context.Context) error
}

type CreatePayoutInput struct {
	MerchantID        string
	Amount            float64
	Wallet            string
	Bank              string
	IsCard            bool
	MerchantRate      float64
	Direction         PayoutDirection
	RateDelta         float64
	FeePercent        float64
	ExternalReference string
	ProcessingTime    int
	WebhookURL        string
	Metadata          string
}
