package mappers

import (
	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/models"
)

func ToGORMPayout(p *domain.Payout) *models.PayoutModel {
	var traderID *string
	if p.TraderID != "" {
		id := p.TraderID
		traderID = &id
	}
	return &models.PayoutModel{
		ID:                p.ID,
		NumericID:         p.NumericID,
		MerchantID:        p.MerchantID,
		TraderID:          traderID,
		Amount:            p.Amount,
		AmountUsdt:        p.AmountUsdt,
		Total:             p.Total,
		TotalUsdt:         p.TotalUsdt,
		Rate:              p.Rate,
		MerchantRate:      p.MerchantRate,
		RateDelta:         p.RateDelta,
		FeePercent:        p.FeePercent,
		SumToWriteOffUsdt: p.SumToWriteOffUsdt,
		Direction:         string(p.Direction),
		Wallet:            p.Wallet,
		Bank:              p.Bank,
		IsCard:            p.IsCard,
		ExternalReference: p.ExternalReference,
		MerchantWebhookURL: p.MerchantWebhookURL,
		MerchantMetadata:  p.MerchantMetadata,
		Status:            p.Status,
		ProcessingTime:    p.ProcessingTime,
		ExpireAt:          p.ExpireAt,
		AcceptedAt:        p.AcceptedAt,
		ConfirmedAt:       p.ConfirmedAt,
		CancelledAt:       p.CancelledAt,
		CancelReason:      p.CancelReason,
		CancelReasonCode:  p.CancelReasonCode,
		DisputeMessage:    p.DisputeMessage,
		DisputeFiles:      p.DisputeFiles,
		ProofFiles:        p.ProofFiles,
		PreviousTraderIDs: p.PreviousTraderIDs,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func ToDomainPayout(m *models.PayoutModel) *domain.Payout {
	traderID := ""
	if m.TraderID != nil {
		traderID = *m.TraderID
	}
	return &domain.Payout{
		ID:                m.ID,
		NumericID:         m.NumericID,
		MerchantID:        m.MerchantID,
		TraderID:          traderID,
		Amount:            m.Amount,
		AmountUsdt:        m.AmountUsdt,
		Total:             m.Total,
		TotalUsdt:         m.TotalUsdt,
		Rate:              m.Rate,
		MerchantRate:      m.MerchantRate,
		RateDelta:         m.RateDelta,
		FeePercent:        m.FeePercent,
		SumToWriteOffUsdt: m.SumToWriteOffUsdt,
		Direction:         domain.PayoutDirection(m.Direction),
		Wallet:            m.Wallet,
		Bank:              m.Bank,
		IsCard:            m.IsCard,
		ExternalReference: m.ExternalReference,
		MerchantWebhookURL: m.MerchantWebhookURL,
		MerchantMetadata:  m.MerchantMetadata,
		Status:            m.Status,
		ProcessingTime:    m.ProcessingTime,
		ExpireAt:          m.ExpireAt,
		AcceptedAt:        m.AcceptedAt,
		ConfirmedAt:       m.ConfirmedAt,
		CancelledAt:       m.CancelledAt,
		CancelReason:      m.CancelReason,
		CancelReasonCode:  m.CancelReasonCode,
		DisputeMessage:    m.DisputeMessage,
		DisputeFiles:      m.DisputeFiles,
		ProofFiles:        m.ProofFiles,
		PreviousTraderIDs: m.PreviousTraderIDs,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func ToDomainTrader(m *models.TraderModel) *domain.Trader {
	return &domain.Trader{
		ID:                     m.ID,
		NumericID:              m.NumericID,
		Email:                  m.Email,
		BalanceRub:             m.BalanceRub,
		FrozenRub:              m.FrozenRub,
		BalanceUsdt:            m.BalanceUsdt,
		FrozenUsdt:             m.FrozenUsdt,
		ProfitFromPayouts:      m.ProfitFromPayouts,
		Banned:                 m.Banned,
		TrafficEnabled:         m.TrafficEnabled,
		MaxSimultaneousPayouts: m.MaxSimultaneousPayouts,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func ToDomainMerchant(m *models.MerchantModel) *domain.Merchant {
	return &domain.Merchant{
		ID:            m.ID,
		Name:          m.Name,
		ApiKeyPublic:  m.ApiKeyPublic,
		ApiKeyPrivate: m.ApiKeyPrivate,
		CreatedAt:     m.CreatedAt,
	}
}

func ToDomainRateAudit(m *models.PayoutRateAuditModel) *domain.PayoutRateAudit {
	return &domain.PayoutRateAudit{
		ID:            m.ID,
		PayoutID:      m.PayoutID,
		AdminID:       m.AdminID,
		OldRateDelta:  m.OldRateDelta,
		NewRateDelta:  m.NewRateDelta,
		OldFeePercent: m.OldFeePercent,
		NewFeePercent: m.NewFeePercent,
		Timestamp:     m.Timestamp,
	}
}
