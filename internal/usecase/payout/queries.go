package usecase

import "github.com/chasepay/payout-service/internal/domain"

func (uc *DefaultPayoutUsecase) GetPayoutByID(payoutID string) (*domain.Payout, error) {
	return uc.PayoutRepo.GetPayoutByID(payoutID)
}

func (uc *DefaultPayoutUsecase) GetTraderPayouts(traderID string, filters domain.PayoutFilters) ([]*domain.Payout, int64, error) {
	return uc.PayoutRepo.GetTraderPayouts(traderID, filters)
}

func (uc *DefaultPayoutUsecase) GetMerchantPayouts(merchantID string, filters domain.PayoutFilters) ([]*domain.Payout, int64, error) {
	return uc.PayoutRepo.GetMerchantPayouts(merchantID, filters)
}
