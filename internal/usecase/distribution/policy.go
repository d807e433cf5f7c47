package distribution

import (
	"github.com/chasepay/payout-service/internal/domain"
)

// DefaultPolicy - единственная реализация политики дистрибуции.
// Отбор: не забанен, трафик включён, balanceRub >= суммы выплаты, трейдер
// не входит в накопленный exclusion list выплаты. Порядок FIFO по возрасту
// аккаунта. Никакого фоллбэка: если политика не отработала, создание
// выплаты падает громко.
type DefaultPolicy struct {
	TraderRepo domain.TraderRepository
}

func NewDefaultPolicy(traderRepo domain.TraderRepository) *DefaultPolicy {
	return &DefaultPolicy{TraderRepo: traderRepo}
}

func (p *DefaultPolicy) EligibleTraders(payout *domain.Payout) ([]*domain.Trader, error) {
	return p.TraderRepo.EligibleTraders(payout.Amount, payout.PreviousTraderIDs)
}

func (p *DefaultPolicy) HasCapacity(amount float64) (bool, error) {
	count, err := p.TraderRepo.CountEligibleTraders(amount)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
