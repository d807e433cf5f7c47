package domain

// DistributionPolicy решает, каким трейдерам можно предложить выплату из
// пула. Это offer list, а не назначение: кто первым успешно вызовет Accept,
// тот и забирает.
type DistributionPolicy interface {
	EligibleTraders(payout *Payout) ([]*Trader, error)
	HasCapacity(amount float64) (bool, error)
}
