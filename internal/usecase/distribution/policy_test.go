package distribution_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/usecase/distribution"
)

type stubTraderRepo struct {
	traders []*domain.Trader
}

func (r *stubTraderRepo) GetTraderByID(traderID string) (*domain.Trader, error) {
	for _, t := range r.traders {
		if t.ID == traderID {
			return t, nil
		}
	}
	return nil, domain.ErrTraderNotFound
}

func (r *stubTraderRepo) EligibleTraders(amount float64, exclude []string) ([]*domain.Trader, error) {
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	var out []*domain.Trader
	for _, t := range r.traders {
		if t.Banned || !t.TrafficEnabled || t.BalanceRub < amount || excluded[t.ID] {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *stubTraderRepo) CountEligibleTraders(amount float64) (int64, error) {
	traders, err := r.EligibleTraders(amount, nil)
	if err != nil {
		return 0, err
	}
	return int64(len(traders)), nil
}

func TestDefaultPolicy_EligibleTraders(t *testing.T) {
	now := time.Now()
	repo := &stubTraderRepo{traders: []*domain.Trader{
		{ID: "old", BalanceRub: 5000, TrafficEnabled: true, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "young", BalanceRub: 5000, TrafficEnabled: true, CreatedAt: now},
		{ID: "banned", BalanceRub: 5000, TrafficEnabled: true, Banned: true, CreatedAt: now},
		{ID: "offline", BalanceRub: 5000, TrafficEnabled: false, CreatedAt: now},
		{ID: "broke", BalanceRub: 100, TrafficEnabled: true, CreatedAt: now},
		{ID: "refused", BalanceRub: 5000, TrafficEnabled: true, CreatedAt: now},
	}}
	policy := distribution.NewDefaultPolicy(repo)

	payout := &domain.Payout{Amount: 1000, PreviousTraderIDs: []string{"refused"}}
	traders, err := policy.EligibleTraders(payout)
	require.NoError(t, err)

	ids := make([]string, 0, len(traders))
	for _, trader := range traders {
		ids = append(ids, trader.ID)
	}
	require.ElementsMatch(t, []string{"old", "young"}, ids)
}

func TestDefaultPolicy_HasCapacity(t *testing.T) {
	repo := &stubTraderRepo{traders: []*domain.Trader{
		{ID: "trader-1", BalanceRub: 500, TrafficEnabled: true},
	}}
	policy := distribution.NewDefaultPolicy(repo)

	ok, err := policy.HasCapacity(400)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = policy.HasCapacity(1000)
	require.NoError(t, err)
	require.False(t, ok)
}
