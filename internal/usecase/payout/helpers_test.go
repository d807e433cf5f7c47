package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/usecase/distribution"
	usecase "github.com/chasepay/payout-service/internal/usecase/payout"
)

type testEnv struct {
	clock *fakeClock
	store *memStore
	uc    *usecase.DefaultPayoutUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clock := &fakeClock{t: time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)}
	store := newMemStore(clock.Now)
	uc := usecase.NewDefaultPayoutUsecase(
		store, store, store,
		distribution.NewDefaultPolicy(store),
		nil, nil, nil, nil,
	)
	uc.Now = clock.Now

	return &testEnv{clock: clock, store: store, uc: uc}
}

func (e *testEnv) seedMerchant(id string) {
	e.store.addMerchant(&domain.Merchant{ID: id, Name: id})
}

func (e *testEnv) seedTrader(id string, balanceRub float64) {
	e.store.addTrader(&domain.Trader{
		ID:         id,
		BalanceRub: balanceRub,
		CreatedAt:  e.clock.Now(),
	})
}

// createPayout - заявка на 1000 RUB по курсу 95 с комиссией 2%,
// числа из неё используются в ассертах как опорные
func (e *testEnv) createPayout(t *testing.T) *domain.Payout {
	t.Helper()

	payout, err := e.uc.CreatePayout(context.Background(), &domain.CreatePayoutInput{
		MerchantID:   "merchant-1",
		Amount:       1000,
		MerchantRate: 95,
		FeePercent:   2,
		Wallet:       "4111111111111111",
		Bank:         "sberbank",
		IsCard:       true,
	})
	require.NoError(t, err)
	return payout
}
