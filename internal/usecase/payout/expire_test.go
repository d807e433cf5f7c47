package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/chasepay/payout-service/internal/domain"
)

func TestCancelExpiredPayouts_Sweep(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)

	stale1 := env.createPayout(t)
	stale2 := env.createPayout(t)

	env.clock.Advance(10 * time.Minute)
	fresh := env.createPayout(t)

	env.clock.Advance(10 * time.Minute)
	require.NoError(t, env.uc.CancelExpiredPayouts(ctx))

	for _, id := range []string{stale1.ID, stale2.ID} {
		stored, err := env.uc.GetPayoutByID(id)
		require.NoError(t, err)
		require.Equal(t, domain.PayoutStatusExpired, stored.Status)
	}

	stored, err := env.uc.GetPayoutByID(fresh.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PayoutStatusCreated, stored.Status)
}

func TestCancelExpiredPayouts_SkipsAcceptedPayout(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)

	payout := env.createPayout(t)
	_, err := env.uc.AcceptPayout(ctx, payout.ID, "trader-1")
	require.NoError(t, err)

	env.clock.Advance(time.Hour)
	require.NoError(t, env.uc.CancelExpiredPayouts(ctx))

	// принятая выплата свипом не трогается, даже с прошедшим дедлайном
	stored, err := env.uc.GetPayoutByID(payout.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PayoutStatusActive, stored.Status)
}
