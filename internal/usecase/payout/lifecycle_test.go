package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chasepay/payout-service/internal/domain"
)

// Полный happy path: создание -> принятие -> подтверждение -> одобрение.
// Сквозная проверка балансовых эффектов каждой стадии.
func TestPayoutLifecycle_HappyPath(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)

	payout := env.createPayout(t)

	_, err := env.uc.AcceptPayout(ctx, payout.ID, "trader-1")
	require.NoError(t, err)

	confirmed, err := env.uc.ConfirmPayout(ctx, payout.ID, "trader-1", []string{"receipt.pdf"})
	require.NoError(t, err)
	require.Equal(t, domain.PayoutStatusChecking, confirmed.Status)
	require.Equal(t, []string{"receipt.pdf"}, confirmed.ProofFiles)
	require.NotNil(t, confirmed.ConfirmedAt)

	// подтверждение балансы не трогает
	trader := env.store.trader("trader-1")
	require.InDelta(t, 4000, trader.BalanceRub, 1e-9)
	require.InDelta(t, 1000, trader.FrozenRub, 1e-9)

	completed, err := env.uc.ApprovePayout(ctx, payout.ID, "merchant-1")
	require.NoError(t, err)
	require.Equal(t, domain.PayoutStatusCompleted, completed.Status)

	trader = env.store.trader("trader-1")
	require.InDelta(t, 4000, trader.BalanceRub, 1e-9)
	require.Zero(t, trader.FrozenRub)
	require.InDelta(t, 10.75, trader.BalanceUsdt, 1e-9)
	require.InDelta(t, 0.22, trader.ProfitFromPayouts, 1e-9)
}

func TestConfirmPayout_Authorization(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)
	env.seedTrader("trader-2", 5000)
	payout := env.createPayout(t)

	// нельзя подтвердить непринятую выплату
	_, err := env.uc.ConfirmPayout(ctx, payout.ID, "trader-1", nil)
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = env.uc.AcceptPayout(ctx, payout.ID, "trader-1")
	require.NoError(t, err)

	_, err = env.uc.ConfirmPayout(ctx, payout.ID, "trader-2", nil)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestApprovePayout_RequiresChecking(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)
	payout := env.createPayout(t)

	_, err := env.uc.ApprovePayout(ctx, payout.ID, "merchant-1")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = env.uc.AcceptPayout(ctx, payout.ID, "trader-1")
	require.NoError(t, err)

	_, err = env.uc.ApprovePayout(ctx, payout.ID, "merchant-1")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = env.uc.ConfirmPayout(ctx, payout.ID, "trader-1", nil)
	require.NoError(t, err)

	_, err = env.uc.ApprovePayout(ctx, payout.ID, "stranger")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPayoutLifecycle_TerminalStatusRejectsEverything(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)
	payout := env.createPayout(t)

	_, err := env.uc.AcceptPayout(ctx, payout.ID, "trader-1")
	require.NoError(t, err)
	_, err = env.uc.ConfirmPayout(ctx, payout.ID, "trader-1", nil)
	require.NoError(t, err)
	_, err = env.uc.ApprovePayout(ctx, payout.ID, "merchant-1")
	require.NoError(t, err)

	_, err = env.uc.AcceptPayout(ctx, payout.ID, "trader-1")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	_, err = env.uc.ConfirmPayout(ctx, payout.ID, "trader-1", nil)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	_, err = env.uc.ApprovePayout(ctx, payout.ID, "merchant-1")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	_, err = env.uc.CancelPayout(ctx, payout.ID, "merchant-1", "too late", true)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)
	_, err = env.uc.CancelPayoutByTrader(ctx, payout.ID, "trader-1", "", "", nil)
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	// балансы не изменились после отвергнутых вызовов
	trader := env.store.trader("trader-1")
	require.InDelta(t, 4000, trader.BalanceRub, 1e-9)
	require.Zero(t, trader.FrozenRub)
	require.InDelta(t, 10.75, trader.BalanceUsdt, 1e-9)
}

// Сумма balanceRub + frozenRub неизменна на всём пути до завершения
func TestPayoutLifecycle_RubConservation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)

	total := func() float64 {
		trader := env.store.trader("trader-1")
		return trader.BalanceRub + trader.FrozenRub
	}

	first := env.createPayout(t)
	_, err := env.uc.AcceptPayout(ctx, first.ID, "trader-1")
	require.NoError(t, err)
	require.InDelta(t, 5000, total(), 1e-9)

	_, err = env.uc.CancelPayoutByTrader(ctx, first.ID, "trader-1", "cannot process", "NO_FUNDS", nil)
	require.NoError(t, err)
	require.InDelta(t, 5000, total(), 1e-9)

	second := env.createPayout(t)
	_, err = env.uc.AcceptPayout(ctx, second.ID, "trader-1")
	require.NoError(t, err)
	_, err = env.uc.ConfirmPayout(ctx, second.ID, "trader-1", nil)
	require.NoError(t, err)
	require.InDelta(t, 5000, total(), 1e-9)

	// списание происходит только в момент одобрения
	_, err = env.uc.ApprovePayout(ctx, second.ID, "merchant-1")
	require.NoError(t, err)
	require.InDelta(t, 4000, total(), 1e-9)
}

func TestCreateDispute(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.seedMerchant("merchant-1")
	env.seedTrader("trader-1", 5000)
	payout := env.createPayout(t)

	_, err := env.uc.AcceptPayout(ctx, payout.ID, "trader-1")
	require.NoError(t, err)

	// спор возможен только после подтверждения
	_, err = env.uc.CreateDispute(ctx, payout.ID, "merchant-1", nil, "no transfer received")
	require.ErrorIs(t, err, domain.ErrInvalidStatus)

	_, err = env.uc.ConfirmPayout(ctx, payout.ID, "trader-1", []string{"receipt.pdf"})
	require.NoError(t, err)

	disputed, err := env.uc.CreateDispute(ctx, payout.ID, "merchant-1", []string{"bank-statement.pdf"}, "no transfer received")
	require.NoError(t, err)
	require.Equal(t, domain.PayoutStatusDisputed, disputed.Status)
	require.Equal(t, "no transfer received", disputed.DisputeMessage)
	require.Equal(t, []string{"bank-statement.pdf"}, disputed.DisputeFiles)

	// заморозка сохраняется до ручного разбора
	trader := env.store.trader("trader-1")
	require.InDelta(t, 1000, trader.FrozenRub, 1e-9)
}
