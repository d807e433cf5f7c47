package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chasepay/payout-service/internal/domain"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// memStore - in-memory замена postgres хранилища. Мьютекс играет роль
// блокировки FOR UPDATE: транзакции над выплатой сериализуются, откат
// восстанавливает снапшот.
type memStore struct {
	mu            sync.Mutex
	now           func() time.Time
	payoutSeq     int64
	payouts       map[string]*domain.Payout
	traders       map[string]*domain.Trader
	merchants     map[string]*domain.Merchant
	cancellations []*domain.PayoutCancellation
	blacklist     map[string]map[string]bool
	audits        []*domain.PayoutRateAudit
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{
		now:       now,
		payouts:   make(map[string]*domain.Payout),
		traders:   make(map[string]*domain.Trader),
		merchants: make(map[string]*domain.Merchant),
		blacklist: make(map[string]map[string]bool),
	}
}

func clonePayout(p *domain.Payout) *domain.Payout {
	c := *p
	c.PreviousTraderIDs = append([]string(nil), p.PreviousTraderIDs...)
	c.DisputeFiles = append([]string(nil), p.DisputeFiles...)
	c.ProofFiles = append([]string(nil), p.ProofFiles...)
	if p.AcceptedAt != nil {
		t := *p.AcceptedAt
		c.AcceptedAt = &t
	}
	if p.ConfirmedAt != nil {
		t := *p.ConfirmedAt
		c.ConfirmedAt = &t
	}
	if p.CancelledAt != nil {
		t := *p.CancelledAt
		c.CancelledAt = &t
	}
	return &c
}

func cloneTrader(t *domain.Trader) *domain.Trader {
	c := *t
	return &c
}

// --- domain.Store ---

func (s *memStore) InPayoutTx(ctx context.Context, payoutID string, fn func(tx domain.TxStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payout, ok := s.payouts[payoutID]
	if !ok {
		return domain.ErrPayoutNotFound
	}

	snapshot := s.snapshot()
	tx := &memTx{store: s, payout: clonePayout(payout)}
	if err := fn(tx); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type memSnapshot struct {
	payouts       map[string]*domain.Payout
	traders       map[string]*domain.Trader
	cancellations []*domain.PayoutCancellation
	blacklist     map[string]map[string]bool
	audits        []*domain.PayoutRateAudit
}

func (s *memStore) snapshot() memSnapshot {
	snap := memSnapshot{
		payouts:       make(map[string]*domain.Payout, len(s.payouts)),
		traders:       make(map[string]*domain.Trader, len(s.traders)),
		cancellations: append([]*domain.PayoutCancellation(nil), s.cancellations...),
		blacklist:     make(map[string]map[string]bool, len(s.blacklist)),
		audits:        append([]*domain.PayoutRateAudit(nil), s.audits...),
	}
	for id, p := range s.payouts {
		snap.payouts[id] = clonePayout(p)
	}
	for id, t := range s.traders {
		snap.traders[id] = cloneTrader(t)
	}
	for pid, traders := range s.blacklist {
		m := make(map[string]bool, len(traders))
		for tid := range traders {
			m[tid] = true
		}
		snap.blacklist[pid] = m
	}
	return snap
}

func (s *memStore) restore(snap memSnapshot) {
	s.payouts = snap.payouts
	s.traders = snap.traders
	s.cancellations = snap.cancellations
	s.blacklist = snap.blacklist
	s.audits = snap.audits
}

type memTx struct {
	store  *memStore
	payout *domain.Payout
}

func (tx *memTx) Payout() *domain.Payout { return tx.payout }

func (tx *memTx) SavePayout(payout *domain.Payout) error {
	tx.store.payouts[payout.ID] = clonePayout(payout)
	return nil
}

func (tx *memTx) Trader(traderID string) (*domain.Trader, error) {
	trader, ok := tx.store.traders[traderID]
	if !ok {
		return nil, domain.ErrTraderNotFound
	}
	return cloneTrader(trader), nil
}

func (tx *memTx) CountActivePayouts(traderID string) (int64, error) {
	var count int64
	for _, p := range tx.store.payouts {
		if p.TraderID == traderID && p.Status == domain.PayoutStatusActive {
			count++
		}
	}
	return count, nil
}

func (tx *memTx) Freeze(traderID string, amountRub float64) error {
	trader, ok := tx.store.traders[traderID]
	if !ok {
		return domain.ErrTraderNotFound
	}
	if trader.BalanceRub < amountRub {
		return domain.ErrInsufficientBalance
	}
	trader.BalanceRub -= amountRub
	trader.FrozenRub += amountRub
	return nil
}

func (tx *memTx) Unfreeze(traderID string, amountRub float64) error {
	trader, ok := tx.store.traders[traderID]
	if !ok {
		return domain.ErrTraderNotFound
	}
	trader.FrozenRub -= amountRub
	trader.BalanceRub += amountRub
	return nil
}

func (tx *memTx) Settle(traderID string, amountRub, creditUsdt, profitUsdt float64) error {
	trader, ok := tx.store.traders[traderID]
	if !ok {
		return domain.ErrTraderNotFound
	}
	trader.FrozenRub -= amountRub
	trader.BalanceUsdt += creditUsdt
	trader.ProfitFromPayouts += profitUsdt
	return nil
}

func (tx *memTx) AddCancellation(c *domain.PayoutCancellation) error {
	tx.store.cancellations = append(tx.store.cancellations, c)
	return nil
}

func (tx *memTx) UpsertBlacklist(payoutID, traderID string) error {
	if tx.store.blacklist[payoutID] == nil {
		tx.store.blacklist[payoutID] = make(map[string]bool)
	}
	tx.store.blacklist[payoutID][traderID] = true
	return nil
}

func (tx *memTx) AddRateAudit(a *domain.PayoutRateAudit) error {
	tx.store.audits = append(tx.store.audits, a)
	return nil
}

// --- domain.PayoutRepository ---

func (s *memStore) CreatePayout(payout *domain.Payout) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payoutSeq++
	payout.NumericID = s.payoutSeq
	payout.CreatedAt = s.now()
	s.payouts[payout.ID] = clonePayout(payout)
	return nil
}

func (s *memStore) GetPayoutByID(payoutID string) (*domain.Payout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payout, ok := s.payouts[payoutID]
	if !ok {
		return nil, domain.ErrPayoutNotFound
	}
	return clonePayout(payout), nil
}

func (s *memStore) GetTraderPayouts(traderID string, filters domain.PayoutFilters) ([]*domain.Payout, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Payout
	for _, p := range s.payouts {
		inPool := p.TraderID == "" && p.Status == domain.PayoutStatusCreated && p.ExpireAt.After(s.now())
		if p.TraderID == traderID || inPool {
			out = append(out, clonePayout(p))
		}
	}
	return out, int64(len(out)), nil
}

func (s *memStore) GetMerchantPayouts(merchantID string, filters domain.PayoutFilters) ([]*domain.Payout, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Payout
	for _, p := range s.payouts {
		if p.MerchantID == merchantID {
			out = append(out, clonePayout(p))
		}
	}
	return out, int64(len(out)), nil
}

func (s *memStore) FindExpiredPayouts() ([]*domain.Payout, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.Payout
	for _, p := range s.payouts {
		if p.Status == domain.PayoutStatusCreated && p.ExpireAt.Before(s.now()) {
			out = append(out, clonePayout(p))
		}
	}
	return out, nil
}

func (s *memStore) GetRateAudits(payoutID string, limit int) ([]*domain.PayoutRateAudit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*domain.PayoutRateAudit
	for _, a := range s.audits {
		if a.PayoutID == payoutID {
			out = append(out, a)
		}
	}
	return out, nil
}

// --- domain.TraderRepository ---

func (s *memStore) GetTraderByID(traderID string) (*domain.Trader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trader, ok := s.traders[traderID]
	if !ok {
		return nil, domain.ErrTraderNotFound
	}
	return cloneTrader(trader), nil
}

func (s *memStore) EligibleTraders(amount float64, exclude []string) ([]*domain.Trader, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	excluded := make(map[string]bool, len(exclude))
	for _, id := range exclude {
		excluded[id] = true
	}
	var out []*domain.Trader
	for _, t := range s.traders {
		if t.Banned || !t.TrafficEnabled || t.BalanceRub < amount || excluded[t.ID] {
			continue
		}
		out = append(out, cloneTrader(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *memStore) CountEligibleTraders(amount float64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for _, t := range s.traders {
		if !t.Banned && t.TrafficEnabled && t.BalanceRub >= amount {
			count++
		}
	}
	return count, nil
}

// --- domain.MerchantRepository ---

func (s *memStore) GetMerchantByID(merchantID string) (*domain.Merchant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	merchant, ok := s.merchants[merchantID]
	if !ok {
		return nil, domain.ErrMerchantNotFound
	}
	c := *merchant
	return &c, nil
}

func (s *memStore) addTrader(t *domain.Trader) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.MaxSimultaneousPayouts == 0 {
		t.MaxSimultaneousPayouts = 5
	}
	t.TrafficEnabled = true
	s.traders[t.ID] = t
}

func (s *memStore) addMerchant(m *domain.Merchant) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merchants[m.ID] = m
}

func (s *memStore) trader(id string) *domain.Trader {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTrader(s.traders[id])
}
