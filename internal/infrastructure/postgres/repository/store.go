package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/mappers"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore - единица работы над выплатой. Переход статуса и балансовые
// мутации коммитятся одной транзакцией, строка выплаты держится под
// SELECT ... FOR UPDATE до коммита: из конкурентных Accept выигрывает
// ровно один, остальные видят уже не-CREATED статус.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{DB: db}
}

func (s *GormStore) InPayoutTx(ctx context.Context, payoutID string, fn func(tx domain.TxStore) error) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var payoutModel models.PayoutModel
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&payoutModel, "id = ?", payoutID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPayoutNotFound
			}
			return err
		}
		return fn(&payoutTxStore{tx: tx, payout: mappers.ToDomainPayout(&payoutModel)})
	})
}

type payoutTxStore struct {
	tx     *gorm.DB
	payout *domain.Payout
}

func (s *payoutTxStore) Payout() *domain.Payout {
	return s.payout
}

func (s *payoutTxStore) SavePayout(payout *domain.Payout) error {
	if err := s.tx.Save(mappers.ToGORMPayout(payout)).Error; err != nil {
		return fmt.Errorf("failed to save payout %s: %w", payout.ID, err)
	}
	return nil
}

func (s *payoutTxStore) Trader(traderID string) (*domain.Trader, error) {
	var traderModel models.TraderModel
	if err := s.tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&traderModel, "id = ?", traderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTraderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTrader(&traderModel), nil
}

func (s *payoutTxStore) CountActivePayouts(traderID string) (int64, error) {
	var count int64
	err := s.tx.Model(&models.PayoutModel{}).
		Where("trader_id = ? AND status = ?", traderID, domain.PayoutStatusActive).
		Count(&count).Error
	return count, err
}

// Freeze: balanceRub -> frozenRub, guard по балансу прямо в UPDATE
func (s *payoutTxStore) Freeze(traderID string, amountRub float64) error {
	res := s.tx.Model(&models.TraderModel{}).
		Where("id = ? AND balance_rub >= ?", traderID, amountRub).
		Updates(map[string]interface{}{
			"balance_rub": gorm.Expr("balance_rub - ?", amountRub),
			"frozen_rub":  gorm.Expr("frozen_rub + ?", amountRub),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to freeze %f RUB for trader %s: %w", amountRub, traderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// Unfreeze: frozenRub -> balanceRub, та же сумма
func (s *payoutTxStore) Unfreeze(traderID string, amountRub float64) error {
	res := s.tx.Model(&models.TraderModel{}).
		Where("id = ? AND frozen_rub >= ?", traderID, amountRub).
		Updates(map[string]interface{}{
			"frozen_rub":  gorm.Expr("frozen_rub - ?", amountRub),
			"balance_rub": gorm.Expr("balance_rub + ?", amountRub),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to unfreeze %f RUB for trader %s: %w", amountRub, traderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("frozen balance of trader %s is below %f", traderID, amountRub)
	}
	return nil
}

// Settle: frozenRub списывается, balanceUsdt пополняется суммой расчета
func (s *payoutTxStore) Settle(traderID string, amountRub, creditUsdt, profitUsdt float64) error {
	res := s.tx.Model(&models.TraderModel{}).
		Where("id = ? AND frozen_rub >= ?", traderID, amountRub).
		Updates(map[string]interface{}{
			"frozen_rub":          gorm.Expr("frozen_rub - ?", amountRub),
			"balance_usdt":        gorm.Expr("balance_usdt + ?", creditUsdt),
			"profit_from_payouts": gorm.Expr("profit_from_payouts + ?", profitUsdt),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to settle payout for trader %s: %w", traderID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("frozen balance of trader %s is below %f", traderID, amountRub)
	}
	return nil
}

func (s *payoutTxStore) AddCancellation(c *domain.PayoutCancellation) error {
	return s.tx.Create(&models.PayoutCancellationModel{
		ID:         c.ID,
		PayoutID:   c.PayoutID,
		TraderID:   c.TraderID,
		Reason:     c.Reason,
		ReasonCode: c.ReasonCode,
		Files:      c.Files,
		CreatedAt:  c.CreatedAt,
	}).Error
}

func (s *payoutTxStore) UpsertBlacklist(payoutID, traderID string) error {
	return s.tx.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&models.PayoutBlacklistModel{
			PayoutID: payoutID,
			TraderID: traderID,
		}).Error
}

func (s *payoutTxStore) AddRateAudit(a *domain.PayoutRateAudit) error {
	return s.tx.Create(&models.PayoutRateAuditModel{
		PayoutID:      a.PayoutID,
		AdminID:       a.AdminID,
		OldRateDelta:  a.OldRateDelta,
		NewRateDelta:  a.NewRateDelta,
		OldFeePercent: a.OldFeePercent,
		NewFeePercent: a.NewFeePercent,
	}).Error
}
