package repository

import (
	"errors"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/mappers"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultTraderRepository struct {
	DB *gorm.DB
}

func NewDefaultTraderRepository(db *gorm.DB) *DefaultTraderRepository {
	return &DefaultTraderRepository{DB: db}
}

func (r *DefaultTraderRepository) GetTraderByID(traderID string) (*domain.Trader, error) {
	var traderModel models.TraderModel
	if err := r.DB.First(&traderModel, "id = ?", traderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTraderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainTrader(&traderModel), nil
}

// EligibleTraders - кому можно предложить выплату: не забанен, трафик включён,
// хватает рублёвого баланса, не отказывался от этой выплаты раньше.
// FIFO по дате регистрации аккаунта.
func (r *DefaultTraderRepository) EligibleTraders(amount float64, exclude []string) ([]*domain.Trader, error) {
	var traderModels []models.TraderModel

	query := r.DB.
		Where("banned = ?", false).
		Where("traffic_enabled = ?", true).
		Where("balance_rub >= ?", amount)
	if len(exclude) > 0 {
		query = query.Where("id NOT IN (?)", exclude)
	}

	if err := query.Order("created_at ASC").Find(&traderModels).Error; err != nil {
		return nil, err
	}

	traders := make([]*domain.Trader, len(traderModels))
	for i, traderModel := range traderModels {
		traders[i] = mappers.ToDomainTrader(&traderModel)
	}
	return traders, nil
}

func (r *DefaultTraderRepository) CountEligibleTraders(amount float64) (int64, error) {
	var count int64
	err := r.DB.Model(&models.TraderModel{}).
		Where("banned = ?", false).
		Where("traffic_enabled = ?", true).
		Where("balance_rub >= ?", amount).
		Count(&count).Error
	return count, err
}

type DefaultMerchantRepository struct {
	DB *gorm.DB
}

func NewDefaultMerchantRepository(db *gorm.DB) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{DB: db}
}

func (r *DefaultMerchantRepository) GetMerchantByID(merchantID string) (*domain.Merchant, error) {
	var merchantModel models.MerchantModel
	if err := r.DB.First(&merchantModel, "id = ?", merchantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMerchantNotFound
		}
		return nil, err
	}
	return mappers.ToDomainMerchant(&merchantModel), nil
}
