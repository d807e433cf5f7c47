package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/chasepay/payout-service/internal/domain"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/mappers"
	"github.com/chasepay/payout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPayoutRepository struct {
	DB *gorm.DB
}

func NewDefaultPayoutRepository(db *gorm.DB) *DefaultPayoutRepository {
	return &DefaultPayoutRepository{DB: db}
}

func (r *DefaultPayoutRepository) CreatePayout(payout *domain.Payout) error {
	payoutModel := mappers.ToGORMPayout(payout)
	if err := r.DB.Create(payoutModel).Error; err != nil {
		return err
	}
	// numeric_id выдаёт база
	payout.NumericID = payoutModel.NumericID
	payout.CreatedAt = payoutModel.CreatedAt
	return nil
}

func (r *DefaultPayoutRepository) GetPayoutByID(payoutID string) (*domain.Payout, error) {
	var payoutModel models.PayoutModel
	if err := r.DB.First(&payoutModel, "id = ?", payoutID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPayoutNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayout(&payoutModel), nil
}

// GetTraderPayouts - свои выплаты трейдера плюс не протухший пул (CREATED без трейдера)
func (r *DefaultPayoutRepository) GetTraderPayouts(traderID string, filters domain.PayoutFilters) ([]*domain.Payout, int64, error) {
	var payoutModels []models.PayoutModel
	var total int64

	own := r.DB.Where("trader_id = ?", traderID)
	if len(filters.Statuses) > 0 {
		own = own.Where("status IN (?)", filters.Statuses)
	}

	baseQuery := r.DB.Model(&models.PayoutModel{})

	showPool := len(filters.Statuses) == 0
	for _, s := range filters.Statuses {
		if s == domain.PayoutStatusCreated {
			showPool = true
		}
	}
	if showPool {
		pool := r.DB.Where("trader_id IS NULL AND status = ? AND expire_at > ?",
			domain.PayoutStatusCreated, time.Now())
		baseQuery = baseQuery.Where(own.Or(pool))
	} else {
		baseQuery = baseQuery.Where(own)
	}

	if filters.Search != "" {
		search := r.DB.
			Where("wallet ILIKE ?", "%"+filters.Search+"%").
			Or("bank ILIKE ?", "%"+filters.Search+"%")
		if numericID, err := strconv.ParseInt(filters.Search, 10, 64); err == nil {
			search = search.Or("numeric_id = ?", numericID)
		}
		baseQuery = baseQuery.Where(search)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	err := baseQuery.
		Order("created_at DESC").
		Offset(filters.Offset).
		Limit(limit).
		Find(&payoutModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find payouts: %w", err)
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, payoutModel := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModel)
	}
	return payouts, total, nil
}

func (r *DefaultPayoutRepository) GetMerchantPayouts(merchantID string, filters domain.PayoutFilters) ([]*domain.Payout, int64, error) {
	var payoutModels []models.PayoutModel
	var total int64

	baseQuery := r.DB.Model(&models.PayoutModel{}).Where("merchant_id = ?", merchantID)

	if len(filters.Statuses) > 0 {
		baseQuery = baseQuery.Where("status IN (?)", filters.Statuses)
	}
	if filters.Direction != "" {
		baseQuery = baseQuery.Where("direction = ?", filters.Direction)
	}
	if !filters.DateFrom.IsZero() {
		baseQuery = baseQuery.Where("created_at >= ?", filters.DateFrom)
	}
	if !filters.DateTo.IsZero() {
		baseQuery = baseQuery.Where("created_at <= ?", filters.DateTo)
	}

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count payouts: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	err := baseQuery.
		Order("created_at DESC").
		Offset(filters.Offset).
		Limit(limit).
		Find(&payoutModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find payouts: %w", err)
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, payoutModel := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModel)
	}
	return payouts, total, nil
}

// FindExpiredPayouts - CREATED выплаты с прошедшим дедлайном, досматриваются свипом
func (r *DefaultPayoutRepository) FindExpiredPayouts() ([]*domain.Payout, error) {
	var payoutModels []models.PayoutModel
	if err := r.DB.
		Where("status = ?", domain.PayoutStatusCreated).
		Where("expire_at < ?", time.Now()).
		Find(&payoutModels).Error; err != nil {
		return nil, err
	}

	payouts := make([]*domain.Payout, len(payoutModels))
	for i, payoutModel := range payoutModels {
		payouts[i] = mappers.ToDomainPayout(&payoutModel)
	}
	return payouts, nil
}

func (r *DefaultPayoutRepository) GetRateAudits(payoutID string, limit int) ([]*domain.PayoutRateAudit, error) {
	if limit <= 0 {
		limit = 5
	}
	var auditModels []models.PayoutRateAuditModel
	if err := r.DB.
		Where("payout_id = ?", payoutID).
		Order("timestamp DESC").
		Limit(limit).
		Find(&auditModels).Error; err != nil {
		return nil, err
	}

	audits := make([]*domain.PayoutRateAudit, len(auditModels))
	for i, auditModel := range auditModels {
		audits[i] = mappers.ToDomainRateAudit(&auditModel)
	}
	return audits, nil
}
