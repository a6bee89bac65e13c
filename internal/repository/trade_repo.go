package repository

import (
	"context"

	"tpfx-journal/internal/model"

	"gorm.io/gorm"
)

// TradeRepository is the append-only trade store. There is no update or
// delete: a trade is immutable once logged.
type TradeRepository interface {
	Create(ctx context.Context, trade *model.Trade) error
	GetAll(ctx context.Context) ([]model.Trade, error)
	GetByMonth(ctx context.Context, yearMonth string) ([]model.Trade, error)
}

type tradeRepository struct {
	db *gorm.DB
}

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

func (r *tradeRepository) Create(ctx context.Context, trade *model.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

// GetAll returns every trade in insertion order.
func (r *tradeRepository) GetAll(ctx context.Context) ([]model.Trade, error) {
	var trades []model.Trade
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

// GetByMonth returns the trades whose entry date falls in the given
// "YYYY-MM" month, in insertion order. Entry dates are normalized strings,
// so a prefix match is exact.
func (r *tradeRepository) GetByMonth(ctx context.Context, yearMonth string) ([]model.Trade, error) {
	var trades []model.Trade
	if err := r.db.WithContext(ctx).
		Where("entry_date LIKE ?", yearMonth+"-%").
		Order("seq ASC").
		Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}
