package repository

import (
	"tpfx-journal/config"
	"tpfx-journal/pkg/logger"

	"gorm.io/gorm"
)

type Repository struct {
	TradeRepo    TradeRepository
	AccountRepo  AccountRepository
	GeminiAIRepo AIRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	geminiAIRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		TradeRepo:    NewTradeRepository(db),
		AccountRepo:  NewAccountRepository(db),
		GeminiAIRepo: geminiAIRepo,
	}, nil
}
