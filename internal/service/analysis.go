package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"tpfx-journal/internal/repository"
	"tpfx-journal/pkg/logger"
	"tpfx-journal/pkg/utils"
)

// msgAnalysisBusy is returned when an analysis request arrives while another
// one is still in flight. Only one outstanding request is allowed; concurrent
// callers get this fixed string instead of queueing.
const msgAnalysisBusy = "An analysis is already in progress. Please wait for it to finish."

// AnalysisService runs the AI monthly analysis over the trades of one
// calendar month. The returned text is displayed verbatim and is never
// parsed; every AI failure mode is a fixed string, not an error.
type AnalysisService interface {
	AnalyzeMonth(ctx context.Context, year int, month time.Month) (string, error)
}

type analysisService struct {
	log       *logger.Logger
	tradeRepo repository.TradeRepository
	aiRepo    repository.AIRepository
	busy      atomic.Bool
}

func NewAnalysisService(
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	aiRepo repository.AIRepository,
) AnalysisService {
	return &analysisService{
		log:       log,
		tradeRepo: tradeRepo,
		aiRepo:    aiRepo,
	}
}

// AnalyzeMonth feeds the month's trades and a human-readable month label to
// the AI collaborator. The error return only covers the trade store; the AI
// boundary itself degrades to fallback text.
func (s *analysisService) AnalyzeMonth(ctx context.Context, year int, month time.Month) (string, error) {
	if !s.busy.CompareAndSwap(false, true) {
		s.log.WarnContext(ctx, "Analysis request rejected, another one is in flight")
		return msgAnalysisBusy, nil
	}
	defer s.busy.Store(false)

	trades, err := s.tradeRepo.GetByMonth(ctx, monthKey(year, month))
	if err != nil {
		return "", fmt.Errorf("failed to load trades for analysis: %w", err)
	}

	label := utils.MonthLabel(year, month)
	s.log.InfoContext(ctx, "Running AI monthly analysis",
		logger.StringField("month", label),
		logger.IntField("trade_count", len(trades)),
	)

	return s.aiRepo.AnalyzeMonth(ctx, trades, label), nil
}
