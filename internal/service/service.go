package service

import (
	"tpfx-journal/config"
	"tpfx-journal/internal/repository"
	"tpfx-journal/pkg/cache"
	"tpfx-journal/pkg/logger"
)

type Service struct {
	JournalService  JournalService
	AnalysisService AnalysisService
	ReportService   *ReportService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	statsCache cache.Cache,
) *Service {
	journalService := NewJournalService(log, repo.TradeRepo, repo.AccountRepo, statsCache)
	analysisService := NewAnalysisService(log, repo.TradeRepo, repo.GeminiAIRepo)
	reportService := NewReportService(cfg, log, journalService)

	return &Service{
		JournalService:  journalService,
		AnalysisService: analysisService,
		ReportService:   reportService,
	}
}
