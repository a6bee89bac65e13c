package service

import (
	"context"
	"time"

	"tpfx-journal/config"
	"tpfx-journal/pkg/logger"
	"tpfx-journal/pkg/utils"

	"github.com/robfig/cron/v3"
)

// ReportService periodically logs the current month's journal summary. It is
// observability over the same engine output the API serves, nothing more.
type ReportService struct {
	cfg     *config.Config
	log     *logger.Logger
	journal JournalService
	cron    *cron.Cron
}

func NewReportService(cfg *config.Config, log *logger.Logger, journal JournalService) *ReportService {
	return &ReportService{
		cfg:     cfg,
		log:     log,
		journal: journal,
		cron:    cron.New(),
	}
}

// Start registers the summary job and starts the scheduler. An empty cron
// spec disables the job.
func (s *ReportService) Start() error {
	if s.cfg.Report.CronSpec == "" {
		s.log.Info("Daily summary job disabled, no cron spec configured")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Report.CronSpec, s.logMonthSummary); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Daily summary job scheduled", logger.StringField("cron_spec", s.cfg.Report.CronSpec))
	return nil
}

func (s *ReportService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *ReportService) logMonthSummary() {
	ctx := context.Background()
	now := time.Now()

	stats, err := s.journal.MonthlyStats(ctx, now.Year(), now.Month())
	if err != nil {
		s.log.Error("Failed to compute month summary", logger.ErrorField(err))
		return
	}

	s.log.Info("Month summary",
		logger.StringField("month", utils.MonthLabel(now.Year(), now.Month())),
		logger.Float64Field("net_pnl", stats.NetPnL),
		logger.Float64Field("win_rate", stats.WinRate),
		logger.IntField("trade_count", stats.TradeCount),
	)
}
