package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tpfx-journal/internal/dto"
	"tpfx-journal/internal/model"
	"tpfx-journal/internal/repository"
	"tpfx-journal/pkg/cache"
	"tpfx-journal/pkg/logger"
	"tpfx-journal/pkg/utils"

	"github.com/google/uuid"
)

// JournalService owns the trade store lifecycle and exposes the derived
// projections. All derived values are recomputed from current input on
// demand; the cache only memoizes a computation for an identical store
// snapshot, it never serves a different one.
type JournalService interface {
	CreateTrade(ctx context.Context, req dto.CreateTradeRequest) (model.Trade, error)
	ListTrades(ctx context.Context) ([]dto.TradeLogRow, error)
	MonthGrid(ctx context.Context, year int, month time.Month) ([]dto.CalendarDay, error)
	MonthlyStats(ctx context.Context, year int, month time.Month) (dto.MonthlyStats, error)
	DashboardStats(ctx context.Context) (dto.DashboardStats, error)
	AccountValuation(ctx context.Context, year int, month time.Month) (dto.AccountValuation, error)
	UpdateAccount(ctx context.Context, account model.Account) error
}

type journalService struct {
	log         *logger.Logger
	tradeRepo   repository.TradeRepository
	accountRepo repository.AccountRepository
	statsCache  cache.Cache
}

func NewJournalService(
	log *logger.Logger,
	tradeRepo repository.TradeRepository,
	accountRepo repository.AccountRepository,
	statsCache cache.Cache,
) JournalService {
	return &journalService{
		log:         log,
		tradeRepo:   tradeRepo,
		accountRepo: accountRepo,
		statsCache:  statsCache,
	}
}

// CreateTrade fills in derived fields and appends the trade to the store.
// The P&L calculator only runs when the caller has not supplied an explicit
// non-zero value and both prices are present.
func (s *journalService) CreateTrade(ctx context.Context, req dto.CreateTradeRequest) (model.Trade, error) {
	entryDate := req.EntryDate
	if entryDate == "" {
		entryDate = utils.Today()
	}

	trade := model.Trade{
		ID:         uuid.NewString(),
		Ticker:     strings.ToUpper(req.Ticker),
		EntryDate:  entryDate,
		ExitDate:   req.ExitDate,
		Type:       model.TradeType(req.Type),
		Status:     model.TradeStatus(req.Status),
		Quantity:   req.Quantity,
		EntryPrice: req.EntryPrice,
		ExitPrice:  req.ExitPrice,
		Notes:      req.Notes,
		Setup:      req.Setup,
	}

	pnl := 0.0
	if req.Pnl != nil {
		pnl = *req.Pnl
	}
	if pnl == 0 && req.ExitPrice != nil {
		pnl = ComputeRealizedPnL(trade.Type, trade.EntryPrice, *req.ExitPrice, trade.Quantity)
	}
	trade.Pnl = &pnl

	if err := s.tradeRepo.Create(ctx, &trade); err != nil {
		return model.Trade{}, fmt.Errorf("failed to create trade: %w", err)
	}

	s.log.InfoContext(ctx, "Trade logged",
		logger.StringField("ticker", trade.Ticker),
		logger.StringField("entry_date", trade.EntryDate),
		logger.Float64Field("pnl", pnl),
	)
	return trade, nil
}

// ListTrades returns the full journal in insertion order, with the derived
// trade-log columns.
func (s *journalService) ListTrades(ctx context.Context) ([]dto.TradeLogRow, error) {
	trades, err := s.tradeRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list trades: %w", err)
	}

	rows := make([]dto.TradeLogRow, 0, len(trades))
	for _, t := range trades {
		row := dto.TradeLogRow{
			Trade:      t,
			EntryTotal: t.EntryPrice * t.Quantity,
		}
		if t.ExitPrice != nil {
			row.ExitTotal = *t.ExitPrice * t.Quantity
		}
		if row.EntryTotal > 0 {
			row.ReturnPercent = utils.Round2(t.RealizedPnL() / row.EntryTotal * 100)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (s *journalService) MonthGrid(ctx context.Context, year int, month time.Month) ([]dto.CalendarDay, error) {
	trades, err := s.tradeRepo.GetByMonth(ctx, monthKey(year, month))
	if err != nil {
		return nil, fmt.Errorf("failed to load trades for calendar: %w", err)
	}
	return BuildMonthGrid(trades, year, month), nil
}

func (s *journalService) MonthlyStats(ctx context.Context, year int, month time.Month) (dto.MonthlyStats, error) {
	trades, err := s.tradeRepo.GetByMonth(ctx, monthKey(year, month))
	if err != nil {
		return dto.MonthlyStats{}, fmt.Errorf("failed to load trades for monthly stats: %w", err)
	}

	key := fmt.Sprintf("stats:monthly:%s:%s", monthKey(year, month), snapshotID(trades))
	if cached, found := s.statsCache.Get(key); found {
		if stats, ok := cached.(dto.MonthlyStats); ok {
			return stats, nil
		}
	}

	stats := ComputeMonthlyStats(trades, year, month)
	s.statsCache.Set(key, stats, cache.DefaultExpiration)
	return stats, nil
}

func (s *journalService) DashboardStats(ctx context.Context) (dto.DashboardStats, error) {
	trades, err := s.tradeRepo.GetAll(ctx)
	if err != nil {
		return dto.DashboardStats{}, fmt.Errorf("failed to load trades for dashboard stats: %w", err)
	}

	key := "stats:dashboard:" + snapshotID(trades)
	if cached, found := s.statsCache.Get(key); found {
		if stats, ok := cached.(dto.DashboardStats); ok {
			return stats, nil
		}
	}

	stats := ComputeDashboardStats(trades)
	s.statsCache.Set(key, stats, cache.DefaultExpiration)
	return stats, nil
}

// AccountValuation combines the stored account with the live balance for the
// given month.
func (s *journalService) AccountValuation(ctx context.Context, year int, month time.Month) (dto.AccountValuation, error) {
	account, err := s.accountRepo.Load(ctx)
	if err != nil {
		return dto.AccountValuation{}, err
	}

	stats, err := s.MonthlyStats(ctx, year, month)
	if err != nil {
		return dto.AccountValuation{}, err
	}

	return dto.AccountValuation{
		Account:        account,
		MonthlyNetPnL:  stats.NetPnL,
		CurrentBalance: CurrentBalance(account, stats.NetPnL),
	}, nil
}

func (s *journalService) UpdateAccount(ctx context.Context, account model.Account) error {
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	s.log.InfoContext(ctx, "Account updated", logger.StringField("name", account.Name))
	return nil
}

func monthKey(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// snapshotID identifies an append-only store snapshot: a (length, last
// sequence) pair changes whenever a trade is appended and trades are
// immutable, so equal IDs mean identical input.
func snapshotID(trades []model.Trade) string {
	if len(trades) == 0 {
		return "0:0"
	}
	return fmt.Sprintf("%d:%d", len(trades), trades[len(trades)-1].Seq)
}
