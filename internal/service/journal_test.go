package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"tpfx-journal/internal/dto"
	"tpfx-journal/internal/model"
	"tpfx-journal/pkg/cache"
	"tpfx-journal/pkg/logger"
	"tpfx-journal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTradeRepo struct {
	trades []model.Trade
}

func (f *fakeTradeRepo) Create(ctx context.Context, trade *model.Trade) error {
	trade.Seq = uint64(len(f.trades) + 1)
	f.trades = append(f.trades, *trade)
	return nil
}

func (f *fakeTradeRepo) GetAll(ctx context.Context) ([]model.Trade, error) {
	return f.trades, nil
}

func (f *fakeTradeRepo) GetByMonth(ctx context.Context, yearMonth string) ([]model.Trade, error) {
	var out []model.Trade
	for _, t := range f.trades {
		if strings.HasPrefix(t.EntryDate, yearMonth+"-") {
			out = append(out, t)
		}
	}
	return out, nil
}

type fakeAccountRepo struct {
	account model.Account
	saves   int
}

func (f *fakeAccountRepo) Load(ctx context.Context) (model.Account, error) {
	return f.account, nil
}

func (f *fakeAccountRepo) Save(ctx context.Context, account model.Account) error {
	f.account = account
	f.saves++
	return nil
}

func newTestJournal(t *testing.T, tradeRepo *fakeTradeRepo, accountRepo *fakeAccountRepo) JournalService {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return NewJournalService(log, tradeRepo, accountRepo, cache.NewCache(time.Minute, time.Minute))
}

func TestCreateTrade_AutoFillsPnL(t *testing.T) {
	repo := &fakeTradeRepo{}
	svc := newTestJournal(t, repo, &fakeAccountRepo{})

	trade, err := svc.CreateTrade(context.Background(), dto.CreateTradeRequest{
		Ticker:     "aapl",
		EntryDate:  "2024-03-05",
		Type:       "LONG",
		Status:     "CLOSED",
		Quantity:   10,
		EntryPrice: 100,
		ExitPrice:  utils.ToPointer(110.0),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, trade.ID)
	assert.Equal(t, "AAPL", trade.Ticker)
	require.NotNil(t, trade.Pnl)
	assert.Equal(t, 100.0, *trade.Pnl)
	require.Len(t, repo.trades, 1)
}

func TestCreateTrade_ShortSignConvention(t *testing.T) {
	svc := newTestJournal(t, &fakeTradeRepo{}, &fakeAccountRepo{})

	trade, err := svc.CreateTrade(context.Background(), dto.CreateTradeRequest{
		Ticker:     "TSLA",
		EntryDate:  "2024-03-05",
		Type:       "SHORT",
		Status:     "CLOSED",
		Quantity:   10,
		EntryPrice: 100,
		ExitPrice:  utils.ToPointer(110.0),
	})
	require.NoError(t, err)
	require.NotNil(t, trade.Pnl)
	assert.Equal(t, -100.0, *trade.Pnl)
}

func TestCreateTrade_ExplicitPnLOverridesComputed(t *testing.T) {
	svc := newTestJournal(t, &fakeTradeRepo{}, &fakeAccountRepo{})

	trade, err := svc.CreateTrade(context.Background(), dto.CreateTradeRequest{
		Ticker:     "NVDA",
		EntryDate:  "2024-03-06",
		Type:       "LONG",
		Status:     "CLOSED",
		Quantity:   10,
		EntryPrice: 100,
		ExitPrice:  utils.ToPointer(110.0),
		Pnl:        utils.ToPointer(42.0),
	})
	require.NoError(t, err)
	require.NotNil(t, trade.Pnl)
	assert.Equal(t, 42.0, *trade.Pnl)
}

func TestCreateTrade_DefaultsEntryDateToToday(t *testing.T) {
	svc := newTestJournal(t, &fakeTradeRepo{}, &fakeAccountRepo{})

	trade, err := svc.CreateTrade(context.Background(), dto.CreateTradeRequest{
		Ticker:   "MSFT",
		Type:     "LONG",
		Status:   "OPEN",
		Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, utils.Today(), trade.EntryDate)
}

func TestListTrades_DerivedColumns(t *testing.T) {
	repo := &fakeTradeRepo{}
	svc := newTestJournal(t, repo, &fakeAccountRepo{})

	_, err := svc.CreateTrade(context.Background(), dto.CreateTradeRequest{
		Ticker:     "AAPL",
		EntryDate:  "2024-03-05",
		Type:       "LONG",
		Status:     "CLOSED",
		Quantity:   10,
		EntryPrice: 100,
		ExitPrice:  utils.ToPointer(110.0),
	})
	require.NoError(t, err)

	rows, err := svc.ListTrades(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, 1000.0, rows[0].EntryTotal)
	assert.Equal(t, 1100.0, rows[0].ExitTotal)
	assert.Equal(t, 10.0, rows[0].ReturnPercent)
}

func TestListTrades_ZeroEntryTotalGuardsReturnPercent(t *testing.T) {
	repo := &fakeTradeRepo{}
	repo.trades = append(repo.trades, model.Trade{
		Seq: 1, ID: "t-1", Ticker: "AAPL", EntryDate: "2024-03-05",
		Type: model.TradeTypeLong, Status: model.TradeStatusClosed,
		Pnl: utils.ToPointer(50.0),
	})
	svc := newTestJournal(t, repo, &fakeAccountRepo{})

	rows, err := svc.ListTrades(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Zero(t, rows[0].ReturnPercent)
}

func TestMonthlyStats_MemoizedByStoreSnapshot(t *testing.T) {
	repo := &fakeTradeRepo{}
	repo.trades = append(repo.trades, model.Trade{
		Seq: 1, ID: "t-1", Ticker: "AAPL", EntryDate: "2024-03-05",
		Type: model.TradeTypeLong, Status: model.TradeStatusClosed,
		Pnl: utils.ToPointer(150.0),
	})
	svc := newTestJournal(t, repo, &fakeAccountRepo{})

	first, err := svc.MonthlyStats(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 150.0, first.NetPnL)

	// appending advances the snapshot identity, so the memo is bypassed
	repo.trades = append(repo.trades, model.Trade{
		Seq: 2, ID: "t-2", Ticker: "TSLA", EntryDate: "2024-03-06",
		Type: model.TradeTypeShort, Status: model.TradeStatusClosed,
		Pnl: utils.ToPointer(-50.0),
	})

	second, err := svc.MonthlyStats(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, 100.0, second.NetPnL)
	assert.Equal(t, 2, second.TradeCount)
}

func TestAccountValuation(t *testing.T) {
	repo := &fakeTradeRepo{}
	repo.trades = append(repo.trades, model.Trade{
		Seq: 1, ID: "t-1", Ticker: "AAPL", EntryDate: "2024-03-05",
		Type: model.TradeTypeLong, Status: model.TradeStatusClosed,
		Pnl: utils.ToPointer(-500.0),
	})
	accountRepo := &fakeAccountRepo{account: model.Account{Name: "FundedNext", Balance: 20000, Currency: "USD"}}
	svc := newTestJournal(t, repo, accountRepo)

	valuation, err := svc.AccountValuation(context.Background(), 2024, time.March)
	require.NoError(t, err)
	assert.Equal(t, -500.0, valuation.MonthlyNetPnL)
	assert.Equal(t, 19500.0, valuation.CurrentBalance)
}

func TestUpdateAccount_ReplacesWholesale(t *testing.T) {
	accountRepo := &fakeAccountRepo{account: model.DefaultAccount()}
	svc := newTestJournal(t, &fakeTradeRepo{}, accountRepo)

	err := svc.UpdateAccount(context.Background(), model.Account{Name: "Prop Firm", Balance: 50000, Currency: "EUR"})
	require.NoError(t, err)
	assert.Equal(t, 1, accountRepo.saves)
	assert.Equal(t, "Prop Firm", accountRepo.account.Name)
	assert.Equal(t, 50000.0, accountRepo.account.Balance)
}
