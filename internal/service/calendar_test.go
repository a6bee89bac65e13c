package service

import (
	"testing"
	"time"

	"tpfx-journal/internal/model"
	"tpfx-journal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedTrade(ticker string, tradeType model.TradeType, entryDate string, pnl float64) model.Trade {
	return model.Trade{
		Ticker:    ticker,
		Type:      tradeType,
		Status:    model.TradeStatusClosed,
		EntryDate: entryDate,
		Pnl:       utils.ToPointer(pnl),
	}
}

func TestBuildMonthGrid_FixedLayout(t *testing.T) {
	tests := []struct {
		name        string
		year        int
		month       time.Month
		wantLeading int
		wantDays    int
	}{
		{
			name:        "march 2024 starts on a friday",
			year:        2024,
			month:       time.March,
			wantLeading: 5,
			wantDays:    31,
		},
		{
			name:        "february 2015 fits four weeks but still renders six",
			year:        2015,
			month:       time.February,
			wantLeading: 0,
			wantDays:    28,
		},
		{
			name:        "leap february 2024",
			year:        2024,
			month:       time.February,
			wantLeading: 4,
			wantDays:    29,
		},
		{
			name:        "december wraps into the next year",
			year:        2024,
			month:       time.December,
			wantLeading: 0,
			wantDays:    31,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildMonthGrid(nil, tt.year, tt.month)
			require.Len(t, grid, 42)

			currentCount := 0
			for _, day := range grid {
				if day.IsCurrentMonth {
					currentCount++
				}
			}
			assert.Equal(t, tt.wantDays, currentCount)

			for i := 0; i < tt.wantLeading; i++ {
				assert.False(t, grid[i].IsCurrentMonth, "cell %d should be leading padding", i)
				assert.Empty(t, grid[i].Trades)
				assert.Zero(t, grid[i].DailyPnL)
			}
			assert.True(t, grid[tt.wantLeading].IsCurrentMonth)
			assert.False(t, grid[tt.wantLeading+tt.wantDays].IsCurrentMonth)

			// cells are strictly chronological
			for i := 1; i < len(grid); i++ {
				assert.Less(t, grid[i-1].Date, grid[i].Date)
			}
		})
	}
}

func TestBuildMonthGrid_ProjectsTrades(t *testing.T) {
	trades := []model.Trade{
		closedTrade("AAPL", model.TradeTypeLong, "2024-03-05", 150),
		closedTrade("TSLA", model.TradeTypeShort, "2024-03-05", -50),
		closedTrade("MSFT", model.TradeTypeLong, "2024-04-01", 200),
	}

	grid := BuildMonthGrid(trades, 2024, time.March)
	require.Len(t, grid, 42)

	// March 1 is a Friday, so March 5 sits at cell 9
	march5 := grid[9]
	assert.Equal(t, "2024-03-05", march5.Date)
	assert.True(t, march5.IsCurrentMonth)
	assert.Len(t, march5.Trades, 2)
	assert.Equal(t, 100.0, march5.DailyPnL)

	// the April trade lands on a padding cell and must not be picked up
	for _, day := range grid {
		if !day.IsCurrentMonth {
			assert.Empty(t, day.Trades)
			assert.Zero(t, day.DailyPnL)
		}
	}
}

func TestBuildMonthGrid_DailyPnLSumMatchesMonthlyNet(t *testing.T) {
	trades := []model.Trade{
		closedTrade("AAPL", model.TradeTypeLong, "2024-03-05", 150),
		closedTrade("TSLA", model.TradeTypeShort, "2024-03-05", -50),
		closedTrade("NVDA", model.TradeTypeLong, "2024-03-28", 75.5),
		closedTrade("MSFT", model.TradeTypeLong, "2024-04-01", 200),
		{Ticker: "AMD", Type: model.TradeTypeLong, Status: model.TradeStatusOpen, EntryDate: "2024-03-11"},
	}

	grid := BuildMonthGrid(trades, 2024, time.March)

	var gridTotal float64
	for _, day := range grid {
		if day.IsCurrentMonth {
			gridTotal += day.DailyPnL
		}
	}

	stats := ComputeMonthlyStats(trades, 2024, time.March)
	assert.InDelta(t, stats.NetPnL, gridTotal, 1e-9)
}
