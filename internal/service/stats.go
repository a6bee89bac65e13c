package service

import (
	"fmt"
	"time"

	"tpfx-journal/internal/dto"
	"tpfx-journal/internal/model"
)

// ComputeMonthlyStats reduces the trades whose entry date falls in the given
// month to the monthly summary. An empty month yields all zeros, never a
// division error.
func ComputeMonthlyStats(trades []model.Trade, year int, month time.Month) dto.MonthlyStats {
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	var stats dto.MonthlyStats
	wins := 0
	for _, t := range trades {
		if len(t.EntryDate) < len(prefix) || t.EntryDate[:len(prefix)] != prefix {
			continue
		}
		stats.TradeCount++
		stats.NetPnL += t.RealizedPnL()
		if t.RealizedPnL() > 0 {
			wins++
		}
	}

	if stats.TradeCount > 0 {
		stats.WinRate = float64(wins) / float64(stats.TradeCount) * 100
	}
	return stats
}

// ComputeDashboardStats reduces the full trade history to the dashboard
// summary. Only CLOSED trades enter the win/loss split: a win is pnl > 0,
// everything else closed counts as a loss, including a flat zero. All
// divisions are guarded; an empty history yields all zeros.
func ComputeDashboardStats(trades []model.Trade) dto.DashboardStats {
	var stats dto.DashboardStats
	var winsTotal, lossesTotal float64

	for _, t := range trades {
		switch t.Status {
		case model.TradeStatusOpen:
			stats.OpenCount++
		case model.TradeStatusClosed:
			stats.ClosedCount++
			pnl := t.RealizedPnL()
			stats.TotalPnL += pnl
			if pnl > 0 {
				stats.WinsCount++
				winsTotal += pnl
			} else {
				stats.LossesCount++
				lossesTotal += pnl
			}
		}
	}

	if stats.ClosedCount > 0 {
		stats.WinRate = float64(stats.WinsCount) / float64(stats.ClosedCount) * 100
		stats.LossRate = float64(stats.LossesCount) / float64(stats.ClosedCount) * 100
	}
	if stats.WinsCount > 0 {
		stats.AvgWin = winsTotal / float64(stats.WinsCount)
	}
	if stats.LossesCount > 0 {
		stats.AvgLoss = lossesTotal / float64(stats.LossesCount)
	}

	return stats
}
