package dto

import "tpfx-journal/internal/model"

// CalendarDay is one cell of the 42-cell month grid. Derived, never persisted.
type CalendarDay struct {
	Date           string        `json:"date"` // YYYY-MM-DD
	IsCurrentMonth bool          `json:"is_current_month"`
	Trades         []model.Trade `json:"trades"`
	DailyPnL       float64       `json:"daily_pnl"`
}

// MonthlyStats are the aggregates over trades whose entry date falls in one
// calendar month.
type MonthlyStats struct {
	NetPnL     float64 `json:"net_pnl"`
	WinRate    float64 `json:"win_rate"`
	TradeCount int     `json:"trade_count"`
}

// DashboardStats are the whole-history aggregates, split by trade status.
// Only CLOSED trades enter the win/loss classification; a closed trade with
// zero P&L counts as a loss, not neutral.
type DashboardStats struct {
	WinsCount   int     `json:"wins_count"`
	LossesCount int     `json:"losses_count"`
	WinRate     float64 `json:"win_rate"`
	LossRate    float64 `json:"loss_rate"`
	AvgWin      float64 `json:"avg_win"`
	AvgLoss     float64 `json:"avg_loss"`
	TotalPnL    float64 `json:"total_pnl"`
	OpenCount   int     `json:"open_count"`
	ClosedCount int     `json:"closed_count"`
}
