package service

import (
	"time"

	"tpfx-journal/internal/dto"
	"tpfx-journal/internal/model"
	"tpfx-journal/pkg/utils"
)

// calendarGridSize is the fixed month grid layout: 6 weeks of 7 days,
// Sunday-first. Months that would fit in 5 displayed weeks still render 6,
// leaving a trailing all-padding row.
const calendarGridSize = 6 * 7

// BuildMonthGrid projects trades onto the fixed 42-cell grid for the given
// month. Cells are strictly chronological, Sunday-first. Padding cells from
// the neighboring months carry no trades and a zero daily P&L.
//
// Trades are matched to current-month cells by exact string equality on
// EntryDate, which must already be normalized to YYYY-MM-DD.
func BuildMonthGrid(trades []model.Trade, year int, month time.Month) []dto.CalendarDay {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := utils.DaysInMonth(year, month)
	startingDayIndex := int(firstOfMonth.Weekday()) // 0 (Sun) to 6 (Sat)

	days := make([]dto.CalendarDay, 0, calendarGridSize)

	// leading padding from the end of the previous month
	for i := startingDayIndex; i > 0; i-- {
		days = append(days, dto.CalendarDay{
			Date:           utils.FormatDate(firstOfMonth.AddDate(0, 0, -i)),
			IsCurrentMonth: false,
			Trades:         []model.Trade{},
			DailyPnL:       0,
		})
	}

	for i := 0; i < daysInMonth; i++ {
		dateStr := utils.FormatDate(firstOfMonth.AddDate(0, 0, i))

		dayTrades := []model.Trade{}
		dailyPnL := 0.0
		for _, t := range trades {
			if t.EntryDate == dateStr {
				dayTrades = append(dayTrades, t)
				dailyPnL += t.RealizedPnL()
			}
		}

		days = append(days, dto.CalendarDay{
			Date:           dateStr,
			IsCurrentMonth: true,
			Trades:         dayTrades,
			DailyPnL:       dailyPnL,
		})
	}

	// trailing padding from the start of the next month
	nextMonth := firstOfMonth.AddDate(0, 1, 0)
	for i := 0; len(days) < calendarGridSize; i++ {
		days = append(days, dto.CalendarDay{
			Date:           utils.FormatDate(nextMonth.AddDate(0, 0, i)),
			IsCurrentMonth: false,
			Trades:         []model.Trade{},
			DailyPnL:       0,
		})
	}

	return days
}
