package repository

import (
	"fmt"
	"strings"

	"tpfx-journal/internal/model"
)

// promptAnalyzeMonth builds the natural-language prompt for the monthly
// analysis: one line per trade with side, ticker, closed P&L or OPEN marker,
// setup tag and notes, followed by the coaching instructions.
func (r *geminiAIRepository) promptAnalyzeMonth(trades []model.Trade, monthLabel string) string {
	var sb strings.Builder

	sb.WriteString("You are an expert trading psychologist and risk manager.\n")
	sb.WriteString(fmt.Sprintf("Analyze the following trading journal entries for the month of %s.\n\n", monthLabel))

	sb.WriteString("Trades:\n")
	for _, t := range trades {
		sb.WriteString(fmt.Sprintf("- %s %s: %s. Setup: %s. Notes: %s\n",
			t.Type,
			t.Ticker,
			formatTradeOutcome(t),
			orDefault(t.Setup, "N/A"),
			orDefault(t.Notes, "None"),
		))
	}

	sb.WriteString(`
Please provide:
1. A brief summary of performance.
2. Identify any potential behavioral patterns (e.g., revenge trading, overtrading, good discipline).
3. Three actionable tips for the next month.

Keep the tone professional, encouraging, but direct. Format with Markdown.
`)

	return sb.String()
}

func formatTradeOutcome(t model.Trade) string {
	if t.Status == model.TradeStatusClosed {
		return fmt.Sprintf("P&L $%.2f", t.RealizedPnL())
	}
	return string(t.Status)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
