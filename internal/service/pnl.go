package service

import "tpfx-journal/internal/model"

// ComputeRealizedPnL computes a trade's realized profit or loss from its
// prices and quantity.
//
//	LONG:  (exit - entry) * quantity
//	SHORT: (entry - exit) * quantity
//
// A zero or absent price means the trade has not been closed (or there is no
// data), and the result is 0. Numeric-only, never fails.
func ComputeRealizedPnL(tradeType model.TradeType, entryPrice, exitPrice, quantity float64) float64 {
	if entryPrice == 0 || exitPrice == 0 {
		return 0
	}

	if tradeType == model.TradeTypeShort {
		return (entryPrice - exitPrice) * quantity
	}
	return (exitPrice - entryPrice) * quantity
}
