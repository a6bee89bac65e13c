package service

import "tpfx-journal/internal/model"

// CurrentBalance combines the static starting balance with the month's net
// P&L. Purely additive: this is a floating display value, not a ledger, and
// there is no compounding or transaction replay.
func CurrentBalance(account model.Account, monthlyNetPnL float64) float64 {
	return account.Balance + monthlyNetPnL
}
