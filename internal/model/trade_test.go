package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTradeEnumsAreClosed(t *testing.T) {
	assert.True(t, TradeTypeLong.Valid())
	assert.True(t, TradeTypeShort.Valid())
	assert.False(t, TradeType("BUY").Valid())

	assert.True(t, TradeStatusOpen.Valid())
	assert.True(t, TradeStatusClosed.Valid())
	assert.True(t, TradeStatusPending.Valid())
	assert.False(t, TradeStatus("DELETED").Valid())
}

func TestRealizedPnLTreatsMissingAsZero(t *testing.T) {
	assert.Zero(t, Trade{}.RealizedPnL())

	pnl := -42.5
	assert.Equal(t, -42.5, Trade{Pnl: &pnl}.RealizedPnL())
}
