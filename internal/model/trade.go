package model

import "time"

// TradeType is the directional bias of a trade. It determines the sign
// convention for computed P&L.
type TradeType string

const (
	TradeTypeLong  TradeType = "LONG"
	TradeTypeShort TradeType = "SHORT"
)

// Valid reports whether t is one of the closed set of trade types.
func (t TradeType) Valid() bool {
	switch t {
	case TradeTypeLong, TradeTypeShort:
		return true
	}
	return false
}

type TradeStatus string

const (
	TradeStatusOpen    TradeStatus = "OPEN"
	TradeStatusClosed  TradeStatus = "CLOSED"
	TradeStatusPending TradeStatus = "PENDING"
)

// Valid reports whether s is one of the closed set of trade statuses.
func (s TradeStatus) Valid() bool {
	switch s {
	case TradeStatusOpen, TradeStatusClosed, TradeStatusPending:
		return true
	}
	return false
}

// Trade is a single journal entry. Trades are immutable once created; the
// store is append-only and never updates or deletes rows.
//
// EntryDate is a plain YYYY-MM-DD string, not a timestamp. The calendar and
// the monthly aggregations match on exact string equality, so the value must
// already be normalized when the trade is created.
type Trade struct {
	Seq        uint64      `gorm:"column:seq;autoIncrement;->" json:"-"`
	ID         string      `gorm:"primaryKey;type:uuid" json:"id"`
	Ticker     string      `gorm:"not null" json:"ticker"`
	EntryDate  string      `gorm:"type:varchar(10);not null;index" json:"entry_date"`
	ExitDate   *string     `gorm:"type:varchar(10)" json:"exit_date,omitempty"`
	Type       TradeType   `gorm:"type:varchar(5);not null" json:"type"`
	Status     TradeStatus `gorm:"type:varchar(7);not null" json:"status"`
	Quantity   float64     `gorm:"not null" json:"quantity"`
	EntryPrice float64     `gorm:"not null" json:"entry_price"`
	ExitPrice  *float64    `json:"exit_price,omitempty"`
	Pnl        *float64    `gorm:"column:pnl" json:"pnl,omitempty"`
	Notes      string      `json:"notes,omitempty"`
	Setup      string      `json:"setup,omitempty"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (Trade) TableName() string {
	return "trades"
}

// RealizedPnL returns the trade's P&L, treating a missing value as zero.
func (t Trade) RealizedPnL() float64 {
	if t.Pnl == nil {
		return 0
	}
	return *t.Pnl
}
