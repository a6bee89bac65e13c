package model

import (
	"time"

	"gorm.io/datatypes"
)

// Account is the trader's account settings. The engine treats it as read-only
// input; edits replace the whole value.
type Account struct {
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

// DefaultAccount is the account created on first run, before the trader has
// edited anything.
func DefaultAccount() Account {
	return Account{
		Name:     "FundedNext",
		Balance:  20000.00,
		Currency: "USD",
	}
}

// AccountSettings is the persisted form of Account: a single row holding the
// account record as a verbatim JSON document, restored as-is on startup.
type AccountSettings struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Document  datatypes.JSON `gorm:"not null" json:"document"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AccountSettings) TableName() string {
	return "account_settings"
}
