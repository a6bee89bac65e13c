package dto

import (
	"net/http"

	"tpfx-journal/internal/model"
)

type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusBadRequest, message, nil)
}

func NewSuccessResponse(message string, data interface{}) *BaseResponse {
	return NewBaseResponse(http.StatusOK, message, data)
}

// CreateTradeRequest is the form-entry payload for logging a new trade.
// Validation lives here at the boundary; the engine assumes well-formed values.
type CreateTradeRequest struct {
	Ticker     string   `json:"ticker" validate:"required"`
	EntryDate  string   `json:"entry_date" validate:"omitempty,datetime=2006-01-02"`
	ExitDate   *string  `json:"exit_date" validate:"omitempty,datetime=2006-01-02"`
	Type       string   `json:"type" validate:"required,oneof=LONG SHORT"`
	Status     string   `json:"status" validate:"required,oneof=OPEN CLOSED PENDING"`
	Quantity   float64  `json:"quantity" validate:"gte=0"`
	EntryPrice float64  `json:"entry_price" validate:"gte=0"`
	ExitPrice  *float64 `json:"exit_price" validate:"omitempty,gte=0"`
	Pnl        *float64 `json:"pnl"`
	Notes      string   `json:"notes"`
	Setup      string   `json:"setup"`
}

// UpdateAccountRequest replaces the account settings wholesale.
type UpdateAccountRequest struct {
	Name     string  `json:"name" validate:"required"`
	Balance  float64 `json:"balance" validate:"gte=0"`
	Currency string  `json:"currency" validate:"required,len=3"`
}

// TradeLogRow is a trade plus the derived trade-log columns shown in the
// journal table.
type TradeLogRow struct {
	model.Trade
	EntryTotal    float64 `json:"entry_total"`
	ExitTotal     float64 `json:"exit_total"`
	ReturnPercent float64 `json:"return_percent"`
}

// AccountValuation combines the stored account with the live balance derived
// from the current month's net P&L.
type AccountValuation struct {
	Account        model.Account `json:"account"`
	MonthlyNetPnL  float64       `json:"monthly_net_pnl"`
	CurrentBalance float64       `json:"current_balance"`
}
