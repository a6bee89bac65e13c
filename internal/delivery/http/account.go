package http

import (
	"net/http"

	"tpfx-journal/internal/dto"
	"tpfx-journal/internal/model"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAccount(base *echo.Group) {
	v1 := base.Group("/v1/account")
	{
		v1.GET("", h.GetAccount)
		v1.PUT("", h.UpdateAccount)
	}
}

// GetAccount returns the account plus its live balance for the requested
// month (default: current month).
func (h *HttpAPIHandler) GetAccount(c echo.Context) error {
	year, month, err := monthParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	valuation, err := h.service.JournalService.AccountValuation(c.Request().Context(), year, month)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Account", valuation))
}

func (h *HttpAPIHandler) UpdateAccount(c echo.Context) error {
	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	account := model.Account{
		Name:     req.Name,
		Balance:  req.Balance,
		Currency: req.Currency,
	}
	if err := h.service.JournalService.UpdateAccount(c.Request().Context(), account); err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Account updated", account))
}
