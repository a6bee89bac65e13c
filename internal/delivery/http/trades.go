package http

import (
	"net/http"

	"tpfx-journal/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupTrades(base *echo.Group) {
	v1 := base.Group("/v1/trades")
	{
		v1.POST("", h.CreateTrade)
		v1.GET("", h.ListTrades)
	}
}

func (h *HttpAPIHandler) CreateTrade(c echo.Context) error {
	var req dto.CreateTradeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	trade, err := h.service.JournalService.CreateTrade(c.Request().Context(), req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusCreated, dto.NewBaseResponse(http.StatusCreated, "Trade logged", trade))
}

func (h *HttpAPIHandler) ListTrades(c echo.Context) error {
	rows, err := h.service.JournalService.ListTrades(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Trades", rows))
}
