package http

import (
	"net/http"

	"tpfx-journal/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupStats(base *echo.Group) {
	v1 := base.Group("/v1")
	{
		v1.GET("/calendar", h.GetCalendar)
		v1.GET("/stats/monthly", h.GetMonthlyStats)
		v1.GET("/stats/dashboard", h.GetDashboardStats)
	}
}

func (h *HttpAPIHandler) GetCalendar(c echo.Context) error {
	year, month, err := monthParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	grid, err := h.service.JournalService.MonthGrid(c.Request().Context(), year, month)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Calendar", grid))
}

func (h *HttpAPIHandler) GetMonthlyStats(c echo.Context) error {
	year, month, err := monthParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	stats, err := h.service.JournalService.MonthlyStats(c.Request().Context(), year, month)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Monthly stats", stats))
}

func (h *HttpAPIHandler) GetDashboardStats(c echo.Context) error {
	stats, err := h.service.JournalService.DashboardStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Dashboard stats", stats))
}
