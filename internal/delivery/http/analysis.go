package http

import (
	"net/http"

	"tpfx-journal/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAnalysis(base *echo.Group) {
	v1 := base.Group("/v1/analysis")
	{
		v1.POST("", h.AnalyzeMonth)
	}
}

// AnalyzeMonth runs the AI coach over the requested month. AI-side failures
// (missing key, empty month, transport errors, a request already in flight)
// come back as fixed strings with a 200, never as errors; only a trade store
// failure is a 500.
func (h *HttpAPIHandler) AnalyzeMonth(c echo.Context) error {
	year, month, err := monthParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, dto.NewBadRequestResponse(err.Error()))
	}

	analysis, err := h.service.AnalysisService.AnalyzeMonth(c.Request().Context(), year, month)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.NewBaseResponse(http.StatusInternalServerError, err.Error(), nil))
	}
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("Analysis", analysis))
}
