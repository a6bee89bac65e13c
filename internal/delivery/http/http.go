package http

import (
	"context"
	netHttp "net/http"
	"strconv"
	"time"

	"tpfx-journal/internal/service"

	goValidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type HttpAPIHandler struct {
	echo      *echo.Echo
	validator *goValidator.Validate
	service   *service.Service
}

func NewHttpAPIHandler(ctx context.Context, echo *echo.Echo, validator *goValidator.Validate, service *service.Service) *HttpAPIHandler {
	return &HttpAPIHandler{
		echo:      echo,
		validator: validator,
		service:   service,
	}
}

func (h *HttpAPIHandler) SetupRoutes() {
	base := h.echo.Group("/api")
	h.SetupTrades(base)
	h.SetupStats(base)
	h.SetupAccount(base)
	h.SetupAnalysis(base)
}

// monthParams reads the year/month query pair, defaulting to the current
// month when absent.
func monthParams(c echo.Context) (int, time.Month, error) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	if raw := c.QueryParam("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		year = parsed
	}
	if raw := c.QueryParam("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		if parsed < 1 || parsed > 12 {
			return 0, 0, echo.NewHTTPError(netHttp.StatusBadRequest, "month must be between 1 and 12")
		}
		month = time.Month(parsed)
	}
	return year, month, nil
}
