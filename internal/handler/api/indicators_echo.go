package api

import (
	"net/http"

	"MacroPulse/internal/usecase"
	xhttp "MacroPulse/pkg/http"
	xlogger "MacroPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// IndicatorsHandler maps each aggregator operation to one route. Every
// fetch failure becomes the same 503 body; "no upcoming event" is a
// 200 with a null payload, never an error.
type IndicatorsHandler struct {
	logger *xlogger.Logger
	agg    *usecase.Aggregator
}

func NewIndicatorsHandler(logger *xlogger.Logger, agg *usecase.Aggregator) *IndicatorsHandler {
	return &IndicatorsHandler{logger: logger, agg: agg}
}

func (h *IndicatorsHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)

	g := e.Group("/api/v1")
	g.GET("/market_indices", h.MarketIndices)
	g.GET("/latest_macro", h.LatestMacro)
	g.GET("/pce", h.PCE)
	g.GET("/fed_rate", h.FedRate)
	g.GET("/vix", h.VIX)
	g.GET("/fomc_next", h.FOMCNext)
	g.GET("/powell_speech", h.PowellSpeech)
}

func (h *IndicatorsHandler) MarketIndices(c echo.Context) error {
	res, err := h.agg.MarketIndices(c.Request().Context())
	if err != nil {
		h.logger.Error("market_indices unavailable", xlogger.Error(err))
		return xhttp.ServiceUnavailableError()
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *IndicatorsHandler) LatestMacro(c echo.Context) error {
	res, err := h.agg.LatestMacro(c.Request().Context())
	if err != nil {
		h.logger.Error("latest_macro unavailable", xlogger.Error(err))
		return xhttp.ServiceUnavailableError()
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *IndicatorsHandler) PCE(c echo.Context) error {
	res, err := h.agg.PCE(c.Request().Context())
	if err != nil {
		h.logger.Error("pce unavailable", xlogger.Error(err))
		return xhttp.ServiceUnavailableError()
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *IndicatorsHandler) FedRate(c echo.Context) error {
	res, err := h.agg.FedRate(c.Request().Context())
	if err != nil {
		h.logger.Error("fed_rate unavailable", xlogger.Error(err))
		return xhttp.ServiceUnavailableError()
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *IndicatorsHandler) VIX(c echo.Context) error {
	res, err := h.agg.VIX(c.Request().Context())
	if err != nil {
		h.logger.Error("vix unavailable", xlogger.Error(err))
		return xhttp.ServiceUnavailableError()
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *IndicatorsHandler) FOMCNext(c echo.Context) error {
	res, err := h.agg.FOMCNext(c.Request().Context())
	if err != nil {
		h.logger.Error("fomc_next unavailable", xlogger.Error(err))
		return xhttp.ServiceUnavailableError()
	}
	// res is nil when no meeting is upcoming; the body is literal null
	return xhttp.SuccessResponse(c, res)
}

func (h *IndicatorsHandler) PowellSpeech(c echo.Context) error {
	res, err := h.agg.PowellSpeech(c.Request().Context())
	if err != nil {
		h.logger.Error("powell_speech unavailable", xlogger.Error(err))
		return xhttp.ServiceUnavailableError()
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *IndicatorsHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, xhttp.HealthResponse{Status: "ok"})
}
