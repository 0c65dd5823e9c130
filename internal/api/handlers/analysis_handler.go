package handlers

import (
	"errors"

	"eko-analiz/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// GetAnalysis godoc
// @Summary Aggregate dashboard payload
// @Description Firm ranking, chart series and default recalculation parameters, assembled fresh per request
// @Tags analysis
// @Produce json
// @Success 200 {object} dto.AnalysisResponse
// @Failure 500 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/analiz [get]
func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	result, err := h.analysisService.FetchAnalysis(c.Context())
	if err == nil {
		return c.JSON(result)
	}

	requestID, _ := c.Locals("requestid").(string)

	var cfgErr *service.ConfigError
	if errors.As(err, &cfgErr) {
		h.logger.Warn("Analysis request refused: configuration missing",
			zap.Strings("missing", cfgErr.Missing),
			zap.String("request_id", requestID),
		)
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":      "configuration_missing",
			"missing":    cfgErr.Missing,
			"reason":     cfgErr.Error(),
			"request_id": requestID,
		})
	}

	var stepErr *service.StepError
	if errors.As(err, &stepErr) {
		h.logger.Error("Analysis query failed",
			zap.String("step", stepErr.Step),
			zap.Error(stepErr.Err),
			zap.String("request_id", requestID),
		)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error":      "downstream_query_failed",
			"step":       stepErr.Step,
			"reason":     stepErr.Err.Error(),
			"request_id": requestID,
		})
	}

	// Full detail stays in the log; the client only gets a generic
	// message.
	h.logger.Error("Unexpected analysis failure",
		zap.Error(err),
		zap.String("request_id", requestID),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":      "internal",
		"reason":     "unexpected error",
		"request_id": requestID,
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *AnalysisHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
