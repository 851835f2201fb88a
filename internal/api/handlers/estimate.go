package handlers

import (
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"tradelink-utils/internal/estimator"
	"tradelink-utils/internal/logging"
	"tradelink-utils/internal/rolecontext"
	"tradelink-utils/pkg/models"
	"tradelink-utils/pkg/utils"
)

var validate = validator.New()

// EstimateHandler handles price estimation requests
func EstimateHandler(engine *estimator.Engine, providerName func() string, store *rolecontext.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		startTime := time.Now()
		requestID := requestIDFrom(c)
		logger := logging.LogWithRequestID(requestID)

		var req models.EstimateRequest
		if err := c.Bind(&req); err != nil {
			logger.Error("Failed to bind estimate request", map[string]interface{}{"error": err.Error()})
			return utils.NewBadRequestError("Invalid request format")
		}

		// Fill in the session's stored location when the request has none
		if req.Suburb == "" && req.SessionID != "" && store != nil {
			entry, err := store.Get(c.Request().Context(), req.SessionID)
			if err != nil {
				logger.Warn("Failed to read session context, using request as-is", map[string]interface{}{
					"session_id": req.SessionID,
					"error":      err.Error(),
				})
			} else {
				req.Suburb = entry.Location.Suburb
				if req.State == "" {
					req.State = entry.Location.State
				}
			}
		}

		if err := validate.Struct(&req); err != nil {
			logger.Error("Estimate request validation failed", map[string]interface{}{"error": err.Error()})
			return utils.NewValidationError(err.Error())
		}

		logger.Info("Processing estimate request", map[string]interface{}{
			"trade_category": req.TradeCategory,
			"suburb":         req.Suburb,
			"urgency":        req.Urgency,
		})

		estimate, err := engine.GeneratePriceEstimate(c.Request().Context(), req.JobRequest())
		if err != nil {
			if estimator.IsInputValidation(err) {
				logger.Error("Estimate input rejected", map[string]interface{}{"error": err.Error()})
				return utils.NewBadRequestError(err.Error())
			}

			logger.Error("Estimate generation failed", map[string]interface{}{"error": err.Error()})
			return utils.NewLLMError("failed to generate price estimate")
		}

		// Post-condition check before handing the estimate out
		if err := estimator.ValidateEstimate(estimate); err != nil {
			logger.Error("Generated estimate failed validation", map[string]interface{}{
				"job_id": estimate.JobID,
				"error":  err.Error(),
			})
			return utils.NewInternalServerError("estimate generation malfunctioned, please retry")
		}

		response := models.EstimateResponse{
			Success:        true,
			Estimate:       estimator.FormatEstimateForDisplay(estimate),
			ProcessingTime: time.Since(startTime),
			Provider:       providerName(),
			RequestID:      requestID,
		}

		logger.Info("Estimate request completed", map[string]interface{}{
			"job_id":          estimate.JobID,
			"source":          estimate.Source,
			"total_cost":      estimate.Costs.Total,
			"processing_time": time.Since(startTime),
		})

		return c.JSON(http.StatusOK, response)
	}
}

// requestIDFrom reads the ID assigned by the validation middleware, minting
// one only if the middleware did not run (tests hitting handlers directly).
func requestIDFrom(c echo.Context) string {
	if id, ok := c.Get("request_id").(string); ok && id != "" {
		return id
	}
	return utils.GenerateRequestID()
}
