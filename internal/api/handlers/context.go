package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradelink-utils/internal/logging"
	"tradelink-utils/internal/rolecontext"
	"tradelink-utils/pkg/models"
	"tradelink-utils/pkg/utils"
)

// GetContextHandler returns the role/location context for a session
func GetContextHandler(store *rolecontext.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.LogWithRequestID(requestIDFrom(c))

		sessionID := c.Param("session_id")
		if sessionID == "" {
			return utils.NewBadRequestError("Session ID is required")
		}

		entry, err := store.Get(c.Request().Context(), sessionID)
		if err != nil {
			logger.Error("Failed to fetch session context", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
			return utils.NewContextStoreError("failed to fetch session context")
		}

		return c.JSON(http.StatusOK, models.RoleContextResponse{
			SessionID: sessionID,
			Role:      entry.Role,
			Location:  entry.Location,
			UpdatedAt: entry.UpdatedAt,
		})
	}
}

// UpdateContextHandler updates a session's role and/or location
func UpdateContextHandler(store *rolecontext.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		logger := logging.LogWithRequestID(requestIDFrom(c))

		sessionID := c.Param("session_id")
		if sessionID == "" {
			return utils.NewBadRequestError("Session ID is required")
		}

		var req models.UpdateContextRequest
		if err := c.Bind(&req); err != nil {
			return utils.NewBadRequestError("Invalid request format")
		}

		if req.Role == "" && req.Location == nil {
			return utils.NewBadRequestError("Provide a role and/or a location to update")
		}

		if err := validate.Struct(&req); err != nil {
			return utils.NewValidationError(err.Error())
		}

		var (
			entry rolecontext.Entry
			err   error
		)

		if req.Role != "" {
			entry, err = store.SetRole(c.Request().Context(), sessionID, req.Role)
			if err != nil {
				logger.Error("Failed to update session role", map[string]interface{}{
					"session_id": sessionID,
					"error":      err.Error(),
				})
				return utils.NewContextStoreError("failed to update session context")
			}
		}

		if req.Location != nil {
			entry, err = store.SetLocation(c.Request().Context(), sessionID, *req.Location)
			if err != nil {
				logger.Error("Failed to update session location", map[string]interface{}{
					"session_id": sessionID,
					"error":      err.Error(),
				})
				return utils.NewContextStoreError("failed to update session context")
			}
		}

		logger.Info("Session context updated", map[string]interface{}{
			"session_id": sessionID,
			"role":       entry.Role,
			"suburb":     entry.Location.Suburb,
		})

		return c.JSON(http.StatusOK, models.RoleContextResponse{
			SessionID: sessionID,
			Role:      entry.Role,
			Location:  entry.Location,
			UpdatedAt: entry.UpdatedAt,
		})
	}
}
