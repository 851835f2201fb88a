package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"tradelink-utils/pkg/models"
	"tradelink-utils/pkg/utils"
)

// HTTPErrorHandler renders every error escaping a handler as the standard
// ErrorResponse shape. CustomError carries its own status code; echo's own
// errors (404, 405, timeouts) keep theirs; anything else is a 500.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID, _ := c.Get("request_id").(string)

	status := http.StatusInternalServerError
	message := "Internal server error"

	var customErr *utils.CustomError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &customErr):
		status = customErr.Code
		message = customErr.Error()
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	}

	_ = c.JSON(status, models.ErrorResponse{
		Error:     statusSlug(status),
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now(),
	})
}

func statusSlug(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return "error"
	}
	return strings.ReplaceAll(strings.ToLower(text), " ", "_")
}
