package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tradelink-utils/internal/catalog"
)

// TradesHandler lists the browsable trade categories
func TradesHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"trades": cat.Trades(),
		})
	}
}

// SuburbsHandler lists the selectable suburbs
func SuburbsHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"suburbs": cat.Suburbs(),
		})
	}
}

// TradiesHandler lists vetted professionals, filterable by trade and suburb
func TradiesHandler(cat *catalog.Catalog) echo.HandlerFunc {
	return func(c echo.Context) error {
		trade := c.QueryParam("trade")
		suburbID := c.QueryParam("suburb_id")

		return c.JSON(http.StatusOK, map[string]interface{}{
			"tradies": cat.Tradies(trade, suburbID),
		})
	}
}
