package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-monitor/market"
)

type MarketHandler struct {
	Provider market.Provider
}

func (h *MarketHandler) Quote(c *gin.Context) {
	data, err := h.Provider.Quote(c.Request.Context(), c.Param("symbol"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch stock data"})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *MarketHandler) Watchlist(c *gin.Context) {
	symbols := c.Query("symbols")
	if symbols == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symbols query parameter is required"})
		return
	}

	data, err := h.Provider.Watchlist(c.Request.Context(), strings.Split(symbols, ","))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Failed to fetch stock data"})
		return
	}
	c.JSON(http.StatusOK, data)
}
