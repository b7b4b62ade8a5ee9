package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-monitor/news"
)

type NewsHandler struct {
	Provider news.Provider
}

type newsQuery struct {
	Limit   int    `form:"limit,default=10"`
	Symbols string `form:"symbols"`
}

func (h *NewsHandler) List(c *gin.Context) {
	var query newsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var symbols []string
	if query.Symbols != "" {
		symbols = strings.Split(query.Symbols, ",")
	}
	c.JSON(http.StatusOK, h.Provider.List(query.Limit, symbols))
}
