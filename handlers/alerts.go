package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-monitor/middleware"
	"portfolio-monitor/models"
	"portfolio-monitor/store"
)

type AlertHandler struct {
	Alerts store.AlertStore
}

type CreateAlertInput struct {
	AssetID   string `json:"asset_id" binding:"required"`
	Condition string `json:"condition" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

func (h *AlertHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input CreateAlertInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The condition is stored verbatim; nothing here evaluates it.
	alert := models.Alert{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		AssetID:   input.AssetID,
		Condition: input.Condition,
		Message:   input.Message,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.Alerts.Insert(c.Request.Context(), &alert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create alert"})
		return
	}
	c.JSON(http.StatusCreated, alert)
}

func (h *AlertHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	alerts, err := h.Alerts.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *AlertHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.Alerts.Delete(c.Request.Context(), user.ID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete alert"})
		return
	}
	c.Status(http.StatusNoContent)
}
