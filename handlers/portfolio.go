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

type PortfolioHandler struct {
	Portfolios store.PortfolioStore
}

type CreatePortfolioInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdatePortfolioInput is a patch: nil fields are left as they are.
type UpdatePortfolioInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (h *PortfolioHandler) Create(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input CreatePortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	portfolio := models.Portfolio{
		ID:          uuid.NewString(),
		UserID:      user.ID,
		Name:        input.Name,
		Description: input.Description,
		Assets:      []models.PortfolioAsset{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := h.Portfolios.Insert(c.Request.Context(), &portfolio); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create portfolio"})
		return
	}

	c.JSON(http.StatusCreated, portfolio)
}

func (h *PortfolioHandler) List(c *gin.Context) {
	user := middleware.CurrentUser(c)
	portfolios, err := h.Portfolios.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolios"})
		return
	}
	c.JSON(http.StatusOK, portfolios)
}

func (h *PortfolioHandler) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	portfolio, err := h.Portfolios.Get(c.Request.Context(), user.ID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio"})
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

func (h *PortfolioHandler) Update(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var input UpdatePortfolioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patch := store.PortfolioPatch{Name: input.Name, Description: input.Description}
	portfolio, err := h.Portfolios.Update(c.Request.Context(), user.ID, c.Param("id"), patch)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update portfolio"})
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

func (h *PortfolioHandler) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.Portfolios.Delete(c.Request.Context(), user.ID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete portfolio"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PortfolioHandler) AddAsset(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var asset models.PortfolioAsset
	if err := c.ShouldBindJSON(&asset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if asset.ID == "" {
		asset.ID = uuid.NewString()
	}

	err := h.Portfolios.AddAsset(c.Request.Context(), user.ID, c.Param("id"), asset)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add asset"})
		return
	}
	c.JSON(http.StatusCreated, asset)
}

func (h *PortfolioHandler) ListAssets(c *gin.Context) {
	user := middleware.CurrentUser(c)
	portfolio, err := h.Portfolios.Get(c.Request.Context(), user.ID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portfolio not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch portfolio"})
		return
	}
	assets := portfolio.Assets
	if assets == nil {
		assets = []models.PortfolioAsset{}
	}
	c.JSON(http.StatusOK, assets)
}
