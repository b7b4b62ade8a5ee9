// Package store is the data-access layer over the three Mongo collections.
// Every method takes the request context and returns ErrNotFound or
// ErrConflict where the HTTP layer needs to distinguish those outcomes;
// anything else is a transport failure.
package store

import (
	"context"
	"errors"

	"portfolio-monitor/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("already exists")
)

// listCap bounds every per-user listing.
const listCap = 1000

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// PortfolioPatch carries a partial update; nil fields are left untouched.
type PortfolioPatch struct {
	Name        *string
	Description *string
}

type PortfolioStore interface {
	Insert(ctx context.Context, p *models.Portfolio) error
	ListByUser(ctx context.Context, userID string) ([]models.Portfolio, error)
	// Get and the mutations below filter on both id and owner, so a
	// portfolio that exists but belongs to someone else reads as absent.
	Get(ctx context.Context, userID, id string) (*models.Portfolio, error)
	Update(ctx context.Context, userID, id string, patch PortfolioPatch) (*models.Portfolio, error)
	Delete(ctx context.Context, userID, id string) error
	AddAsset(ctx context.Context, userID, id string, asset models.PortfolioAsset) error
}

type AlertStore interface {
	Insert(ctx context.Context, a *models.Alert) error
	ListByUser(ctx context.Context, userID string) ([]models.Alert, error)
	Delete(ctx context.Context, userID, id string) error
}
