package handlers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"portfolio-monitor/models"
	"portfolio-monitor/store"
)

// In-memory stand-ins for the Mongo stores, mirroring their ownership and
// sentinel-error semantics.

type memUserStore struct {
	mu    sync.Mutex
	users []*models.User
}

func (s *memUserStore) Insert(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return fmt.Errorf("insert user %q: %w", user.Username, store.ErrConflict)
		}
	}
	clone := *user
	s.users = append(s.users, &clone)
	return nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memUserStore) setDisabled(username string, disabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Username == username {
			u.Disabled = disabled
		}
	}
}

type memPortfolioStore struct {
	mu         sync.Mutex
	portfolios map[string]*models.Portfolio
}

func newMemPortfolioStore() *memPortfolioStore {
	return &memPortfolioStore{portfolios: map[string]*models.Portfolio{}}
}

func (s *memPortfolioStore) Insert(_ context.Context, p *models.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *p
	s.portfolios[p.ID] = &clone
	return nil
}

func (s *memPortfolioStore) ListByUser(_ context.Context, userID string) ([]models.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Portfolio{}
	for _, p := range s.portfolios {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (s *memPortfolioStore) Get(_ context.Context, userID, id string) (*models.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok || p.UserID != userID {
		return nil, store.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func (s *memPortfolioStore) Update(_ context.Context, userID, id string, patch store.PortfolioPatch) (*models.Portfolio, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok || p.UserID != userID {
		return nil, store.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = time.Now().UTC()
	clone := *p
	return &clone, nil
}

func (s *memPortfolioStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok || p.UserID != userID {
		return store.ErrNotFound
	}
	delete(s.portfolios, id)
	return nil
}

func (s *memPortfolioStore) AddAsset(_ context.Context, userID, id string, asset models.PortfolioAsset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.portfolios[id]
	if !ok || p.UserID != userID {
		return store.ErrNotFound
	}
	p.Assets = append(p.Assets, asset)
	p.UpdatedAt = time.Now().UTC()
	return nil
}

type memAlertStore struct {
	mu     sync.Mutex
	alerts map[string]*models.Alert
}

func newMemAlertStore() *memAlertStore {
	return &memAlertStore{alerts: map[string]*models.Alert{}}
}

func (s *memAlertStore) Insert(_ context.Context, a *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *a
	s.alerts[a.ID] = &clone
	return nil
}

func (s *memAlertStore) ListByUser(_ context.Context, userID string) ([]models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Alert{}
	for _, a := range s.alerts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *memAlertStore) Delete(_ context.Context, userID, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok || a.UserID != userID {
		return store.ErrNotFound
	}
	delete(s.alerts, id)
	return nil
}
