package ports

import "go.trai.ch/mountbar/internal/core/domain"

// ActionStore persists the helper's custom mount actions.
//
//go:generate mockgen -source=actions.go -destination=mocks/mock_actions.go -package=mocks
type ActionStore interface {
	// List returns upstream and user actions sorted by name.
	List() ([]domain.CustomAction, error)
	// Create adds a user action. It fails with domain.ErrActionExists.
	Create(action domain.CustomAction) error
	// Update replaces a user action. It fails with domain.ErrActionNotFound.
	Update(action domain.CustomAction) error
	// Delete removes a user action. It fails with domain.ErrActionNotFound.
	Delete(name string) error
}
