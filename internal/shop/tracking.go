package shop

import (
	"strings"

	"github.com/rogerio-castellano/grillaway/internal/models"
)

// Tracking answers order lookups.
type Tracking struct {
	state *State
}

func NewTracking(state *State) *Tracking {
	return &Tracking{state: state}
}

// FindByID matches id exactly after trimming surrounding whitespace.
func (t *Tracking) FindByID(id string) (models.Order, error) {
	id = strings.TrimSpace(id)

	t.state.mu.Lock()
	defer t.state.mu.Unlock()

	for _, o := range t.state.Orders {
		if o.ID == id {
			return cloneOrder(o), nil
		}
	}
	return models.Order{}, &NotFoundError{Kind: "order", ID: id}
}

// List returns every order, oldest first.
func (t *Tracking) List() []models.Order {
	t.state.mu.Lock()
	defer t.state.mu.Unlock()

	out := make([]models.Order, len(t.state.Orders))
	for i, o := range t.state.Orders {
		out[i] = cloneOrder(o)
	}
	return out
}
