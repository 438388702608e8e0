package radiator

import (
	"github.com/tuvx-go/tuvx/errs"
	"github.com/tuvx-go/tuvx/grid"
	"github.com/tuvx-go/tuvx/profile"
)

// Handle is a stable, opaque reference into a Warehouse.
type Handle int

// Warehouse owns a set of Radiator objects keyed by name.
type Warehouse struct {
	byName  map[string]Handle
	entries []Radiator
}

// NewWarehouse returns an empty Warehouse.
func NewWarehouse() *Warehouse {
	return &Warehouse{byName: make(map[string]Handle)}
}

// Add stores r and returns its handle; a duplicate name fails.
func (w *Warehouse) Add(r Radiator) (Handle, error) {
	name := r.Name()
	if _, exists := w.byName[name]; exists {
		return 0, errs.New(errs.MissingEntity, "radiator.Warehouse.Add", "duplicate radiator %q", name)
	}
	h := Handle(len(w.entries))
	w.entries = append(w.entries, r)
	w.byName[name] = h
	return h, nil
}

// GetByName looks up a radiator by name.
func (w *Warehouse) GetByName(name string) (Radiator, error) {
	h, ok := w.byName[name]
	if !ok {
		return nil, errs.New(errs.MissingEntity, "radiator.Warehouse.GetByName", "no radiator %q", name)
	}
	return w.entries[h], nil
}

// All returns every stored radiator in insertion order.
func (w *Warehouse) All() []Radiator {
	return w.entries
}

// UpdateAndCombine calls UpdateState on every stored radiator and combines
// the results into a single State via the sec.4.6 mixing rule, in
// insertion order.
func (w *Warehouse) UpdateAndCombine(grids *grid.Warehouse, profiles *profile.Warehouse) (*State, error) {
	combined := NewState(0, 0)
	for _, r := range w.entries {
		state, err := r.UpdateState(grids, profiles)
		if err != nil {
			return nil, err
		}
		if err := combined.Accumulate(state); err != nil {
			return nil, err
		}
	}
	return combined, nil
}
