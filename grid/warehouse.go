package grid

import "github.com/tuvx-go/tuvx/errs"

// Handle is a stable, opaque reference into a Warehouse, valid for the
// warehouse's lifetime.
type Handle int

// Warehouse owns a set of Grids keyed by "name|units" and hands out stable
// handles. It is a slice plus an index map, the same shape used by every
// warehouse in this package family (profile, cross-section, quantum-yield,
// radiator).
type Warehouse struct {
	byKey   map[string]Handle
	entries []*Grid
}

// NewWarehouse returns an empty Warehouse.
func NewWarehouse() *Warehouse {
	return &Warehouse{byKey: make(map[string]Handle)}
}

// Add stores g and returns its handle. Adding a duplicate "name|units" key
// fails with MissingEntity (the warehouse already has an entity "missing"
// a free slot for it).
func (w *Warehouse) Add(g *Grid) (Handle, error) {
	key := g.Key()
	if _, exists := w.byKey[key]; exists {
		return 0, errs.New(errs.MissingEntity, "grid.Warehouse.Add", "duplicate grid %q", key)
	}
	h := Handle(len(w.entries))
	w.entries = append(w.entries, g)
	w.byKey[key] = h
	return h, nil
}

// Exists reports whether a grid "name|units" has been added.
func (w *Warehouse) Exists(name, units string) bool {
	_, ok := w.byKey[Key(name, units)]
	return ok
}

// GetByName looks up a grid by name and units.
func (w *Warehouse) GetByName(name, units string) (*Grid, error) {
	h, ok := w.byKey[Key(name, units)]
	if !ok {
		return nil, errs.New(errs.MissingEntity, "grid.Warehouse.GetByName", "no grid %q|%s", name, units)
	}
	return w.entries[h], nil
}

// GetHandle returns the handle for a "name|units" key.
func (w *Warehouse) GetHandle(name, units string) (Handle, error) {
	h, ok := w.byKey[Key(name, units)]
	if !ok {
		return 0, errs.New(errs.MissingEntity, "grid.Warehouse.GetHandle", "no grid %q|%s", name, units)
	}
	return h, nil
}

// Get looks up a grid by handle.
func (w *Warehouse) Get(h Handle) (*Grid, error) {
	if int(h) < 0 || int(h) >= len(w.entries) {
		return nil, errs.New(errs.MissingEntity, "grid.Warehouse.Get", "invalid handle %d", h)
	}
	return w.entries[h], nil
}

// Keys returns every stored "name|units" key in insertion order.
func (w *Warehouse) Keys() []string {
	keys := make([]string, len(w.entries))
	for key, h := range w.byKey {
		keys[h] = key
	}
	return keys
}

// Clear removes every stored grid.
func (w *Warehouse) Clear() {
	w.byKey = make(map[string]Handle)
	w.entries = nil
}
