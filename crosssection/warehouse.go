package crosssection

import "github.com/tuvx-go/tuvx/errs"

// Handle is a stable, opaque reference into a Warehouse.
type Handle int

// Warehouse owns a set of CrossSection objects keyed by name.
type Warehouse struct {
	byName  map[string]Handle
	entries []CrossSection
}

// NewWarehouse returns an empty Warehouse.
func NewWarehouse() *Warehouse {
	return &Warehouse{byName: make(map[string]Handle)}
}

// Add stores cs and returns its handle; a duplicate name fails.
func (w *Warehouse) Add(cs CrossSection) (Handle, error) {
	name := cs.Name()
	if _, exists := w.byName[name]; exists {
		return 0, errs.New(errs.MissingEntity, "crosssection.Warehouse.Add", "duplicate cross section %q", name)
	}
	h := Handle(len(w.entries))
	w.entries = append(w.entries, cs)
	w.byName[name] = h
	return h, nil
}

// GetByName looks up a cross section by name.
func (w *Warehouse) GetByName(name string) (CrossSection, error) {
	h, ok := w.byName[name]
	if !ok {
		return nil, errs.New(errs.MissingEntity, "crosssection.Warehouse.GetByName", "no cross section %q", name)
	}
	return w.entries[h], nil
}

// Get looks up a cross section by handle.
func (w *Warehouse) Get(h Handle) (CrossSection, error) {
	if int(h) < 0 || int(h) >= len(w.entries) {
		return nil, errs.New(errs.MissingEntity, "crosssection.Warehouse.Get", "invalid handle %d", h)
	}
	return w.entries[h], nil
}

// Exists reports whether a cross section by that name has been added.
func (w *Warehouse) Exists(name string) bool {
	_, ok := w.byName[name]
	return ok
}
