package profile

import "github.com/tuvx-go/tuvx/errs"

// Handle is a stable, opaque reference into a Warehouse.
type Handle int

// Warehouse owns a set of Profiles keyed by "name|units".
type Warehouse struct {
	byKey   map[string]Handle
	entries []*Profile
}

// NewWarehouse returns an empty Warehouse.
func NewWarehouse() *Warehouse {
	return &Warehouse{byKey: make(map[string]Handle)}
}

// Add stores p and returns its handle; a duplicate "name|units" key fails.
func (w *Warehouse) Add(p *Profile) (Handle, error) {
	key := p.Key()
	if _, exists := w.byKey[key]; exists {
		return 0, errs.New(errs.MissingEntity, "profile.Warehouse.Add", "duplicate profile %q", key)
	}
	h := Handle(len(w.entries))
	w.entries = append(w.entries, p)
	w.byKey[key] = h
	return h, nil
}

// Exists reports whether a profile "name|units" has been added.
func (w *Warehouse) Exists(name, units string) bool {
	_, ok := w.byKey[name+"|"+units]
	return ok
}

// GetByName looks up a profile by name and units.
func (w *Warehouse) GetByName(name, units string) (*Profile, error) {
	h, ok := w.byKey[name+"|"+units]
	if !ok {
		return nil, errs.New(errs.MissingEntity, "profile.Warehouse.GetByName", "no profile %q|%s", name, units)
	}
	return w.entries[h], nil
}

// GetHandle returns the handle for a "name|units" key.
func (w *Warehouse) GetHandle(name, units string) (Handle, error) {
	h, ok := w.byKey[name+"|"+units]
	if !ok {
		return 0, errs.New(errs.MissingEntity, "profile.Warehouse.GetHandle", "no profile %q|%s", name, units)
	}
	return h, nil
}

// Get looks up a profile by handle.
func (w *Warehouse) Get(h Handle) (*Profile, error) {
	if int(h) < 0 || int(h) >= len(w.entries) {
		return nil, errs.New(errs.MissingEntity, "profile.Warehouse.Get", "invalid handle %d", h)
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

// Clear removes every stored profile.
func (w *Warehouse) Clear() {
	w.byKey = make(map[string]Handle)
	w.entries = nil
}
