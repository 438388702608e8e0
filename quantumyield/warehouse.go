package quantumyield

import "github.com/tuvx-go/tuvx/errs"

// Handle is a stable, opaque reference into a Warehouse.
type Handle int

// Warehouse owns a set of QuantumYield objects keyed by name.
type Warehouse struct {
	byName  map[string]Handle
	entries []QuantumYield
}

// NewWarehouse returns an empty Warehouse.
func NewWarehouse() *Warehouse {
	return &Warehouse{byName: make(map[string]Handle)}
}

// Add stores qy and returns its handle; a duplicate name fails.
func (w *Warehouse) Add(qy QuantumYield) (Handle, error) {
	name := qy.Name()
	if _, exists := w.byName[name]; exists {
		return 0, errs.New(errs.MissingEntity, "quantumyield.Warehouse.Add", "duplicate quantum yield %q", name)
	}
	h := Handle(len(w.entries))
	w.entries = append(w.entries, qy)
	w.byName[name] = h
	return h, nil
}

// GetByName looks up a quantum yield by name.
func (w *Warehouse) GetByName(name string) (QuantumYield, error) {
	h, ok := w.byName[name]
	if !ok {
		return nil, errs.New(errs.MissingEntity, "quantumyield.Warehouse.GetByName", "no quantum yield %q", name)
	}
	return w.entries[h], nil
}

// Get looks up a quantum yield by handle.
func (w *Warehouse) Get(h Handle) (QuantumYield, error) {
	if int(h) < 0 || int(h) >= len(w.entries) {
		return nil, errs.New(errs.MissingEntity, "quantumyield.Warehouse.Get", "invalid handle %d", h)
	}
	return w.entries[h], nil
}

// Exists reports whether a quantum yield by that name has been added.
func (w *Warehouse) Exists(name string) bool {
	_, ok := w.byName[name]
	return ok
}
