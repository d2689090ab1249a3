package material

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Registry maps material identifiers to materials. Scenes resolve every
// identifier once while they are built; render workers only ever see the
// resolved pointers.
type Registry struct {
	materials map[string]*Material
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{materials: make(map[string]*Material)}
}

// Register adds a material under id
func (r *Registry) Register(id string, m *Material) error {
	if id == "" {
		return errors.New("material id must not be empty")
	}
	if m == nil {
		return errors.Errorf("material %q is nil", id)
	}
	if _, exists := r.materials[id]; exists {
		return errors.Errorf("material %q already registered", id)
	}
	r.materials[id] = m
	return nil
}

// MustRegister is like Register but panics on error. Intended for built-in
// scene tables.
func (r *Registry) MustRegister(id string, m *Material) *Material {
	if err := r.Register(id, m); err != nil {
		panic(err)
	}
	return m
}

// Resolve looks up a material by id
func (r *Registry) Resolve(id string) (*Material, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, errors.Errorf("unknown material %q", id)
	}
	return m, nil
}

// IDs returns the registered identifiers in sorted order
func (r *Registry) IDs() []string {
	ids := lo.Keys(r.materials)
	sort.Strings(ids)
	return ids
}

// Len returns the number of registered materials
func (r *Registry) Len() int {
	return len(r.materials)
}
