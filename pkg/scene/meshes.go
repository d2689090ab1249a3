package scene

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/liliilli/SH-RayTracer-sub000/pkg/geometry"
)

// MeshLibrary maps mesh handles to built meshes. Several instances may share
// one mesh and its face tree.
type MeshLibrary struct {
	meshes map[string]*geometry.Mesh
}

// NewMeshLibrary creates an empty library
func NewMeshLibrary() *MeshLibrary {
	return &MeshLibrary{meshes: make(map[string]*geometry.Mesh)}
}

// Register adds a mesh under handle
func (l *MeshLibrary) Register(handle string, mesh *geometry.Mesh) error {
	if handle == "" {
		return errors.New("mesh handle must not be empty")
	}
	if mesh == nil {
		return errors.Errorf("mesh %q is nil", handle)
	}
	if _, exists := l.meshes[handle]; exists {
		return errors.Errorf("mesh %q already registered", handle)
	}
	l.meshes[handle] = mesh
	return nil
}

// Resolve looks up a mesh by handle
func (l *MeshLibrary) Resolve(handle string) (*geometry.Mesh, error) {
	mesh, ok := l.meshes[handle]
	if !ok {
		return nil, errors.Errorf("unknown mesh %q", handle)
	}
	return mesh, nil
}

// Handles returns the registered handles in sorted order
func (l *MeshLibrary) Handles() []string {
	handles := lo.Keys(l.meshes)
	sort.Strings(handles)
	return handles
}
