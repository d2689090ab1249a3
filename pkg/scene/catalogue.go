package scene

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Info describes a built-in scene
type Info struct {
	Name        string
	Description string
	build       func() (*Scene, error)
}

var catalogue = map[string]Info{
	"default": {Name: "default", Description: "spheres of every material on a ground plane under a sky", build: NewDefaultScene},
	"shapes":  {Name: "shapes", Description: "box, torus, cone and capsule on a mirror floor", build: NewShapesScene},
	"mesh":    {Name: "mesh", Description: "flat and smooth icosphere mesh instances", build: NewMeshScene},
	"cornell": {Name: "cornell", Description: "Cornell box with plane walls and a spherical light", build: NewCornellScene},
}

// List returns the built-in scenes sorted by name
func List() []Info {
	infos := lo.Values(catalogue)
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Names returns the names of the built-in scenes in sorted order
func Names() []string {
	return lo.Map(List(), func(info Info, _ int) string { return info.Name })
}

// Load builds the named scene
func Load(name string) (*Scene, error) {
	info, ok := catalogue[name]
	if !ok {
		return nil, errors.Errorf("unknown scene %q (available: %v)", name, Names())
	}

	s, err := info.build()
	if err != nil {
		return nil, errors.Wrapf(err, "building scene %q", name)
	}
	return s, nil
}
