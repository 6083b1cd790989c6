package adapters

import (
	"sort"
	"strings"
	"sync"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// TypeUniverse is the set of type names the compiler can currently see.
// Registered names stay visible for the rest of the run.
type TypeUniverse struct {
	mu    sync.RWMutex
	names map[string]struct{}
}

func NewTypeUniverse(names ...string) *TypeUniverse {
	universe := &TypeUniverse{names: map[string]struct{}{}}
	for _, name := range names {
		universe.Register(name)
	}
	return universe
}

// TypeUniverseFromManifest seeds a universe with the manifest's declared
// types, every declaration name and every type a module provides. Generated
// component types are not included; they appear once generated.
func TypeUniverseFromManifest(manifest types.Manifest) *TypeUniverse {
	universe := NewTypeUniverse(manifest.Types...)
	for _, decl := range manifest.Declarations {
		universe.Register(decl.Name)
		for _, provided := range decl.ProvidedTypes() {
			universe.Register(provided)
		}
	}
	return universe
}

func (u *TypeUniverse) Resolvable(name string) bool {
	u.mu.RLock()
	defer u.mu.RUnlock()
	_, ok := u.names[strings.TrimSpace(name)]
	return ok
}

func (u *TypeUniverse) Register(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.names[name] = struct{}{}
}

func (u *TypeUniverse) Size() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.names)
}

func (u *TypeUniverse) Names() []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	names := make([]string, 0, len(u.names))
	for name := range u.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var _ ports.TypeUniversePort = (*TypeUniverse)(nil)
