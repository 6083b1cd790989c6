package adapters

import (
	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// ManifestCatalog indexes a composed manifest's declarations by identity and
// by creator owner.
type ManifestCatalog struct {
	declarations []types.Declaration
	byID         map[types.DeclarationID]types.Declaration
	creators     map[types.DeclarationID][]types.Declaration
}

func NewManifestCatalog(manifest types.Manifest) ManifestCatalog {
	catalog := ManifestCatalog{
		declarations: append([]types.Declaration(nil), manifest.Declarations...),
		byID:         map[types.DeclarationID]types.Declaration{},
		creators:     map[types.DeclarationID][]types.Declaration{},
	}
	for _, decl := range manifest.Declarations {
		if _, ok := catalog.byID[decl.ID()]; ok {
			continue
		}
		catalog.byID[decl.ID()] = decl
		if decl.Role().IsCreator() {
			catalog.creators[decl.OwnerID()] = append(catalog.creators[decl.OwnerID()], decl)
		}
	}
	return catalog
}

func (c ManifestCatalog) Declarations() []types.Declaration {
	return append([]types.Declaration(nil), c.declarations...)
}

func (c ManifestCatalog) Lookup(id types.DeclarationID) (types.Declaration, bool) {
	decl, ok := c.byID[id]
	return decl, ok
}

func (c ManifestCatalog) CreatorsFor(owner types.DeclarationID) []types.Declaration {
	return append([]types.Declaration(nil), c.creators[owner]...)
}

var _ ports.DeclarationSourcePort = ManifestCatalog{}
