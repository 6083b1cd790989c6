package ports

import "componentgate/internal/types"

// ManifestPort reads one declaration manifest.
type ManifestPort interface {
	LoadManifest(path string) (types.Manifest, error)
}

// DeclarationSourcePort is the catalog of every declaration known to a run,
// independent of which round is processing it.
type DeclarationSourcePort interface {
	Declarations() []types.Declaration
	Lookup(id types.DeclarationID) (types.Declaration, bool)
	// CreatorsFor returns every creator declared for owner in catalog order.
	CreatorsFor(owner types.DeclarationID) []types.Declaration
}
