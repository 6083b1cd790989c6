package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"componentgate/internal/types"
)

// ManifestComposer merges the manifests of several compilation units into
// one declaration source.
type ManifestComposer struct{}

func NewManifestComposer() ManifestComposer {
	return ManifestComposer{}
}

func (c ManifestComposer) Compose(ctx context.Context, manifests []types.Manifest) (types.Manifest, error) {
	if len(manifests) == 0 {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one manifest is required")
	}
	composed := types.Manifest{
		APIVersion: manifests[0].APIVersion,
		Package:    manifests[0].Package,
	}
	for _, manifest := range manifests {
		if manifest.APIVersion != composed.APIVersion {
			return types.Manifest{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("mixed manifest api versions: %s and %s", composed.APIVersion, manifest.APIVersion))
		}
		if manifest.Package != composed.Package {
			return types.Manifest{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("manifests target different packages: %s and %s", composed.Package, manifest.Package))
		}
		if err := mergeManifest(&composed, manifest); err != nil {
			return types.Manifest{}, err
		}
	}
	log.Ctx(ctx).Debug().Int("manifests", len(manifests)).Int("declarations", len(composed.Declarations)).Msg("manifests composed")
	return composed, nil
}

func mergeManifest(target *types.Manifest, incoming types.Manifest) error {
	knownTypes := map[string]struct{}{}
	for _, name := range target.Types {
		knownTypes[name] = struct{}{}
	}
	for _, name := range incoming.Types {
		if _, ok := knownTypes[name]; ok {
			continue
		}
		knownTypes[name] = struct{}{}
		target.Types = append(target.Types, name)
	}
	existing := map[string]struct{}{}
	for _, decl := range target.Declarations {
		existing[decl.Name] = struct{}{}
	}
	for _, decl := range incoming.Declarations {
		if _, found := existing[decl.Name]; found {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate declaration: %s", decl.Name))
		}
		existing[decl.Name] = struct{}{}
		target.Declarations = append(target.Declarations, decl)
	}
	return nil
}
