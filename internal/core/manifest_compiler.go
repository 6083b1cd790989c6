package core

import (
	"context"
	"fmt"
	"go/token"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"componentgate/internal/types"
)

const manifestAPIVersion = "v1"

// ManifestCompiler checks that a composed manifest is well formed enough to
// be processed. Declaration semantics are left to the validators.
type ManifestCompiler struct{}

func NewManifestCompiler() ManifestCompiler {
	return ManifestCompiler{}
}

func (c ManifestCompiler) ValidateManifest(ctx context.Context, manifest types.Manifest) error {
	assert.NotEmpty(ctx, manifest.APIVersion, "api_version must be set")
	if manifest.APIVersion != manifestAPIVersion {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported manifest api_version: %s", manifest.APIVersion))
	}
	if !token.IsIdentifier(manifest.Package) {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("package must be a Go identifier: %q", manifest.Package))
	}
	if len(manifest.Declarations) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest declares nothing")
	}
	names := map[string]struct{}{}
	for _, decl := range manifest.Declarations {
		if err := validateDeclaration(decl); err != nil {
			return err
		}
		if _, dup := names[decl.Name]; dup {
			return errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg(fmt.Sprintf("duplicate declaration: %s", decl.Name))
		}
		names[decl.Name] = struct{}{}
	}
	log.Ctx(ctx).Debug().Int("declarations", len(manifest.Declarations)).Msg("manifest validated")
	return nil
}

func validateDeclaration(decl types.Declaration) error {
	if strings.TrimSpace(decl.Name) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("declaration name must not be empty")
	}
	role, ok := types.RoleForMarker(decl.Marker)
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("declaration %s has unknown marker %q", decl.Name, decl.Marker))
	}
	if role.IsCreator() && strings.TrimSpace(decl.Owner) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("creator %s must name its owner", decl.Name))
	}
	if role.IsComponent() && decl.Owner != "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("component %s must not name an owner", decl.Name))
	}
	return nil
}
