package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// DescriptorFactory turns validated declarations into component descriptors,
// following subcomponent references through the catalog.
type DescriptorFactory struct {
	Catalog ports.DeclarationSourcePort
}

func NewDescriptorFactory(catalog ports.DeclarationSourcePort) DescriptorFactory {
	return DescriptorFactory{Catalog: catalog}
}

func (f DescriptorFactory) RootComponentDescriptor(ctx context.Context, decl types.Declaration) (types.ComponentDescriptor, error) {
	if decl.Role() != types.RoleRootComponent {
		return types.ComponentDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s is not a root component", decl.Name))
	}
	return f.describe(ctx, decl, true)
}

func (f DescriptorFactory) SubcomponentDescriptor(ctx context.Context, decl types.Declaration) (types.ComponentDescriptor, error) {
	if decl.Role() != types.RoleSubcomponent {
		return types.ComponentDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s is not a subcomponent", decl.Name))
	}
	return f.describe(ctx, decl, false)
}

func (f DescriptorFactory) describe(ctx context.Context, decl types.Declaration, root bool) (types.ComponentDescriptor, error) {
	if f.Catalog == nil {
		return types.ComponentDescriptor{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("descriptor factory requires a declaration catalog")
	}
	assert.NotEmpty(ctx, decl.Name, "declaration name must be set")
	descriptor, err := f.build(decl, map[types.DeclarationID]struct{}{})
	if err != nil {
		return types.ComponentDescriptor{}, err
	}
	descriptor.Root = root
	log.Ctx(ctx).Debug().Str("declaration", decl.Name).Int("children", len(descriptor.Children)).Msg("descriptor built")
	return descriptor, nil
}

func (f DescriptorFactory) build(decl types.Declaration, ancestors map[types.DeclarationID]struct{}) (types.ComponentDescriptor, error) {
	descriptor := types.ComponentDescriptor{
		ID:          decl.ID(),
		Name:        decl.Name,
		Scope:       decl.Scope,
		Modules:     decl.Modules,
		EntryPoints: decl.EntryPoints,
		Creator:     f.creatorFor(decl.ID()),
	}
	ancestors[decl.ID()] = struct{}{}
	defer delete(ancestors, decl.ID())

	seen := map[types.DeclarationID]struct{}{}
	for _, ref := range decl.Subcomponents {
		child, err := f.resolveReference(ref)
		if err != nil {
			return types.ComponentDescriptor{}, err
		}
		if _, dup := seen[child.ID()]; dup {
			continue
		}
		seen[child.ID()] = struct{}{}
		if _, cycle := ancestors[child.ID()]; cycle {
			descriptor.Children = append(descriptor.Children, types.ComponentDescriptor{
				ID:    child.ID(),
				Name:  child.Name,
				Scope: child.Scope,
				Cycle: true,
			})
			continue
		}
		childDescriptor, err := f.build(child, ancestors)
		if err != nil {
			return types.ComponentDescriptor{}, err
		}
		descriptor.Children = append(descriptor.Children, childDescriptor)
	}
	return descriptor, nil
}

// resolveReference maps a subcomponent or subcomponent creator name to the
// subcomponent declaration.
func (f DescriptorFactory) resolveReference(ref string) (types.Declaration, error) {
	target, ok := f.Catalog.Lookup(types.DeclarationID(ref))
	if ok && target.Role() == types.RoleSubcomponentCreator {
		target, ok = f.Catalog.Lookup(target.OwnerID())
	}
	if !ok || target.Role() != types.RoleSubcomponent {
		return types.Declaration{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("subcomponent %s not found", ref))
	}
	return target, nil
}

func (f DescriptorFactory) creatorFor(owner types.DeclarationID) *types.CreatorDescriptor {
	creators := f.Catalog.CreatorsFor(owner)
	if len(creators) == 0 {
		return nil
	}
	creator := creators[0]
	return &types.CreatorDescriptor{
		Name:        creator.Name,
		Kind:        creator.CreatorKind(),
		Setters:     creator.Setters,
		BuildMethod: creator.BuildMethod,
	}
}
