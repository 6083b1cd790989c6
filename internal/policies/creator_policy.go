package policies

import (
	"strings"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// CreatorValidator checks builders and factories against the catalog.
type CreatorValidator struct {
	Catalog ports.DeclarationSourcePort
	Types   ports.TypeUniversePort
}

func NewCreatorValidator(catalog ports.DeclarationSourcePort, universe ports.TypeUniversePort) CreatorValidator {
	return CreatorValidator{
		Catalog: catalog,
		Types:   universe,
	}
}

func (v CreatorValidator) Validate(creator types.Declaration) (types.ValidationReport, error) {
	if missing := unresolved(v.Types, creator.Requires, creator.Setters); len(missing) > 0 {
		return types.ValidationReport{}, &types.UnresolvedTypeError{Declaration: creator.ID(), Types: missing}
	}
	report := types.NewReportBuilder(creator.ID())
	v.validateOwner(creator, report)

	kind := creator.CreatorKind()
	if strings.TrimSpace(creator.BuildMethod) == "" {
		switch kind {
		case types.CreatorKindFactory:
			report.Errorf("%s must declare exactly one factory method", creator.Name)
		default:
			report.Errorf("%s must declare a build method", creator.Name)
		}
	}
	seen := map[string]struct{}{}
	for _, setter := range creator.Setters {
		if _, dup := seen[setter]; dup {
			if kind == types.CreatorKindFactory {
				report.Errorf("%s factory method takes %s more than once", creator.Name, setter)
			} else {
				report.Errorf("%s has more than one setter for %s", creator.Name, setter)
			}
			continue
		}
		seen[setter] = struct{}{}
	}

	// Only the later creators carry the duplicate error so it is reported once.
	if creators := v.Catalog.CreatorsFor(creator.OwnerID()); len(creators) > 1 && creators[0].Name != creator.Name {
		report.Errorf("%s has more than one creator: %s", creator.Owner, strings.Join(types.Names(creators), ", "))
	}
	return report.Build(), nil
}

func (v CreatorValidator) validateOwner(creator types.Declaration, report *types.ReportBuilder) {
	owner, ok := v.Catalog.Lookup(creator.OwnerID())
	if !ok {
		report.Errorf("%s creates %s, which is not declared", creator.Name, creator.Owner)
		return
	}
	switch creator.Role() {
	case types.RoleRootCreator:
		if owner.Role() != types.RoleRootComponent {
			report.Errorf("%s is a component creator but %s is not a component", creator.Name, owner.Name)
		}
	case types.RoleSubcomponentCreator:
		if owner.Role() != types.RoleSubcomponent {
			report.Errorf("%s is a subcomponent creator but %s is not a subcomponent", creator.Name, owner.Name)
		}
	default:
		report.Errorf("%s is not a creator", creator.Name)
	}
}

// unresolved returns the names in the given lists that the universe cannot
// see, deduplicated and in first-seen order.
func unresolved(universe ports.TypeUniversePort, lists ...[]string) []string {
	var missing []string
	seen := map[string]struct{}{}
	for _, list := range lists {
		for _, name := range list {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			if !universe.Resolvable(name) {
				missing = append(missing, name)
			}
		}
	}
	return missing
}
