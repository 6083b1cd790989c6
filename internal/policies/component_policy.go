package policies

import (
	"strings"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// ComponentValidator checks components and subcomponents. A referenced
// subcomponent that breaks the local rules makes the referencing report
// dirty through a subreport, so one report captures the whole reachable
// hierarchy.
type ComponentValidator struct {
	Catalog ports.DeclarationSourcePort
	Types   ports.TypeUniversePort
}

func NewComponentValidator(catalog ports.DeclarationSourcePort, universe ports.TypeUniversePort) ComponentValidator {
	return ComponentValidator{
		Catalog: catalog,
		Types:   universe,
	}
}

func (v ComponentValidator) Validate(decl types.Declaration, subcomponents []types.Declaration, creators []types.Declaration) (types.ComponentValidationReport, error) {
	if missing := unresolved(v.Types, decl.Requires); len(missing) > 0 {
		return types.ComponentValidationReport{}, &types.UnresolvedTypeError{Declaration: decl.ID(), Types: missing}
	}
	walk := &componentWalk{
		validator:  v,
		references: newReferenceIndex(subcomponents, creators, v.Catalog),
		reports:    map[types.DeclarationID]types.ValidationReport{},
		inProgress: map[types.DeclarationID]struct{}{},
	}
	return walk.validate(decl), nil
}

type componentWalk struct {
	validator  ComponentValidator
	references referenceIndex
	reports    map[types.DeclarationID]types.ValidationReport
	inProgress map[types.DeclarationID]struct{}
}

func (w *componentWalk) validate(decl types.Declaration) types.ComponentValidationReport {
	w.inProgress[decl.ID()] = struct{}{}
	defer delete(w.inProgress, decl.ID())

	report := types.NewReportBuilder(decl.ID())
	validateModules(decl, report)
	for _, entry := range decl.EntryPoints {
		if strings.TrimSpace(entry) == "" {
			report.Errorf("%s declares an empty entry point", decl.Name)
		}
	}

	var referenced []types.DeclarationID
	seen := map[types.DeclarationID]struct{}{}
	for _, ref := range decl.Subcomponents {
		target, ok := w.references.resolve(ref)
		if !ok {
			report.Errorf("%s references %s, which is not a subcomponent", decl.Name, ref)
			continue
		}
		if _, dup := seen[target]; dup {
			continue
		}
		seen[target] = struct{}{}
		referenced = append(referenced, target)
	}

	for _, id := range referenced {
		child, ok := w.subreport(id)
		if ok && !child.IsClean() {
			report.AddSubreport(child)
		}
	}
	return types.ComponentValidationReport{
		Report:                  report.Build(),
		ReferencedSubcomponents: referenced,
	}
}

// subreport validates a referenced subcomponent once per walk. Declarations
// already on the walk path, missing from the catalog or not yet resolvable
// are skipped; they are judged when validated in their own right.
func (w *componentWalk) subreport(id types.DeclarationID) (types.ValidationReport, bool) {
	if report, ok := w.reports[id]; ok {
		return report, true
	}
	if _, cycle := w.inProgress[id]; cycle {
		return types.ValidationReport{}, false
	}
	child, ok := w.validator.Catalog.Lookup(id)
	if !ok {
		return types.ValidationReport{}, false
	}
	if missing := unresolved(w.validator.Types, child.Requires); len(missing) > 0 {
		return types.ValidationReport{}, false
	}
	report := w.validate(child).Report
	w.reports[id] = report
	return report, true
}

func validateModules(decl types.Declaration, report *types.ReportBuilder) {
	modules := map[string]struct{}{}
	for _, module := range decl.Modules {
		name := strings.TrimSpace(module.Name)
		if name == "" {
			report.Errorf("%s includes a module without a name", decl.Name)
			continue
		}
		if _, dup := modules[name]; dup {
			report.Errorf("%s includes module %s more than once", decl.Name, name)
			continue
		}
		modules[name] = struct{}{}
		for _, binding := range module.Provides {
			if strings.TrimSpace(binding.Type) == "" {
				report.Errorf("%s.%s declares a binding without a type", decl.Name, name)
			}
		}
	}
}

// referenceIndex resolves subcomponent references against the round's
// universe first and the catalog second. A creator reference resolves to the
// subcomponent it creates.
type referenceIndex struct {
	subcomponents map[string]types.DeclarationID
	creators      map[string]types.DeclarationID
	catalog       ports.DeclarationSourcePort
}

func newReferenceIndex(subcomponents []types.Declaration, creators []types.Declaration, catalog ports.DeclarationSourcePort) referenceIndex {
	index := referenceIndex{
		subcomponents: map[string]types.DeclarationID{},
		creators:      map[string]types.DeclarationID{},
		catalog:       catalog,
	}
	for _, decl := range subcomponents {
		index.subcomponents[decl.Name] = decl.ID()
	}
	for _, decl := range creators {
		index.creators[decl.Name] = decl.OwnerID()
	}
	return index
}

func (i referenceIndex) resolve(ref string) (types.DeclarationID, bool) {
	if id, ok := i.subcomponents[ref]; ok {
		return id, true
	}
	if owner, ok := i.creators[ref]; ok {
		return owner, true
	}
	if i.catalog == nil {
		return "", false
	}
	decl, ok := i.catalog.Lookup(types.DeclarationID(ref))
	if !ok {
		return "", false
	}
	switch decl.Role() {
	case types.RoleSubcomponent:
		return decl.ID(), true
	case types.RoleSubcomponentCreator:
		owner, ok := i.catalog.Lookup(decl.OwnerID())
		if !ok || owner.Role() != types.RoleSubcomponent {
			return "", false
		}
		return owner.ID(), true
	default:
		return "", false
	}
}
