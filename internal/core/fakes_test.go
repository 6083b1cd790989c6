package core

import (
	"context"

	"componentgate/internal/types"
)

type recordingSink struct {
	items []types.Diagnostic
}

func (s *recordingSink) Report(diagnostic types.Diagnostic) {
	s.items = append(s.items, diagnostic)
}

func (s *recordingSink) messages() []string {
	var out []string
	for _, item := range s.items {
		out = append(out, item.Message)
	}
	return out
}

type fakeCreatorValidator struct {
	reports map[types.DeclarationID]types.ValidationReport
	errs    map[types.DeclarationID]error
	calls   []types.DeclarationID
}

func (v *fakeCreatorValidator) Validate(creator types.Declaration) (types.ValidationReport, error) {
	v.calls = append(v.calls, creator.ID())
	if err, ok := v.errs[creator.ID()]; ok {
		return types.ValidationReport{}, err
	}
	if report, ok := v.reports[creator.ID()]; ok {
		return report, nil
	}
	return types.CleanReport(creator.ID()), nil
}

type fakeComponentValidator struct {
	reports map[types.DeclarationID]types.ComponentValidationReport
	errs    map[types.DeclarationID]error
	calls   []types.DeclarationID
}

func (v *fakeComponentValidator) Validate(decl types.Declaration, _ []types.Declaration, _ []types.Declaration) (types.ComponentValidationReport, error) {
	v.calls = append(v.calls, decl.ID())
	if err, ok := v.errs[decl.ID()]; ok {
		return types.ComponentValidationReport{}, err
	}
	if report, ok := v.reports[decl.ID()]; ok {
		return report, nil
	}
	return types.ComponentValidationReport{Report: types.CleanReport(decl.ID())}, nil
}

type fakeDescriptors struct {
	calls []types.DeclarationID
}

func (f *fakeDescriptors) RootComponentDescriptor(_ context.Context, decl types.Declaration) (types.ComponentDescriptor, error) {
	f.calls = append(f.calls, decl.ID())
	return types.ComponentDescriptor{ID: decl.ID(), Name: decl.Name, Root: true}, nil
}

func (f *fakeDescriptors) SubcomponentDescriptor(_ context.Context, decl types.Declaration) (types.ComponentDescriptor, error) {
	f.calls = append(f.calls, decl.ID())
	return types.ComponentDescriptor{ID: decl.ID(), Name: decl.Name}, nil
}

type passingDescriptorValidator struct{}

func (passingDescriptorValidator) Validate(descriptor types.ComponentDescriptor) types.ValidationReport {
	return types.CleanReport(descriptor.ID)
}

type fakeGraphs struct{}

func (fakeGraphs) Create(descriptor types.ComponentDescriptor) (types.BindingGraph, error) {
	return types.BindingGraph{Components: []types.ComponentNode{{ID: descriptor.ID, Name: descriptor.Name, Parent: -1}}}, nil
}

type fakeGraphValidator struct {
	invalid map[types.DeclarationID]bool
}

func (v fakeGraphValidator) IsValid(graph types.BindingGraph) bool {
	return !v.invalid[graph.Root().ID]
}

type fakeGenerator struct {
	generated  []types.DeclarationID
	fail       map[types.DeclarationID]error
	onGenerate func()
}

func (g *fakeGenerator) Generate(graph types.BindingGraph) (types.GeneratedArtifact, error) {
	if g.onGenerate != nil {
		g.onGenerate()
	}
	root := graph.Root()
	if err, ok := g.fail[root.ID]; ok {
		return types.GeneratedArtifact{}, err
	}
	g.generated = append(g.generated, root.ID)
	return types.GeneratedArtifact{Declaration: root.ID, TypeName: "DI" + root.Name}, nil
}

type harness struct {
	creators   *fakeCreatorValidator
	components *fakeComponentValidator
	generator  *fakeGenerator
	sink       *recordingSink
	graphs     fakeGraphValidator
}

func newHarness() *harness {
	return &harness{
		creators:   &fakeCreatorValidator{reports: map[types.DeclarationID]types.ValidationReport{}, errs: map[types.DeclarationID]error{}},
		components: &fakeComponentValidator{reports: map[types.DeclarationID]types.ComponentValidationReport{}, errs: map[types.DeclarationID]error{}},
		generator:  &fakeGenerator{fail: map[types.DeclarationID]error{}},
		sink:       &recordingSink{},
		graphs:     fakeGraphValidator{invalid: map[types.DeclarationID]bool{}},
	}
}

func (h *harness) orchestrator(options Options) *Orchestrator {
	return NewOrchestrator(Collaborators{
		ComponentValidator:  h.components,
		CreatorValidator:    h.creators,
		Descriptors:         &fakeDescriptors{},
		DescriptorValidator: passingDescriptorValidator{},
		Graphs:              fakeGraphs{},
		GraphValidator:      h.graphs,
		Generator:           h.generator,
		Sink:                h.sink,
	}, options)
}

func dirty(subject types.DeclarationID, message string) types.ValidationReport {
	return types.NewReportBuilder(subject).Errorf("%s", message).Build()
}

func root(name string) types.Declaration {
	return types.Declaration{Name: name, Marker: types.MarkerComponent}
}

func sub(name string) types.Declaration {
	return types.Declaration{Name: name, Marker: types.MarkerSubcomponent}
}

func rootBuilder(owner string) types.Declaration {
	return types.Declaration{Name: owner + ".Builder", Marker: types.MarkerComponentBuilder, Owner: owner}
}

func subBuilder(owner string) types.Declaration {
	return types.Declaration{Name: owner + ".Builder", Marker: types.MarkerSubcomponentBuilder, Owner: owner}
}
