package core

import (
	"context"
	"sync/atomic"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

type Options struct {
	// AheadOfTimeSubcomponents also generates every clean subcomponent on its
	// own, gated by the subcomponent's reports instead of a root's.
	AheadOfTimeSubcomponents bool
}

type Outcome string

const (
	OutcomeGenerated    Outcome = "generated"
	OutcomeDirty        Outcome = "dirty"
	OutcomeInvalidGraph Outcome = "invalid-graph"
	OutcomeFailed       Outcome = "failed"
	OutcomeDeferred     Outcome = "deferred"
)

type DeclarationOutcome struct {
	Declaration types.DeclarationID
	Outcome     Outcome
}

// RoundResult is what one round hands back to the round driver. Deferred
// must be resubmitted in the next round.
type RoundResult struct {
	Deferred  []types.Declaration
	Missing   map[types.DeclarationID][]string
	Generated []types.GeneratedArtifact
	Outcomes  []DeclarationOutcome
}

// Collaborators bundles the ports a round talks to.
type Collaborators struct {
	ComponentValidator  ports.ComponentValidatorPort
	CreatorValidator    ports.CreatorValidatorPort
	Descriptors         ports.DescriptorFactoryPort
	DescriptorValidator ports.DescriptorValidatorPort
	Graphs              ports.BindingGraphFactoryPort
	GraphValidator      ports.GraphValidatorPort
	Generator           ports.GeneratorPort
	Sink                ports.DiagnosticSinkPort
}

// Orchestrator drives a single processing round. Rounds run to completion
// and must not overlap.
type Orchestrator struct {
	Collaborators
	Options Options

	running atomic.Bool
}

func NewOrchestrator(collaborators Collaborators, options Options) *Orchestrator {
	return &Orchestrator{
		Collaborators: collaborators,
		Options:       options,
	}
}

type round struct {
	sets       RoleSets
	propagator Propagator
	result     RoundResult
	deferred   map[types.DeclarationID]struct{}
}

// ProcessRound classifies declarations, validates creators, subcomponents and
// root components, and generates every root whose reports are clean.
func (o *Orchestrator) ProcessRound(ctx context.Context, declarations []types.Declaration) (RoundResult, error) {
	if err := o.checkCollaborators(); err != nil {
		return RoundResult{}, err
	}
	if !o.running.CompareAndSwap(false, true) {
		return RoundResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("a processing round is already in progress")
	}
	defer o.running.Store(false)

	r := &round{
		sets:     Classify(declarations),
		deferred: map[types.DeclarationID]struct{}{},
		result:   RoundResult{Missing: map[types.DeclarationID][]string{}},
	}

	creators := NewCreatorProcessor(o.CreatorValidator, o.Sink)
	cache := NewReportCache()
	var rejected []Deferral
	cache.RootCreatorReports, rejected = creators.ValidateCreators(ctx, r.sets.RootCreators)
	r.postpone(rejected...)
	cache.SubcomponentCreatorReports, rejected = creators.ValidateCreators(ctx, r.sets.SubcomponentCreators)
	r.postpone(rejected...)
	cache.SubcomponentReports, rejected = NewSubcomponentProcessor(o.ComponentValidator, o.Sink).
		ValidateSubcomponents(ctx, r.sets.Subcomponents, r.sets.SubcomponentCreators)
	r.postpone(rejected...)
	r.propagator = NewPropagator(cache)

	for _, decl := range r.sets.RootComponents {
		o.processRoot(ctx, r, decl)
	}
	if o.Options.AheadOfTimeSubcomponents {
		for _, decl := range r.sets.Subcomponents {
			o.processSubcomponent(ctx, r, decl)
		}
	}

	log.Ctx(ctx).Debug().
		Int("declarations", r.sets.Len()).
		Int("generated", len(r.result.Generated)).
		Int("deferred", len(r.result.Deferred)).
		Msg("round completed")
	return r.result, nil
}

func (o *Orchestrator) processRoot(ctx context.Context, r *round, decl types.Declaration) {
	report, err := o.ComponentValidator.Validate(decl, r.sets.Subcomponents, r.sets.SubcomponentCreators)
	if err != nil {
		if types.IsUnresolved(err) {
			r.postpone(Deferral{Declaration: decl, Missing: types.UnresolvedTypes(err)})
			return
		}
		report = types.ComponentValidationReport{Report: failureReport(decl.ID(), err)}
	}
	emitReport(o.Sink, report.Report)
	if !r.propagator.IsClean(report) {
		r.record(decl.ID(), OutcomeDirty)
		return
	}
	descriptor, err := o.Descriptors.RootComponentDescriptor(ctx, decl)
	if err != nil {
		reportError(o.Sink, decl.ID(), "%s: failed to build component descriptor: %v", decl.Name, err)
		r.record(decl.ID(), OutcomeFailed)
		return
	}
	descriptorReport := o.DescriptorValidator.Validate(descriptor)
	emitReport(o.Sink, descriptorReport)
	if !descriptorReport.IsClean() {
		r.record(decl.ID(), OutcomeDirty)
		return
	}
	o.buildAndGenerate(ctx, r, decl, descriptor)
}

func (o *Orchestrator) processSubcomponent(ctx context.Context, r *round, decl types.Declaration) {
	if _, deferred := r.deferred[decl.ID()]; deferred {
		return
	}
	if !r.propagator.IsSubcomponentClean(decl.ID()) {
		r.record(decl.ID(), OutcomeDirty)
		return
	}
	descriptor, err := o.Descriptors.SubcomponentDescriptor(ctx, decl)
	if err != nil {
		reportError(o.Sink, decl.ID(), "%s: failed to build subcomponent descriptor: %v", decl.Name, err)
		r.record(decl.ID(), OutcomeFailed)
		return
	}
	o.buildAndGenerate(ctx, r, decl, descriptor)
}

func (o *Orchestrator) buildAndGenerate(ctx context.Context, r *round, decl types.Declaration, descriptor types.ComponentDescriptor) {
	graph, err := o.Graphs.Create(descriptor)
	if err != nil {
		reportError(o.Sink, decl.ID(), "%s: failed to build binding graph: %v", decl.Name, err)
		r.record(decl.ID(), OutcomeFailed)
		return
	}
	if !o.GraphValidator.IsValid(graph) {
		r.record(decl.ID(), OutcomeInvalidGraph)
		return
	}
	artifact, err := o.Generator.Generate(graph)
	if err != nil {
		reportError(o.Sink, decl.ID(), "%s: code generation failed: %v", decl.Name, err)
		r.record(decl.ID(), OutcomeFailed)
		return
	}
	log.Ctx(ctx).Debug().Str("declaration", decl.Name).Str("type", artifact.TypeName).Msg("component generated")
	r.result.Generated = append(r.result.Generated, artifact)
	r.record(decl.ID(), OutcomeGenerated)
}

func (o *Orchestrator) checkCollaborators() error {
	if o.ComponentValidator == nil || o.CreatorValidator == nil || o.Descriptors == nil ||
		o.DescriptorValidator == nil || o.Graphs == nil || o.GraphValidator == nil || o.Generator == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("orchestrator requires validators, graph factories and a generator")
	}
	return nil
}

func (r *round) postpone(deferrals ...Deferral) {
	for _, deferral := range deferrals {
		id := deferral.Declaration.ID()
		if _, ok := r.deferred[id]; ok {
			continue
		}
		r.deferred[id] = struct{}{}
		r.result.Deferred = append(r.result.Deferred, deferral.Declaration)
		r.result.Missing[id] = deferral.Missing
		r.record(id, OutcomeDeferred)
	}
}

func (r *round) record(id types.DeclarationID, outcome Outcome) {
	r.result.Outcomes = append(r.result.Outcomes, DeclarationOutcome{Declaration: id, Outcome: outcome})
}
