package app

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"componentgate/internal/adapters"
	"componentgate/internal/core"
	"componentgate/internal/policies"
	"componentgate/internal/ports"
	"componentgate/internal/types"
)

type generatorFactory func(pkg string, universe ports.TypeUniversePort) ports.GeneratorPort

type runOptions struct {
	MaxRounds                int
	AheadOfTimeSubcomponents bool
}

type runOutcome struct {
	Rounds      []types.RoundSummary
	Generated   []types.GeneratedArtifact
	Unresolved  []string
	Diagnostics []types.Diagnostic
	Errors      int
	Warnings    int
}

// loadManifest reads every manifest below path, composes them and checks
// the result.
func (s Service) loadManifest(ctx context.Context, path string, pkg string) (types.Manifest, []string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return types.Manifest{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	sources, err := s.Workspace.FindManifests(path)
	if err != nil {
		return types.Manifest{}, nil, err
	}
	if len(sources) == 0 {
		return types.Manifest{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no manifests found in %s", path))
	}
	manifests := make([]types.Manifest, 0, len(sources))
	for _, source := range sources {
		manifest, err := s.Manifests.LoadManifest(source)
		if err != nil {
			return types.Manifest{}, nil, err
		}
		manifests = append(manifests, manifest)
	}
	composed, err := core.NewManifestComposer().Compose(ctx, manifests)
	if err != nil {
		return types.Manifest{}, nil, err
	}
	if pkg = strings.TrimSpace(pkg); pkg != "" {
		composed.Package = pkg
	}
	if err := core.NewManifestCompiler().ValidateManifest(ctx, composed); err != nil {
		return types.Manifest{}, nil, err
	}
	return composed, sources, nil
}

// runRounds drives processing rounds until nothing is deferred, a round
// makes no progress or the round limit is reached. Declarations still
// deferred at the end are reported as errors.
func runRounds(ctx context.Context, manifest types.Manifest, newGenerator generatorFactory, opts runOptions) (runOutcome, error) {
	maxRounds := opts.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	catalog := adapters.NewManifestCatalog(manifest)
	universe := adapters.TypeUniverseFromManifest(manifest)
	sink := adapters.NewLogDiagnosticSink(*log.Ctx(ctx))
	orchestrator := core.NewOrchestrator(core.Collaborators{
		ComponentValidator:  policies.NewComponentValidator(catalog, universe),
		CreatorValidator:    policies.NewCreatorValidator(catalog, universe),
		Descriptors:         core.NewDescriptorFactory(catalog),
		DescriptorValidator: core.NewDescriptorValidator(),
		Graphs:              core.NewBindingGraphFactory(),
		GraphValidator:      core.NewGraphValidator(sink),
		Generator:           newGenerator(manifest.Package, universe),
		Sink:                sink,
	}, core.Options{AheadOfTimeSubcomponents: opts.AheadOfTimeSubcomponents})

	var outcome runOutcome
	pending := catalog.Declarations()
	var previous []types.DeclarationID
	var last core.RoundResult
	for number := 1; number <= maxRounds && len(pending) > 0; number++ {
		result, err := orchestrator.ProcessRound(ctx, pending)
		if err != nil {
			return runOutcome{}, err
		}
		last = result
		outcome.Generated = append(outcome.Generated, result.Generated...)
		outcome.Rounds = append(outcome.Rounds, summarizeRound(number, pending, result))
		log.Ctx(ctx).Debug().
			Int("round", number).
			Int("generated", len(result.Generated)).
			Int("deferred", len(result.Deferred)).
			Msg("round finished")

		deferred := types.IDs(result.Deferred)
		if len(deferred) == 0 {
			pending = nil
			break
		}
		if len(result.Generated) == 0 && slices.Equal(previous, deferred) {
			pending = result.Deferred
			break
		}
		previous = deferred
		pending = withCreators(catalog, result.Deferred)
		if number == maxRounds {
			pending = result.Deferred
		}
	}

	for _, decl := range pending {
		missing := last.Missing[decl.ID()]
		outcome.Unresolved = append(outcome.Unresolved, decl.Name)
		sink.Report(types.Diagnostic{
			Severity: types.SeverityError,
			Message:  fmt.Sprintf("%s: unresolved types after %d rounds: %s", decl.Name, len(outcome.Rounds), strings.Join(missing, ", ")),
			Subject:  decl.ID(),
		})
	}
	outcome.Diagnostics = sink.Diagnostics()
	outcome.Errors = sink.Count(types.SeverityError)
	outcome.Warnings = sink.Count(types.SeverityWarning)
	return outcome, nil
}

// withCreators adds the catalog creators of deferred components so that
// the next round judges a deferred component together with its creator.
func withCreators(catalog ports.DeclarationSourcePort, deferred []types.Declaration) []types.Declaration {
	next := append([]types.Declaration(nil), deferred...)
	seen := map[types.DeclarationID]struct{}{}
	for _, decl := range deferred {
		seen[decl.ID()] = struct{}{}
	}
	for _, decl := range deferred {
		if !decl.Role().IsComponent() {
			continue
		}
		for _, creator := range catalog.CreatorsFor(decl.ID()) {
			if _, ok := seen[creator.ID()]; ok {
				continue
			}
			seen[creator.ID()] = struct{}{}
			next = append(next, creator)
		}
	}
	return next
}

func summarizeRound(number int, submitted []types.Declaration, result core.RoundResult) types.RoundSummary {
	summary := types.RoundSummary{
		Number:    number,
		Submitted: types.Names(submitted),
		Deferred:  types.Names(result.Deferred),
	}
	for _, outcome := range result.Outcomes {
		switch outcome.Outcome {
		case core.OutcomeGenerated:
			summary.Generated = append(summary.Generated, string(outcome.Declaration))
		case core.OutcomeDirty, core.OutcomeInvalidGraph, core.OutcomeFailed:
			summary.Dirty = append(summary.Dirty, string(outcome.Declaration))
		}
	}
	return summary
}
