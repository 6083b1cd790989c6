package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"componentgate/internal/adapters"
	"componentgate/internal/ports"
)

// Validate runs the same rounds as Process with a generator that renders
// to memory only. Nothing is written.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	manifest, _, err := s.loadManifest(ctx, req.ManifestPath, req.Package)
	if err != nil {
		return ValidateResult{}, err
	}
	outcome, err := runRounds(ctx, manifest, func(pkg string, universe ports.TypeUniversePort) ports.GeneratorPort {
		return adapters.NewDryRunComponentWriter(pkg, universe)
	}, runOptions{
		MaxRounds:                req.MaxRounds,
		AheadOfTimeSubcomponents: req.AheadOfTimeSubcomponents,
	})
	if err != nil {
		return ValidateResult{}, err
	}
	result := ValidateResult{
		Package:      manifest.Package,
		Declarations: len(manifest.Declarations),
		Rounds:       len(outcome.Rounds),
		Unresolved:   outcome.Unresolved,
		Diagnostics:  outcome.Diagnostics,
		Errors:       outcome.Errors,
		Warnings:     outcome.Warnings,
	}
	for _, artifact := range outcome.Generated {
		result.Generated = append(result.Generated, artifact.TypeName)
	}
	if result.Errors > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("validation finished with errors")
	}
	return result, nil
}
