package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"componentgate/internal/adapters"
	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// Process generates code for every declaration that validates cleanly and
// records the run in the state file. A run with error diagnostics still
// writes what it could and returns a FailedPrecondition error.
func (s Service) Process(ctx context.Context, req ProcessRequest) (ProcessResult, error) {
	outputDir := strings.TrimSpace(req.OutputDir)
	if outputDir == "" {
		return ProcessResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is required")
	}
	runID := s.NewRunID()
	logger := log.Ctx(ctx).With().Str("run_id", runID).Logger()
	ctx = logger.WithContext(ctx)

	manifest, sources, err := s.loadManifest(ctx, req.ManifestPath, req.Package)
	if err != nil {
		return ProcessResult{}, err
	}
	output := adapters.NewOutputFileAdapter(outputDir)
	outcome, err := runRounds(ctx, manifest, func(pkg string, universe ports.TypeUniversePort) ports.GeneratorPort {
		return adapters.NewComponentWriter(pkg, output, universe)
	}, runOptions{
		MaxRounds:                req.MaxRounds,
		AheadOfTimeSubcomponents: req.AheadOfTimeSubcomponents,
	})
	if err != nil {
		return ProcessResult{}, err
	}

	indexFile, err := output.WriteIndex(outcome.Generated)
	if err != nil {
		return ProcessResult{}, err
	}
	stateFile := strings.TrimSpace(req.StateFile)
	if stateFile == "" {
		stateFile = filepath.Join(outputDir, StateFileName)
	}
	state := types.RunState{
		RunID:       runID,
		CreatedAt:   s.Clock().UTC().Format(time.RFC3339),
		Sources:     sources,
		Package:     manifest.Package,
		Rounds:      outcome.Rounds,
		Unresolved:  outcome.Unresolved,
		Diagnostics: outcome.Diagnostics,
	}
	for _, artifact := range outcome.Generated {
		state.Files = append(state.Files, artifact.Path)
	}
	if err := s.State.Save(stateFile, state); err != nil {
		return ProcessResult{}, err
	}

	result := ProcessResult{
		RunID:      runID,
		Package:    manifest.Package,
		Rounds:     len(outcome.Rounds),
		Generated:  outcome.Generated,
		Unresolved: outcome.Unresolved,
		Errors:     outcome.Errors,
		Warnings:   outcome.Warnings,
		IndexFile:  indexFile,
		StateFile:  stateFile,
	}
	logger.Info().
		Int("rounds", result.Rounds).
		Int("generated", len(result.Generated)).
		Int("errors", result.Errors).
		Msg("processing finished")
	if result.Errors > 0 {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("generation finished with errors")
	}
	return result, nil
}
