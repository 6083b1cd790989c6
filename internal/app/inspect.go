package app

import (
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"componentgate/internal/types"
)

func (s Service) Inspect(req InspectRequest) (InspectResult, error) {
	stateFile := strings.TrimSpace(req.StateFile)
	if stateFile == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("state file is required")
	}
	state, err := s.State.Load(stateFile)
	if err != nil {
		return InspectResult{}, err
	}
	counts := countSeverities(state.Diagnostics)
	return InspectResult{
		RunID:       state.RunID,
		CreatedAt:   state.CreatedAt,
		Package:     state.Package,
		Sources:     state.Sources,
		Rounds:      state.Rounds,
		Files:       state.Files,
		Unresolved:  state.Unresolved,
		Diagnostics: state.Diagnostics,
		Errors:      counts[types.SeverityError],
		Warnings:    counts[types.SeverityWarning],
	}, nil
}

func countSeverities(diagnostics []types.Diagnostic) map[types.Severity]int {
	counts := map[types.Severity]int{}
	for _, diagnostic := range diagnostics {
		counts[diagnostic.Severity]++
	}
	return counts
}
