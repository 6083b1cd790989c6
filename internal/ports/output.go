package ports

import "componentgate/internal/types"

// GeneratorPort emits the source artifact for a valid binding graph.
type GeneratorPort interface {
	Generate(graph types.BindingGraph) (types.GeneratedArtifact, error)
}

// DiagnosticSinkPort is an append-only consumer of diagnostics.
type DiagnosticSinkPort interface {
	Report(diagnostic types.Diagnostic)
}

type StatePort interface {
	Save(path string, state types.RunState) error
	Load(path string) (types.RunState, error)
}
