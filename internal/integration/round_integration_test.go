package integration

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"componentgate/internal/adapters"
	"componentgate/internal/core"
	"componentgate/internal/policies"
	"componentgate/internal/types"
)

const dirtySubcomponentManifest = `
api_version: v1
package: appdi
types: [Config]
declarations:
  - name: AppComponent
    marker: component
    modules:
      - name: AppModule
        provides:
          - type: Server
            needs: [Config]
    entry_points: [Server]
    subcomponents: [RequestComponent.Builder]
  - name: AppComponent.Builder
    marker: component.builder
    owner: AppComponent
    setters: [Config]
    build_method: Build
  - name: RequestComponent
    marker: subcomponent
    modules:
      - name: RequestModule
        provides:
          - type: Handler
      - name: RequestModule
        provides:
          - type: Session
    entry_points: [Handler]
  - name: RequestComponent.Builder
    marker: subcomponent.builder
    owner: RequestComponent
    build_method: Build
`

type roundStack struct {
	catalog      adapters.ManifestCatalog
	sink         *adapters.LogDiagnosticSink
	orchestrator *core.Orchestrator
}

func newRoundStack(t *testing.T, manifest types.Manifest, outDir string) roundStack {
	t.Helper()
	catalog := adapters.NewManifestCatalog(manifest)
	universe := adapters.TypeUniverseFromManifest(manifest)
	sink := adapters.NewLogDiagnosticSink(zerolog.Nop())
	orchestrator := core.NewOrchestrator(core.Collaborators{
		ComponentValidator:  policies.NewComponentValidator(catalog, universe),
		CreatorValidator:    policies.NewCreatorValidator(catalog, universe),
		Descriptors:         core.NewDescriptorFactory(catalog),
		DescriptorValidator: core.NewDescriptorValidator(),
		Graphs:              core.NewBindingGraphFactory(),
		GraphValidator:      core.NewGraphValidator(sink),
		Generator:           adapters.NewComponentWriter(manifest.Package, adapters.NewOutputFileAdapter(outDir), universe),
		Sink:                sink,
	}, core.Options{})
	return roundStack{catalog: catalog, sink: sink, orchestrator: orchestrator}
}

func loadManifest(t *testing.T, path string) types.Manifest {
	t.Helper()
	manifest, err := adapters.NewManifestFileAdapter().LoadManifest(path)
	require.NoError(t, err)
	require.NoError(t, core.NewManifestCompiler().ValidateManifest(t.Context(), manifest))
	return manifest
}

func TestRoundGeneratesParseableSource(t *testing.T) {
	root := repoRoot(t)
	manifest := loadManifest(t, filepath.Join(root, "fixtures", "manifest-sample.yaml"))
	outDir := t.TempDir()
	stack := newRoundStack(t, manifest, outDir)

	result, err := stack.orchestrator.ProcessRound(t.Context(), stack.catalog.Declarations())
	require.NoError(t, err)
	require.Empty(t, result.Deferred)
	require.Len(t, result.Generated, 1)
	assert.Zero(t, stack.sink.Count(types.SeverityError))

	file, err := parser.ParseFile(token.NewFileSet(), result.Generated[0].Path, nil, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "appdi", file.Name.Name)
}

func TestDirtySubcomponentBlocksRoot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.di.yaml")
	require.NoError(t, os.WriteFile(path, []byte(dirtySubcomponentManifest), 0o644))
	manifest := loadManifest(t, path)
	outDir := t.TempDir()
	stack := newRoundStack(t, manifest, outDir)

	result, err := stack.orchestrator.ProcessRound(t.Context(), stack.catalog.Declarations())
	require.NoError(t, err)
	assert.Empty(t, result.Generated)
	assert.Contains(t, result.Outcomes, core.DeclarationOutcome{
		Declaration: "AppComponent",
		Outcome:     core.OutcomeDirty,
	})

	var messages []string
	for _, diagnostic := range stack.sink.Diagnostics() {
		messages = append(messages, diagnostic.Message)
	}
	assert.Contains(t, messages, "RequestComponent includes module RequestModule more than once")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func repoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}
