package adapters

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"componentgate/internal/types"
)

func TestStateFileAdapterSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen", "componentgate.state")
	state := types.RunState{
		RunID:     "run-1",
		CreatedAt: "2026-01-27T00:00:00Z",
		Sources:   []string{"app.di.yaml"},
		Package:   "appdi",
		Rounds: []types.RoundSummary{
			{Number: 1, Submitted: []string{"AppComponent", "AuditComponent"}, Generated: []string{"AuditComponent"}, Deferred: []string{"AppComponent"}},
			{Number: 2, Submitted: []string{"AppComponent"}, Generated: []string{"AppComponent"}},
		},
		Files: []string{"gen/app_component_gen.go"},
		Diagnostics: []types.Diagnostic{
			{Severity: types.SeverityWarning, Message: "unused module", Subject: "AppComponent"},
		},
	}
	adapter := NewStateFileAdapter()
	require.NoError(t, adapter.Save(path, state))

	loaded, err := adapter.Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(state, loaded); diff != "" {
		t.Fatalf("unexpected state (-want +got):\n%s", diff)
	}
}

func TestStateFileAdapterErrors(t *testing.T) {
	adapter := NewStateFileAdapter()
	err := adapter.Save("", types.RunState{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	_, err = adapter.Load(filepath.Join(t.TempDir(), "missing.state"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}
