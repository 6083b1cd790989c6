package app

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"componentgate/internal/types"
)

func TestInspectApp(t *testing.T) {
	service := testService()
	path := filepath.Join(t.TempDir(), StateFileName)
	require.NoError(t, service.State.Save(path, types.RunState{
		RunID:   "run-1",
		Package: "appdi",
		Rounds:  []types.RoundSummary{{Number: 1, Submitted: []string{"AppComponent"}, Generated: []string{"AppComponent"}}},
		Files:   []string{"gen/app_component_gen.go"},
		Diagnostics: []types.Diagnostic{
			{Severity: types.SeverityError, Message: "broken", Subject: "Other"},
			{Severity: types.SeverityWarning, Message: "odd", Subject: "Other"},
			{Severity: types.SeverityError, Message: "worse", Subject: "Other"},
		},
	}))

	result, err := service.Inspect(InspectRequest{StateFile: path})
	require.NoError(t, err)
	if diff := cmp.Diff("run-1", result.RunID); diff != "" {
		t.Fatalf("unexpected run id (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(1, len(result.Rounds)); diff != "" {
		t.Fatalf("unexpected round count (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(2, result.Errors); diff != "" {
		t.Fatalf("unexpected error count (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(1, result.Warnings); diff != "" {
		t.Fatalf("unexpected warning count (-want +got):\n%s", diff)
	}
}

func TestInspectAppRequiresStateFile(t *testing.T) {
	_, err := testService().Inspect(InspectRequest{})
	require.Error(t, err)
}
