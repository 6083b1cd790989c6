package policies

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"componentgate/internal/adapters"
	"componentgate/internal/types"
)

func newComponentValidator(decls ...types.Declaration) ComponentValidator {
	manifest := types.Manifest{Types: []string{"Config"}, Declarations: decls}
	return NewComponentValidator(adapters.NewManifestCatalog(manifest), adapters.TypeUniverseFromManifest(manifest))
}

func TestComponentValidatorLocalRules(t *testing.T) {
	tests := []struct {
		name string
		decl types.Declaration
		want []string
	}{
		{
			name: "valid",
			decl: types.Declaration{
				Name:    "AppComponent",
				Marker:  types.MarkerComponent,
				Modules: []types.Module{{Name: "DataModule", Provides: []types.BindingDecl{{Type: "Database"}}}},
			},
		},
		{
			name: "unnamed module",
			decl: types.Declaration{Name: "AppComponent", Marker: types.MarkerComponent, Modules: []types.Module{{}}},
			want: []string{"AppComponent includes a module without a name"},
		},
		{
			name: "duplicate module",
			decl: types.Declaration{Name: "AppComponent", Marker: types.MarkerComponent, Modules: []types.Module{{Name: "DataModule"}, {Name: "DataModule"}}},
			want: []string{"AppComponent includes module DataModule more than once"},
		},
		{
			name: "binding without type",
			decl: types.Declaration{Name: "AppComponent", Marker: types.MarkerComponent, Modules: []types.Module{{Name: "DataModule", Provides: []types.BindingDecl{{Needs: []string{"Config"}}}}}},
			want: []string{"AppComponent.DataModule declares a binding without a type"},
		},
		{
			name: "empty entry point",
			decl: types.Declaration{Name: "AppComponent", Marker: types.MarkerComponent, EntryPoints: []string{" "}},
			want: []string{"AppComponent declares an empty entry point"},
		},
		{
			name: "reference to self",
			decl: types.Declaration{Name: "AppComponent", Marker: types.MarkerComponent, Subcomponents: []string{"AppComponent"}},
			want: []string{"AppComponent references AppComponent, which is not a subcomponent"},
		},
		{
			name: "unknown reference",
			decl: types.Declaration{Name: "AppComponent", Marker: types.MarkerComponent, Subcomponents: []string{"Nowhere"}},
			want: []string{"AppComponent references Nowhere, which is not a subcomponent"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := newComponentValidator(tt.decl).Validate(tt.decl, nil, nil)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, messages(report.Report)); diff != "" {
				t.Fatalf("unexpected diagnostics (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComponentValidatorResolvesCreatorReferences(t *testing.T) {
	request := types.Declaration{Name: "RequestComponent", Marker: types.MarkerSubcomponent}
	builder := types.Declaration{Name: "RequestComponent.Builder", Marker: types.MarkerSubcomponentBuilder, Owner: "RequestComponent", BuildMethod: "Build"}
	app := types.Declaration{
		Name:          "AppComponent",
		Marker:        types.MarkerComponent,
		Subcomponents: []string{"RequestComponent.Builder", "RequestComponent"},
	}
	validator := newComponentValidator(app, request, builder)

	t.Run("round universe", func(t *testing.T) {
		report, err := validator.Validate(app, []types.Declaration{request}, []types.Declaration{builder})
		require.NoError(t, err)
		assert.True(t, report.Report.IsClean())
		assert.Equal(t, []types.DeclarationID{"RequestComponent"}, report.ReferencedSubcomponents)
	})
	t.Run("catalog only", func(t *testing.T) {
		report, err := validator.Validate(app, nil, nil)
		require.NoError(t, err)
		assert.True(t, report.Report.IsClean())
		assert.Equal(t, []types.DeclarationID{"RequestComponent"}, report.ReferencedSubcomponents)
	})
}

func TestComponentValidatorFoldsDeeperFailures(t *testing.T) {
	// S1 is locally fine but references S2, which is not.
	s2 := types.Declaration{Name: "S2", Marker: types.MarkerSubcomponent, Modules: []types.Module{{}}}
	s1 := types.Declaration{Name: "S1", Marker: types.MarkerSubcomponent, Subcomponents: []string{"S2"}}
	root := types.Declaration{Name: "Root", Marker: types.MarkerComponent, Subcomponents: []string{"S1"}}
	validator := newComponentValidator(root, s1, s2)
	universe := []types.Declaration{s1, s2}

	s1Report, err := validator.Validate(s1, universe, nil)
	require.NoError(t, err)
	assert.False(t, s1Report.Report.IsClean())
	assert.Empty(t, s1Report.Report.Items())
	require.Len(t, s1Report.Report.Subreports(), 1)
	assert.Equal(t, types.DeclarationID("S2"), s1Report.Report.Subreports()[0].Subject())

	rootReport, err := validator.Validate(root, universe, nil)
	require.NoError(t, err)
	assert.False(t, rootReport.Report.IsClean())
	assert.Equal(t, []types.DeclarationID{"S1"}, rootReport.ReferencedSubcomponents)
}

func TestComponentValidatorTerminatesOnReferenceCycles(t *testing.T) {
	s1 := types.Declaration{Name: "S1", Marker: types.MarkerSubcomponent, Subcomponents: []string{"S2"}}
	s2 := types.Declaration{Name: "S2", Marker: types.MarkerSubcomponent, Subcomponents: []string{"S1", "S2"}}
	validator := newComponentValidator(s1, s2)
	universe := []types.Declaration{s1, s2}

	for _, decl := range universe {
		report, err := validator.Validate(decl, universe, nil)
		require.NoError(t, err)
		assert.True(t, report.Report.IsClean(), decl.Name)
	}
}

func TestComponentValidatorDefersUnresolvedRequires(t *testing.T) {
	app := types.Declaration{Name: "AppComponent", Marker: types.MarkerComponent, Requires: []string{"Config", "DIAuditComponent"}}
	_, err := newComponentValidator(app).Validate(app, nil, nil)
	require.Error(t, err)
	assert.Equal(t, []string{"DIAuditComponent"}, types.UnresolvedTypes(err))
}
