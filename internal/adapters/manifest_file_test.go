package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"componentgate/internal/types"
)

func TestLoadManifestSample(t *testing.T) {
	manifest, err := NewManifestFileAdapter().LoadManifest("../../fixtures/manifest-sample.yaml")
	require.NoError(t, err)

	assert.Equal(t, "v1", manifest.APIVersion)
	assert.Equal(t, "appdi", manifest.Package)
	assert.Equal(t, []string{"Config", "Clock"}, manifest.Types)
	require.Len(t, manifest.Declarations, 4)

	app := manifest.Declarations[0]
	assert.Equal(t, types.MarkerComponent, app.Marker)
	assert.Equal(t, types.RoleRootComponent, app.Role())
	require.Len(t, app.Modules, 2)
	assert.Equal(t, "DataModule", app.Modules[0].Name)
	assert.Equal(t, []string{"Config"}, app.Modules[0].Provides[0].Needs)
	assert.Equal(t, []string{"RequestComponent.Builder"}, app.Subcomponents)

	builder := manifest.Declarations[1]
	assert.Equal(t, types.RoleRootCreator, builder.Role())
	assert.Equal(t, types.DeclarationID("AppComponent"), builder.OwnerID())
	assert.Equal(t, []string{"Config"}, builder.Setters)
	assert.Equal(t, "Build", builder.BuildMethod)
}

func TestLoadManifestErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.di.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("declarations: [unterminated"), 0644))

	tests := []struct {
		name string
		path string
		code errbuilder.ErrCode
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.di.yaml"), code: errbuilder.CodeNotFound},
		{name: "invalid yaml", path: broken, code: errbuilder.CodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewManifestFileAdapter().LoadManifest(tt.path)
			require.Error(t, err)
			assert.Equal(t, tt.code, errbuilder.CodeOf(err))
		})
	}
}
