package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"componentgate/internal/types"
)

type mapCatalog struct {
	decls []types.Declaration
}

func (c mapCatalog) Declarations() []types.Declaration {
	return c.decls
}

func (c mapCatalog) Lookup(id types.DeclarationID) (types.Declaration, bool) {
	for _, decl := range c.decls {
		if decl.ID() == id {
			return decl, true
		}
	}
	return types.Declaration{}, false
}

func (c mapCatalog) CreatorsFor(owner types.DeclarationID) []types.Declaration {
	var creators []types.Declaration
	for _, decl := range c.decls {
		if decl.Role().IsCreator() && decl.OwnerID() == owner {
			creators = append(creators, decl)
		}
	}
	return creators
}

func TestDescriptorFactoryBuildsHierarchy(t *testing.T) {
	app := root("App")
	app.Scope = "singleton"
	app.Subcomponents = []string{"Request.Builder", "Request"}
	builder := rootBuilder("App")
	builder.Setters = []string{"Config"}
	builder.BuildMethod = "Build"
	request := sub("Request")
	request.Subcomponents = []string{"Request"}
	catalog := mapCatalog{decls: []types.Declaration{app, builder, request, subBuilder("Request")}}

	descriptor, err := NewDescriptorFactory(catalog).RootComponentDescriptor(t.Context(), app)
	require.NoError(t, err)

	assert.True(t, descriptor.Root)
	assert.Equal(t, "singleton", descriptor.Scope)
	require.NotNil(t, descriptor.Creator)
	assert.Equal(t, types.CreatorKindBuilder, descriptor.Creator.Kind)
	assert.Equal(t, []string{"Config"}, descriptor.Creator.Setters)
	require.Len(t, descriptor.Children, 1)

	child := descriptor.Children[0]
	assert.Equal(t, types.DeclarationID("Request"), child.ID)
	assert.False(t, child.Cycle)
	require.Len(t, child.Children, 1)
	assert.True(t, child.Children[0].Cycle)
}

func TestDescriptorFactoryErrors(t *testing.T) {
	app := root("App")
	app.Subcomponents = []string{"Missing"}
	factory := NewDescriptorFactory(mapCatalog{decls: []types.Declaration{app}})

	_, err := factory.RootComponentDescriptor(t.Context(), app)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	_, err = factory.SubcomponentDescriptor(t.Context(), app)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
