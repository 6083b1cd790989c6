package ports

import (
	"context"

	"componentgate/internal/types"
)

type DescriptorFactoryPort interface {
	RootComponentDescriptor(ctx context.Context, decl types.Declaration) (types.ComponentDescriptor, error)
	SubcomponentDescriptor(ctx context.Context, decl types.Declaration) (types.ComponentDescriptor, error)
}

type DescriptorValidatorPort interface {
	Validate(descriptor types.ComponentDescriptor) types.ValidationReport
}

type BindingGraphFactoryPort interface {
	Create(descriptor types.ComponentDescriptor) (types.BindingGraph, error)
}

// GraphValidatorPort reports its own diagnostics and returns whether the
// graph may be generated.
type GraphValidatorPort interface {
	IsValid(graph types.BindingGraph) bool
}
