package core

import "componentgate/internal/types"

// DescriptorValidator checks scoping across a component hierarchy. All
// findings are reported against the descriptor's root.
type DescriptorValidator struct{}

func NewDescriptorValidator() DescriptorValidator {
	return DescriptorValidator{}
}

func (v DescriptorValidator) Validate(descriptor types.ComponentDescriptor) types.ValidationReport {
	builder := types.NewReportBuilder(descriptor.ID)
	v.validate(descriptor, nil, builder)
	return builder.Build()
}

func (v DescriptorValidator) validate(descriptor types.ComponentDescriptor, ancestors []types.ComponentDescriptor, builder *types.ReportBuilder) {
	for _, module := range descriptor.Modules {
		for _, binding := range module.Provides {
			if binding.Scope != "" && binding.Scope != descriptor.Scope {
				builder.Errorf("%s is scoped %q but binding %s.%s is scoped %q",
					descriptor.Name, descriptor.Scope, module.Name, binding.Type, binding.Scope)
			}
		}
	}
	lineage := append(append([]types.ComponentDescriptor(nil), ancestors...), descriptor)
	for _, child := range descriptor.Children {
		if child.Cycle {
			builder.Errorf("%s references %s, which is already one of its ancestors", descriptor.Name, child.Name)
			continue
		}
		if child.Scope != "" {
			for _, ancestor := range lineage {
				if ancestor.Scope == child.Scope {
					builder.Errorf("%s has scope %q, which is already used by ancestor %s", child.Name, child.Scope, ancestor.Name)
					break
				}
			}
		}
		v.validate(child, lineage, builder)
	}
}
