package core

import (
	"strings"

	"componentgate/internal/ports"
	"componentgate/internal/types"
)

// GraphValidator reports missing bindings, duplicate bindings and
// dependency cycles. Findings are reported against the component they occur
// in.
type GraphValidator struct {
	Sink ports.DiagnosticSinkPort
}

func NewGraphValidator(sink ports.DiagnosticSinkPort) GraphValidator {
	return GraphValidator{Sink: sink}
}

func (v GraphValidator) IsValid(graph types.BindingGraph) bool {
	valid := true
	for index, component := range graph.Components {
		report := v.validateComponent(graph, index, component)
		emitReport(v.Sink, report)
		if !report.IsClean() {
			valid = false
		}
	}
	return valid
}

func (v GraphValidator) validateComponent(graph types.BindingGraph, index int, component types.ComponentNode) types.ValidationReport {
	builder := types.NewReportBuilder(component.ID)
	bound := map[string]string{}
	for _, binding := range component.Bindings {
		origin := bindingOrigin(binding)
		if previous, ok := bound[binding.Type]; ok {
			builder.Errorf("%s is bound multiple times in %s: %s, %s", binding.Type, component.Name, previous, origin)
			continue
		}
		bound[binding.Type] = origin
	}
	for _, binding := range component.Bindings {
		for _, need := range binding.Needs {
			if _, _, ok := graph.Lookup(index, need); !ok {
				builder.Errorf("%s cannot be provided in %s: required by %s", need, component.Name, bindingOrigin(binding))
			}
		}
	}
	for _, entry := range component.EntryPoints {
		if _, _, ok := graph.Lookup(index, entry); !ok {
			builder.Errorf("%s cannot be provided in %s: requested as an entry point", entry, component.Name)
		}
	}
	if _, cycle := initializationOrder(component); len(cycle) > 0 {
		builder.Errorf("found a dependency cycle in %s: %s", component.Name, strings.Join(cycle, " -> "))
	}
	return builder.Build()
}

func bindingOrigin(binding types.ResolvedBinding) string {
	if binding.Kind == types.BindingKindInstance {
		return "bound instance " + binding.Type
	}
	return binding.Module + "." + binding.Type
}
