package core

import (
	"github.com/ZanzyTHEbar/errbuilder-go"

	"componentgate/internal/types"
)

type BindingGraphFactory struct{}

func NewBindingGraphFactory() BindingGraphFactory {
	return BindingGraphFactory{}
}

// Create flattens a descriptor tree into a binding graph with the root at
// index 0. Creator setters become instance bindings of their component.
func (f BindingGraphFactory) Create(descriptor types.ComponentDescriptor) (types.BindingGraph, error) {
	if descriptor.Cycle {
		return types.BindingGraph{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cannot build a graph from a cyclic reference")
	}
	graph := types.BindingGraph{}
	f.add(&graph, descriptor, -1)
	return graph, nil
}

func (f BindingGraphFactory) add(graph *types.BindingGraph, descriptor types.ComponentDescriptor, parent int) int {
	node := types.ComponentNode{
		ID:          descriptor.ID,
		Name:        descriptor.Name,
		Scope:       descriptor.Scope,
		Parent:      parent,
		Creator:     descriptor.Creator,
		EntryPoints: descriptor.EntryPoints,
	}
	if descriptor.Creator != nil {
		for _, setter := range descriptor.Creator.Setters {
			node.Bindings = append(node.Bindings, types.ResolvedBinding{
				Type: setter,
				Kind: types.BindingKindInstance,
			})
		}
	}
	for _, module := range descriptor.Modules {
		for _, binding := range module.Provides {
			node.Bindings = append(node.Bindings, types.ResolvedBinding{
				Type:   binding.Type,
				Module: module.Name,
				Scope:  binding.Scope,
				Kind:   types.BindingKindProvision,
				Needs:  binding.Needs,
			})
		}
	}
	node.Order, _ = initializationOrder(node)

	index := len(graph.Components)
	graph.Components = append(graph.Components, node)
	for _, child := range descriptor.Children {
		if child.Cycle {
			continue
		}
		childIndex := f.add(graph, child, index)
		graph.Components[index].Children = append(graph.Components[index].Children, childIndex)
	}
	return index
}

// initializationOrder sorts the component's own bindings so that each comes
// after the local bindings it needs. Needs satisfied by an ancestor impose
// no order. Bindings in or behind a cycle are left out; the second result is
// the first cycle found, closed on its starting type.
func initializationOrder(node types.ComponentNode) ([]string, []string) {
	const (
		unvisited = iota
		visiting
		ordered
		broken
	)
	local := map[string]types.ResolvedBinding{}
	for _, binding := range node.Bindings {
		if _, ok := local[binding.Type]; !ok {
			local[binding.Type] = binding
		}
	}
	state := map[string]int{}
	var order []string
	var cycle []string
	var stack []string

	var visit func(typ string) bool
	visit = func(typ string) bool {
		switch state[typ] {
		case ordered:
			return true
		case broken:
			return false
		case visiting:
			if cycle == nil {
				for i, entry := range stack {
					if entry == typ {
						cycle = append(append([]string(nil), stack[i:]...), typ)
						break
					}
				}
			}
			return false
		}
		state[typ] = visiting
		stack = append(stack, typ)
		ok := true
		for _, need := range local[typ].Needs {
			if _, isLocal := local[need]; !isLocal {
				continue
			}
			if !visit(need) {
				ok = false
			}
		}
		stack = stack[:len(stack)-1]
		if !ok {
			state[typ] = broken
			return false
		}
		state[typ] = ordered
		order = append(order, typ)
		return true
	}

	for _, binding := range node.Bindings {
		visit(binding.Type)
	}
	return order, cycle
}
