package types

type CreatorDescriptor struct {
	Name        string
	Kind        CreatorKind
	Setters     []string
	BuildMethod string
}

// ComponentDescriptor is the validated shape of a component together with
// the subcomponents it reaches. A child whose declaration is already on the
// ancestor path is recorded with Cycle set and no further content.
type ComponentDescriptor struct {
	ID          DeclarationID
	Name        string
	Scope       string
	Root        bool
	Modules     []Module
	EntryPoints []string
	Creator     *CreatorDescriptor
	Children    []ComponentDescriptor
	Cycle       bool
}

type BindingKind string

const (
	BindingKindProvision BindingKind = "provision"
	BindingKindInstance  BindingKind = "instance"
)

type ResolvedBinding struct {
	Type   string
	Module string
	Scope  string
	Kind   BindingKind
	Needs  []string
}

// ComponentNode is one component of a binding graph. Parent is the index of
// the enclosing component, -1 for the root.
type ComponentNode struct {
	ID          DeclarationID
	Name        string
	Scope       string
	Parent      int
	Creator     *CreatorDescriptor
	Bindings    []ResolvedBinding
	EntryPoints []string
	Children    []int
	// Order lists the component's own binding types so that every binding
	// comes after the bindings it needs. Types caught in a cycle are left
	// out.
	Order []string
}

// Binding returns the first binding for typ declared in the component.
func (n ComponentNode) Binding(typ string) (ResolvedBinding, bool) {
	for _, binding := range n.Bindings {
		if binding.Type == typ {
			return binding, true
		}
	}
	return ResolvedBinding{}, false
}

// BindingGraph holds the root component at index 0 followed by every
// reachable subcomponent.
type BindingGraph struct {
	Components []ComponentNode
}

func (g BindingGraph) Root() ComponentNode {
	if len(g.Components) == 0 {
		return ComponentNode{Parent: -1}
	}
	return g.Components[0]
}

// Lookup resolves typ from component index, walking up the parent chain.
// It returns the index of the component that owns the binding.
func (g BindingGraph) Lookup(component int, typ string) (int, ResolvedBinding, bool) {
	for index := component; index >= 0 && index < len(g.Components); index = g.Components[index].Parent {
		if binding, ok := g.Components[index].Binding(typ); ok {
			return index, binding, true
		}
	}
	return -1, ResolvedBinding{}, false
}

type GeneratedArtifact struct {
	Declaration DeclarationID
	TypeName    string
	Path        string
	Bytes       int
}
