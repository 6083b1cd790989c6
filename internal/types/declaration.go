package types

// DeclarationID identifies a declaration across rounds. It is the
// declaration's name as written in the manifest.
type DeclarationID string

type BindingDecl struct {
	Type  string   `yaml:"type"`
	Needs []string `yaml:"needs,omitempty"`
	Scope string   `yaml:"scope,omitempty"`
}

type Module struct {
	Name     string        `yaml:"name"`
	Provides []BindingDecl `yaml:"provides"`
}

// Declaration is one annotated source entity. Components and subcomponents
// use Modules, EntryPoints and Subcomponents; creators use Owner, Setters
// and BuildMethod. Requires lists types that must be visible to the
// compiler before the declaration can be validated at all.
type Declaration struct {
	Name          string   `yaml:"name"`
	Marker        Marker   `yaml:"marker"`
	Owner         string   `yaml:"owner,omitempty"`
	Scope         string   `yaml:"scope,omitempty"`
	Modules       []Module `yaml:"modules,omitempty"`
	EntryPoints   []string `yaml:"entry_points,omitempty"`
	Subcomponents []string `yaml:"subcomponents,omitempty"`
	Requires      []string `yaml:"requires,omitempty"`
	Setters       []string `yaml:"setters,omitempty"`
	BuildMethod   string   `yaml:"build_method,omitempty"`
}

func (d Declaration) ID() DeclarationID {
	return DeclarationID(d.Name)
}

func (d Declaration) Role() Role {
	role, _ := RoleForMarker(d.Marker)
	return role
}

func (d Declaration) OwnerID() DeclarationID {
	return DeclarationID(d.Owner)
}

func (d Declaration) CreatorKind() CreatorKind {
	return CreatorKindForMarker(d.Marker)
}

// ProvidedTypes lists every type bound by the declaration's modules.
func (d Declaration) ProvidedTypes() []string {
	var provided []string
	for _, module := range d.Modules {
		for _, binding := range module.Provides {
			provided = append(provided, binding.Type)
		}
	}
	return provided
}

// IDs returns the identities of decls in order.
func IDs(decls []Declaration) []DeclarationID {
	ids := make([]DeclarationID, 0, len(decls))
	for _, decl := range decls {
		ids = append(ids, decl.ID())
	}
	return ids
}

// Names is IDs as plain strings, for logs and persisted state.
func Names(decls []Declaration) []string {
	names := make([]string, 0, len(decls))
	for _, decl := range decls {
		names = append(names, decl.Name)
	}
	return names
}
