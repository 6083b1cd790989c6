package core

import "componentgate/internal/types"

// RoleSets is one round's declarations partitioned by role. Each set keeps
// the input order.
type RoleSets struct {
	RootComponents       []types.Declaration
	Subcomponents        []types.Declaration
	RootCreators         []types.Declaration
	SubcomponentCreators []types.Declaration
}

// Classify partitions declarations using the fixed marker table. Unknown
// markers are dropped and a declaration listed twice is kept once.
func Classify(declarations []types.Declaration) RoleSets {
	var sets RoleSets
	seen := map[types.DeclarationID]struct{}{}
	for _, decl := range declarations {
		if _, ok := seen[decl.ID()]; ok {
			continue
		}
		role, ok := types.RoleForMarker(decl.Marker)
		if !ok {
			continue
		}
		seen[decl.ID()] = struct{}{}
		switch role {
		case types.RoleRootComponent:
			sets.RootComponents = append(sets.RootComponents, decl)
		case types.RoleSubcomponent:
			sets.Subcomponents = append(sets.Subcomponents, decl)
		case types.RoleRootCreator:
			sets.RootCreators = append(sets.RootCreators, decl)
		case types.RoleSubcomponentCreator:
			sets.SubcomponentCreators = append(sets.SubcomponentCreators, decl)
		}
	}
	return sets
}

func (s RoleSets) Len() int {
	return len(s.RootComponents) + len(s.Subcomponents) + len(s.RootCreators) + len(s.SubcomponentCreators)
}
