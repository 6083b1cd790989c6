package types

// Marker is the annotation a declaration carries in the manifest.
type Marker string

const (
	MarkerComponent                     Marker = "component"
	MarkerProductionComponent           Marker = "production_component"
	MarkerSubcomponent                  Marker = "subcomponent"
	MarkerProductionSubcomponent        Marker = "production_subcomponent"
	MarkerComponentBuilder              Marker = "component.builder"
	MarkerComponentFactory              Marker = "component.factory"
	MarkerProductionComponentBuilder    Marker = "production_component.builder"
	MarkerProductionComponentFactory    Marker = "production_component.factory"
	MarkerSubcomponentBuilder           Marker = "subcomponent.builder"
	MarkerSubcomponentFactory           Marker = "subcomponent.factory"
	MarkerProductionSubcomponentBuilder Marker = "production_subcomponent.builder"
	MarkerProductionSubcomponentFactory Marker = "production_subcomponent.factory"
)

// Role is the part a declaration plays in a processing round.
type Role string

const (
	RoleUnknown             Role = ""
	RoleRootComponent       Role = "root-component"
	RoleSubcomponent        Role = "subcomponent"
	RoleRootCreator         Role = "root-creator"
	RoleSubcomponentCreator Role = "subcomponent-creator"
)

// CreatorKind separates builders (setters plus a build method) from
// factories (a single method taking every input).
type CreatorKind string

const (
	CreatorKindNone    CreatorKind = ""
	CreatorKindBuilder CreatorKind = "builder"
	CreatorKindFactory CreatorKind = "factory"
)

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

var markerRoles = map[Marker]Role{
	MarkerComponent:                     RoleRootComponent,
	MarkerProductionComponent:           RoleRootComponent,
	MarkerSubcomponent:                  RoleSubcomponent,
	MarkerProductionSubcomponent:        RoleSubcomponent,
	MarkerComponentBuilder:              RoleRootCreator,
	MarkerComponentFactory:              RoleRootCreator,
	MarkerProductionComponentBuilder:    RoleRootCreator,
	MarkerProductionComponentFactory:    RoleRootCreator,
	MarkerSubcomponentBuilder:           RoleSubcomponentCreator,
	MarkerSubcomponentFactory:           RoleSubcomponentCreator,
	MarkerProductionSubcomponentBuilder: RoleSubcomponentCreator,
	MarkerProductionSubcomponentFactory: RoleSubcomponentCreator,
}

var markerCreatorKinds = map[Marker]CreatorKind{
	MarkerComponentBuilder:              CreatorKindBuilder,
	MarkerComponentFactory:              CreatorKindFactory,
	MarkerProductionComponentBuilder:    CreatorKindBuilder,
	MarkerProductionComponentFactory:    CreatorKindFactory,
	MarkerSubcomponentBuilder:           CreatorKindBuilder,
	MarkerSubcomponentFactory:           CreatorKindFactory,
	MarkerProductionSubcomponentBuilder: CreatorKindBuilder,
	MarkerProductionSubcomponentFactory: CreatorKindFactory,
}

// RoleForMarker maps a marker to its role. Unknown markers report false.
func RoleForMarker(marker Marker) (Role, bool) {
	role, ok := markerRoles[marker]
	return role, ok
}

// CreatorKindForMarker returns CreatorKindNone for component markers.
func CreatorKindForMarker(marker Marker) CreatorKind {
	return markerCreatorKinds[marker]
}

func (r Role) IsCreator() bool {
	return r == RoleRootCreator || r == RoleSubcomponentCreator
}

func (r Role) IsComponent() bool {
	return r == RoleRootComponent || r == RoleSubcomponent
}
