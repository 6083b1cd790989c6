package ports

import "componentgate/internal/types"

// CreatorValidatorPort validates a builder or factory declaration. It
// returns a *types.UnresolvedTypeError when the creator references types
// that are not visible yet.
type CreatorValidatorPort interface {
	Validate(creator types.Declaration) (types.ValidationReport, error)
}

// ComponentValidatorPort validates a component or subcomponent against the
// round's universe of subcomponents and subcomponent creators. Deferral is
// signalled the same way as for creators.
type ComponentValidatorPort interface {
	Validate(
		decl types.Declaration,
		subcomponents []types.Declaration,
		subcomponentCreators []types.Declaration,
	) (types.ComponentValidationReport, error)
}

// TypeUniversePort answers which type names the compiler can currently
// see. Generated types become visible to the rounds after their
// generation.
type TypeUniversePort interface {
	Resolvable(name string) bool
	Register(name string)
}
