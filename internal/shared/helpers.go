// Package shared provides naming helpers used by the generator and the
// application layer.
package shared

import (
	"strings"

	"github.com/go-openapi/inflect"
)

// GeneratedPrefix is prepended to every generated component type.
const GeneratedPrefix = "DI"

// GeneratedTypeName joins declaration name parts into the exported name of
// the generated component, e.g. ("AppComponent") -> "DIAppComponent".
func GeneratedTypeName(parts ...string) string {
	var b strings.Builder
	b.WriteString(GeneratedPrefix)
	for _, part := range parts {
		b.WriteString(inflect.Camelize(identifierWords(part)))
	}
	return b.String()
}

// GeneratedFileName maps a declaration name to its generated file,
// e.g. "AppComponent" -> "app_component_gen.go".
func GeneratedFileName(name string) string {
	return inflect.Underscore(identifierWords(name)) + "_gen.go"
}

// FieldName is the unexported struct field holding a binding of typ.
func FieldName(typ string) string {
	return inflect.CamelizeDownFirst(identifierWords(typ))
}

// MethodName is the exported accessor for typ.
func MethodName(typ string) string {
	return inflect.Camelize(identifierWords(typ))
}

// identifierWords turns qualified names such as "Request.Builder" or
// "pkg.Type" into underscore separated words inflect can camelize.
func identifierWords(name string) string {
	replacer := strings.NewReplacer(".", "_", "-", "_", " ", "_", "*", "")
	return replacer.Replace(strings.TrimSpace(name))
}
