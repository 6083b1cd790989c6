package adapters

import (
	"bytes"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/dave/jennifer/jen"

	"componentgate/internal/ports"
	"componentgate/internal/shared"
	"componentgate/internal/types"
)

const generatedHeader = "Code generated by componentgate. DO NOT EDIT."

// ComponentWriter renders a binding graph into a Go source file. The root
// component becomes DI<Name>; every nested component becomes a type named
// after its path from the root and is created through a factory method on
// its parent.
type ComponentWriter struct {
	Package string
	Output  OutputFileAdapter
	Types   ports.TypeUniversePort
	// DryRun renders to memory only. Generated types are still registered so
	// that later rounds behave as they would on disk.
	DryRun bool
}

func NewComponentWriter(pkg string, output OutputFileAdapter, universe ports.TypeUniversePort) ComponentWriter {
	return ComponentWriter{Package: pkg, Output: output, Types: universe}
}

func NewDryRunComponentWriter(pkg string, universe ports.TypeUniversePort) ComponentWriter {
	return ComponentWriter{Package: pkg, Types: universe, DryRun: true}
}

func (w ComponentWriter) Generate(graph types.BindingGraph) (types.GeneratedArtifact, error) {
	if len(graph.Components) == 0 {
		return types.GeneratedArtifact{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("binding graph has no components")
	}
	if w.Package == "" {
		return types.GeneratedArtifact{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("generated package name is empty")
	}
	root := graph.Root()
	file := w.Render(graph)
	var buf bytes.Buffer
	if err := file.Render(&buf); err != nil {
		return types.GeneratedArtifact{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("failed to render %s", root.Name)).
			WithCause(err)
	}
	artifact := types.GeneratedArtifact{
		Declaration: root.ID,
		TypeName:    shared.GeneratedTypeName(root.Name),
		Path:        shared.GeneratedFileName(root.Name),
		Bytes:       buf.Len(),
	}
	if !w.DryRun {
		path, err := w.Output.WriteFile(artifact.Path, buf.Bytes())
		if err != nil {
			return types.GeneratedArtifact{}, err
		}
		artifact.Path = path
	}
	if w.Types != nil {
		w.Types.Register(artifact.TypeName)
	}
	return artifact, nil
}

// Render builds the jennifer file for graph without writing it.
func (w ComponentWriter) Render(graph types.BindingGraph) *jen.File {
	file := jen.NewFile(w.Package)
	file.HeaderComment(generatedHeader)
	names := componentTypeNames(graph)
	for index := range graph.Components {
		w.renderComponent(file, graph, names, index)
	}
	return file
}

func (w ComponentWriter) renderComponent(file *jen.File, graph types.BindingGraph, names []string, index int) {
	component := graph.Components[index]
	name := names[index]

	var fields []jen.Code
	if component.Parent >= 0 {
		fields = append(fields, jen.Id("parent").Op("*").Id(names[component.Parent]))
	}
	for _, module := range componentModules(component) {
		fields = append(fields, jen.Id(shared.FieldName(module)).Id(module))
	}
	for _, binding := range component.Bindings {
		fields = append(fields, jen.Id(shared.FieldName(binding.Type)).Id(binding.Type))
	}
	file.Comment(fmt.Sprintf("%s is the generated implementation of %s.", name, component.Name))
	file.Type().Id(name).Struct(fields...)

	params, values := setterParams(component)
	if component.Parent >= 0 {
		values[jen.Id("parent")] = jen.Id("c")
		body := []jen.Code{jen.Id("child").Op(":=").Op("&").Id(name).Values(values)}
		body = append(body, provisions(graph, index, "child")...)
		body = append(body, jen.Return(jen.Id("child")))
		file.Func().
			Params(jen.Id("c").Op("*").Id(names[component.Parent])).
			Id(shared.MethodName(component.Name)).
			Params(params...).
			Op("*").Id(name).
			Block(body...)
	} else {
		body := []jen.Code{jen.Id("c").Op(":=").Op("&").Id(name).Values(values)}
		body = append(body, provisions(graph, index, "c")...)
		body = append(body, jen.Return(jen.Id("c")))
		file.Func().
			Id("New" + name).
			Params(params...).
			Op("*").Id(name).
			Block(body...)
	}

	for _, entry := range component.EntryPoints {
		file.Func().
			Params(jen.Id("c").Op("*").Id(name)).
			Id(shared.MethodName(entry)).
			Params().
			Id(entry).
			Block(jen.Return(bindingRef(graph, index, "c", entry)))
	}
}

func componentTypeNames(graph types.BindingGraph) []string {
	names := make([]string, len(graph.Components))
	for index, component := range graph.Components {
		if component.Parent < 0 {
			names[index] = shared.GeneratedTypeName(component.Name)
			continue
		}
		names[index] = names[component.Parent] + shared.MethodName(component.Name)
	}
	return names
}

func componentModules(component types.ComponentNode) []string {
	var modules []string
	seen := map[string]struct{}{}
	for _, binding := range component.Bindings {
		if binding.Kind != types.BindingKindProvision {
			continue
		}
		if _, ok := seen[binding.Module]; ok {
			continue
		}
		seen[binding.Module] = struct{}{}
		modules = append(modules, binding.Module)
	}
	return modules
}

func setterParams(component types.ComponentNode) ([]jen.Code, jen.Dict) {
	var params []jen.Code
	values := jen.Dict{}
	for _, binding := range component.Bindings {
		if binding.Kind != types.BindingKindInstance {
			continue
		}
		field := shared.FieldName(binding.Type)
		params = append(params, jen.Id(field).Id(binding.Type))
		values[jen.Id(field)] = jen.Id(field)
	}
	return params, values
}

// provisions assigns every module binding of the component in
// initialization order.
func provisions(graph types.BindingGraph, index int, receiver string) []jen.Code {
	component := graph.Components[index]
	var stmts []jen.Code
	for _, typ := range component.Order {
		binding, ok := component.Binding(typ)
		if !ok || binding.Kind != types.BindingKindProvision {
			continue
		}
		args := make([]jen.Code, 0, len(binding.Needs))
		for _, need := range binding.Needs {
			args = append(args, bindingRef(graph, index, receiver, need))
		}
		stmts = append(stmts, jen.Id(receiver).Dot(shared.FieldName(typ)).Op("=").
			Id(receiver).Dot(shared.FieldName(binding.Module)).Dot("Provide"+shared.MethodName(typ)).Call(args...))
	}
	return stmts
}

// bindingRef reaches typ from component index, following parent links up to
// the component that owns the binding.
func bindingRef(graph types.BindingGraph, index int, receiver string, typ string) *jen.Statement {
	owner, _, ok := graph.Lookup(index, typ)
	ref := jen.Id(receiver)
	if !ok {
		return ref.Dot(shared.FieldName(typ))
	}
	for current := index; current != owner; current = graph.Components[current].Parent {
		ref = ref.Dot("parent")
	}
	return ref.Dot(shared.FieldName(typ))
}

var _ ports.GeneratorPort = ComponentWriter{}
